package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
type Product struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
}

func (p *Product) Kind() Kind       { return KindProduct }
func (p *Product) RecordID() string { return p.ID }

// Attr implementa Record.
func (p *Product) Attr(field string) (any, bool) {
	switch field {
	case "id":
		return p.ID, true
	case "name":
		return p.Name, true
	case "unitPrice":
		return p.UnitPrice, true
	}
	return nil, false
}
