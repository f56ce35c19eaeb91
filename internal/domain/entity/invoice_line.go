package entity

import "github.com/shopspring/decimal"

// InvoiceLine representa una línea de detalle de una factura.
// Product es una copia por valor tomada al crear la línea; cambios posteriores
// al producto canónico no se propagan.
type InvoiceLine struct {
	ID        string
	InvoiceID string
	Product   Product
	Quantity  int
	UnitPrice decimal.Decimal // importe de la línea (cantidad × precio del producto)
}

func (l *InvoiceLine) Kind() Kind       { return KindInvoiceLine }
func (l *InvoiceLine) RecordID() string { return l.ID }

// Attr implementa Record. "facturaId" es alias histórico de "invoiceId".
func (l *InvoiceLine) Attr(field string) (any, bool) {
	switch field {
	case "id":
		return l.ID, true
	case "invoiceId", "facturaId":
		return l.InvoiceID, true
	case "quantity":
		return l.Quantity, true
	case "unitPrice":
		return l.UnitPrice, true
	case "product":
		p := l.Product
		return &p, true
	}
	return nil, false
}
