package entity

// Company representa una empresa (raíz de la jerarquía empresa → clientes → facturas).
type Company struct {
	ID   string
	Name string
}

func (c *Company) Kind() Kind       { return KindCompany }
func (c *Company) RecordID() string { return c.ID }

// Attr implementa Record.
func (c *Company) Attr(field string) (any, bool) {
	switch field {
	case "id":
		return c.ID, true
	case "name":
		return c.Name, true
	}
	return nil, false
}
