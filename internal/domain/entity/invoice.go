package entity

// Invoice representa la cabecera de una factura.
type Invoice struct {
	ID       string
	Number   string
	ClientID string
}

func (i *Invoice) Kind() Kind       { return KindInvoice }
func (i *Invoice) RecordID() string { return i.ID }

// Attr implementa Record.
func (i *Invoice) Attr(field string) (any, bool) {
	switch field {
	case "id":
		return i.ID, true
	case "number":
		return i.Number, true
	case "clientId":
		return i.ClientID, true
	}
	return nil, false
}
