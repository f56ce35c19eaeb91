package entity

// Client representa un cliente de una empresa. CompanyID no se valida contra Company:
// una referencia colgante simplemente no aparece al expandir Company.clients.
type Client struct {
	ID        string
	Name      string
	CompanyID string
}

func (c *Client) Kind() Kind       { return KindClient }
func (c *Client) RecordID() string { return c.ID }

// Attr implementa Record.
func (c *Client) Attr(field string) (any, bool) {
	switch field {
	case "id":
		return c.ID, true
	case "name":
		return c.Name, true
	case "companyId":
		return c.CompanyID, true
	}
	return nil, false
}
