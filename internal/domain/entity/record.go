package entity

// Kind identifica un tipo de entidad; coincide con el nombre del tipo GraphQL.
type Kind string

const (
	KindCompany     Kind = "Company"
	KindClient      Kind = "Client"
	KindInvoice     Kind = "Invoice"
	KindInvoiceLine Kind = "InvoiceLine"
	KindProduct     Kind = "Product"
)

// Kinds devuelve los tipos en orden padre → hijo.
func Kinds() []Kind {
	return []Kind{KindCompany, KindClient, KindInvoice, KindInvoiceLine, KindProduct}
}

// Valid indica si k es uno de los tipos conocidos.
func (k Kind) Valid() bool {
	switch k {
	case KindCompany, KindClient, KindInvoice, KindInvoiceLine, KindProduct:
		return true
	}
	return false
}

// Record es el contrato común de todas las entidades del almacén.
// Attr expone atributos escalares, claves foráneas y registros embebidos por su nombre GraphQL.
type Record interface {
	Kind() Kind
	RecordID() string
	Attr(field string) (any, bool)
}

// ForeignKey lee un atributo string de r; false si no existe o no es string.
func ForeignKey(r Record, field string) (string, bool) {
	v, ok := r.Attr(field)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
