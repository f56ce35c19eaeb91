// Package relation describe las relaciones padre → hijo y resuelve hijos por clave foránea.
package relation

import "github.com/jhoicas/facturas-graph/internal/domain/entity"

// Relationship describe una relación padre → hijo resuelta por clave foránea.
type Relationship struct {
	// Field es el campo GraphQL del padre que expande la relación (ej. "clients").
	Field string

	// ParentKind es el tipo del padre (ej. Company).
	ParentKind entity.Kind

	// ChildKind es el tipo del hijo (ej. Client).
	ChildKind entity.Kind

	// ForeignKey es el atributo del hijo que referencia al padre (ej. "companyId").
	ForeignKey string

	// RootQuery es la consulta raíz filtrada equivalente (ej. "clients"); vacío si no existe.
	RootQuery string

	// RootArg es el argumento requerido por RootQuery (ej. "companyId").
	RootArg string
}

// Name devuelve "Parent.field", usado como etiqueta de métricas.
func (r Relationship) Name() string {
	return string(r.ParentKind) + "." + r.Field
}

type fieldKey struct {
	kind  entity.Kind
	field string
}

// Registry guarda las relaciones conocidas.
type Registry struct {
	relationships []Relationship
	byField       map[fieldKey]Relationship
	byRoot        map[string]Relationship
}

// NewRegistry crea un registro vacío.
func NewRegistry() *Registry {
	return &Registry{
		byField: make(map[fieldKey]Relationship),
		byRoot:  make(map[string]Relationship),
	}
}

// DefaultRegistry registra la cadena empresa → cliente → factura → línea.
// El producto no se alcanza por aquí: va embebido en la línea.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Relationship{
		Field: "clients", ParentKind: entity.KindCompany, ChildKind: entity.KindClient,
		ForeignKey: "companyId", RootQuery: "clients", RootArg: "companyId",
	})
	r.Register(Relationship{
		Field: "invoices", ParentKind: entity.KindClient, ChildKind: entity.KindInvoice,
		ForeignKey: "clientId", RootQuery: "invoices", RootArg: "clientId",
	})
	r.Register(Relationship{
		Field: "lines", ParentKind: entity.KindInvoice, ChildKind: entity.KindInvoiceLine,
		ForeignKey: "invoiceId", RootQuery: "invoiceLines", RootArg: "invoiceId",
	})
	return r
}

// Register agrega una relación. Un registro posterior con el mismo campo o consulta raíz reemplaza al anterior.
func (r *Registry) Register(rel Relationship) {
	r.relationships = append(r.relationships, rel)
	r.byField[fieldKey{rel.ParentKind, rel.Field}] = rel
	if rel.RootQuery != "" {
		r.byRoot[rel.RootQuery] = rel
	}
}

// Lookup busca la relación expuesta por el campo field del tipo padre.
func (r *Registry) Lookup(parent entity.Kind, field string) (Relationship, bool) {
	rel, ok := r.byField[fieldKey{parent, field}]
	return rel, ok
}

// ByRootQuery busca la relación que respalda una consulta raíz filtrada.
func (r *Registry) ByRootQuery(name string) (Relationship, bool) {
	rel, ok := r.byRoot[name]
	return rel, ok
}

// All devuelve las relaciones en orden de registro.
func (r *Registry) All() []Relationship {
	return r.relationships
}
