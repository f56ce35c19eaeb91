// Package graph implementa el motor de resolución relacional anidada: recibe la forma de
// una consulta ya validada, despacha a la consulta raíz y expande en profundidad, por
// entidad, cada relación pedida. El árbol de salida refleja la forma de la consulta.
package graph

// OperationType distingue consultas de mutaciones.
type OperationType string

const (
	OperationQuery    OperationType = "query"
	OperationMutation OperationType = "mutation"
)

// Field es una selección de la consulta: nombre, alias opcional, argumentos ya
// coercionados y sub-selecciones (vacías para campos escalares).
type Field struct {
	Alias      string
	Name       string
	Args       map[string]any
	Selections []Field
}

// ResponseKey devuelve la clave bajo la que el campo aparece en el resultado.
func (f Field) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Operation es la forma completa de una petición.
type Operation struct {
	Type       OperationType
	Name       string
	Selections []Field
}
