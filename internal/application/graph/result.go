package graph

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object es un nodo del árbol de resultado; conserva el orden de los campos pedidos.
type Object = orderedmap.OrderedMap[string, any]

func newObject() *Object {
	return orderedmap.New[string, any]()
}

// FieldError describe el fallo de un campo raíz. Path usa claves de respuesta e índices de lista.
type FieldError struct {
	Path    []any
	Message string
	Err     error
}

func (e FieldError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Path))
	for _, p := range e.Path {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ".") + ": " + e.Message
}

func (e FieldError) Unwrap() error { return e.Err }

// Result es la salida de Execute. Data nunca es nil; un campo raíz fallido queda en null.
type Result struct {
	Data   *Object
	Errors []FieldError
}

// childPath copia path y agrega seg, para no compartir el arreglo subyacente entre hermanos.
func childPath(path []any, seg any) []any {
	out := make([]any, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}
