// Package graphql compila el esquema, valida documentos GraphQL y los traduce a la forma
// de consulta que consume el motor (graph.Operation).
package graphql

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"

	"github.com/jhoicas/facturas-graph/internal/application/graph"
)

//go:embed schema.graphql
var schemaSDL string

// SDL devuelve el esquema en lenguaje de definición.
func SDL() string {
	return schemaSDL
}

// Parser valida documentos contra el esquema compilado.
type Parser struct {
	schema *ast.Schema
}

// NewParser compila el esquema embebido.
func NewParser() (*Parser, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSDL})
	if err != nil {
		return nil, fmt.Errorf("compilar esquema: %w", err)
	}
	return &Parser{schema: schema}, nil
}

// Parse valida query (tipos y argumentos requeridos incluidos), coerciona las variables y
// devuelve la operación elegida por operationName (vacío si el documento tiene una sola).
func (p *Parser) Parse(query, operationName string, variables map[string]any) (graph.Operation, gqlerror.List) {
	doc, errs := gqlparser.LoadQuery(p.schema, query)
	if len(errs) > 0 {
		return graph.Operation{}, errs
	}

	op := doc.Operations.ForName(operationName)
	if op == nil {
		if operationName == "" {
			return graph.Operation{}, gqlerror.List{gqlerror.Errorf("se requiere operationName cuando el documento tiene varias operaciones")}
		}
		return graph.Operation{}, gqlerror.List{gqlerror.Errorf("operación %q no encontrada", operationName)}
	}

	vars, err := validator.VariableValues(p.schema, op, variables)
	if err != nil {
		return graph.Operation{}, gqlerror.List{asGQLError(err)}
	}

	return graph.Operation{
		Type:       graph.OperationType(op.Operation),
		Name:       op.Name,
		Selections: collectFields(op.SelectionSet, vars),
	}, nil
}

func asGQLError(err error) *gqlerror.Error {
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return gqlErr
	}
	return &gqlerror.Error{Message: err.Error()}
}

// collectFields aplana fragmentos, aplica @skip/@include y fusiona campos con la misma
// clave de respuesta, conservando el orden de primera aparición.
func collectFields(set ast.SelectionSet, vars map[string]any) []graph.Field {
	var out []graph.Field
	index := make(map[string]int)

	var walk func(ast.SelectionSet)
	walk = func(set ast.SelectionSet) {
		for _, s := range set {
			switch sel := s.(type) {
			case *ast.Field:
				if !included(sel.Directives, vars) {
					continue
				}
				f := graph.Field{
					Name:       sel.Name,
					Args:       sel.ArgumentMap(vars),
					Selections: collectFields(sel.SelectionSet, vars),
				}
				if sel.Alias != "" && sel.Alias != sel.Name {
					f.Alias = sel.Alias
				}
				key := f.ResponseKey()
				if i, ok := index[key]; ok {
					out[i].Selections = mergeFields(out[i].Selections, f.Selections)
					continue
				}
				index[key] = len(out)
				out = append(out, f)
			case *ast.InlineFragment:
				if included(sel.Directives, vars) {
					walk(sel.SelectionSet)
				}
			case *ast.FragmentSpread:
				if included(sel.Directives, vars) && sel.Definition != nil {
					walk(sel.Definition.SelectionSet)
				}
			}
		}
	}
	walk(set)
	return out
}

func mergeFields(dst, src []graph.Field) []graph.Field {
	index := make(map[string]int, len(dst))
	for i, f := range dst {
		index[f.ResponseKey()] = i
	}
	for _, f := range src {
		if i, ok := index[f.ResponseKey()]; ok {
			dst[i].Selections = mergeFields(dst[i].Selections, f.Selections)
			continue
		}
		index[f.ResponseKey()] = len(dst)
		dst = append(dst, f)
	}
	return dst
}

func included(dirs ast.DirectiveList, vars map[string]any) bool {
	if d := dirs.ForName("skip"); d != nil {
		if v, _ := d.ArgumentMap(vars)["if"].(bool); v {
			return false
		}
	}
	if d := dirs.ForName("include"); d != nil {
		if v, _ := d.ArgumentMap(vars)["if"].(bool); !v {
			return false
		}
	}
	return true
}
