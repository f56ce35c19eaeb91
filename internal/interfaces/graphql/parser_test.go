package graphql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-graph/internal/application/graph"
	"github.com/jhoicas/facturas-graph/internal/interfaces/graphql"
)

func newParser(t *testing.T) *graphql.Parser {
	t.Helper()
	p, err := graphql.NewParser()
	require.NoError(t, err, "el esquema embebido debe compilar")
	return p
}

func names(fields []graph.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.ResponseKey())
	}
	return out
}

func TestParse_ConsultaAnidada(t *testing.T) {
	p := newParser(t)
	op, errs := p.Parse(`query Arbol {
		companies { id clients { name invoices { number lines { quantity product { name } } } } }
	}`, "", nil)
	require.Empty(t, errs)

	assert.Equal(t, graph.OperationQuery, op.Type)
	assert.Equal(t, "Arbol", op.Name)
	require.Len(t, op.Selections, 1)
	companies := op.Selections[0]
	assert.Equal(t, "companies", companies.Name)
	assert.Equal(t, []string{"id", "clients"}, names(companies.Selections))
	lines := companies.Selections[1].Selections[1].Selections[1]
	assert.Equal(t, "lines", lines.Name)
	assert.Equal(t, []string{"quantity", "product"}, names(lines.Selections))
}

func TestParse_ArgumentosLiteralesYVariables(t *testing.T) {
	p := newParser(t)
	op, errs := p.Parse(`query($c: ID!) { a: clients(companyId: "1") { id } b: clients(companyId: $c) { id } }`,
		"", map[string]any{"c": "2"})
	require.Empty(t, errs)
	require.Len(t, op.Selections, 2)
	assert.Equal(t, "a", op.Selections[0].Alias)
	assert.Equal(t, "1", op.Selections[0].Args["companyId"])
	assert.Equal(t, "2", op.Selections[1].Args["companyId"])
}

func TestParse_Mutacion(t *testing.T) {
	p := newParser(t)
	op, errs := p.Parse(`mutation { updateClient(id: "1", name: "Nuevo") { id name } }`, "", nil)
	require.Empty(t, errs)
	assert.Equal(t, graph.OperationMutation, op.Type)
	assert.Equal(t, map[string]any{"id": "1", "name": "Nuevo"}, op.Selections[0].Args)
}

func TestParse_FragmentosYDirectivas(t *testing.T) {
	p := newParser(t)
	op, errs := p.Parse(`
		query($withName: Boolean!) {
			companies {
				...Basic
				... on Company { name @include(if: $withName) }
				id @skip(if: true)
				clients { id }
				clients { name }
			}
		}
		fragment Basic on Company { id }`, "", map[string]any{"withName": false})
	require.Empty(t, errs)

	companies := op.Selections[0]
	assert.Equal(t, []string{"id", "clients"}, names(companies.Selections))
	assert.Equal(t, []string{"id", "name"}, names(companies.Selections[1].Selections),
		"las selecciones repetidas se fusionan")
}

func TestParse_ArgumentoRequeridoFaltante(t *testing.T) {
	p := newParser(t)
	_, errs := p.Parse(`{ clients { id } }`, "", nil)
	require.NotEmpty(t, errs)
}

func TestParse_CampoDesconocido(t *testing.T) {
	p := newParser(t)
	_, errs := p.Parse(`{ companies { nit } }`, "", nil)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs.Error(), "nit")
}

func TestParse_SintaxisInvalida(t *testing.T) {
	p := newParser(t)
	_, errs := p.Parse(`{ companies { id `, "", nil)
	assert.NotEmpty(t, errs)
}

func TestParse_VariableFaltante(t *testing.T) {
	p := newParser(t)
	_, errs := p.Parse(`query($id: ID!) { invoices(clientId: $id) { id } }`, "", nil)
	assert.NotEmpty(t, errs)
}

func TestParse_SeleccionDeOperacion(t *testing.T) {
	p := newParser(t)
	doc := `query A { companies { id } } query B { products { id } }`

	_, errs := p.Parse(doc, "", nil)
	assert.NotEmpty(t, errs, "varias operaciones sin operationName")

	op, errs := p.Parse(doc, "B", nil)
	require.Empty(t, errs)
	assert.Equal(t, "products", op.Selections[0].Name)

	_, errs = p.Parse(doc, "C", nil)
	assert.NotEmpty(t, errs)
}

func TestSDL_DeclaraOperaciones(t *testing.T) {
	sdl := graphql.SDL()
	for _, s := range []string{"companies", "clients(companyId: ID!)", "invoiceLines(invoiceId: ID!)", "deleteInvoice(id: ID!): Invoice"} {
		assert.Contains(t, sdl, s)
	}
}
