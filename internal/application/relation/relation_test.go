package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-graph/internal/application/relation"
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/infrastructure/memory"
)

type scanCounter struct {
	scans   int
	scanned int
}

func (c *scanCounter) ObserveScan(_ entity.Kind, _ string, n int) {
	c.scans++
	c.scanned += n
}

func names(recs []entity.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		v, _ := r.Attr("name")
		out = append(out, v.(string))
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Registry
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultRegistry_TresRelaciones(t *testing.T) {
	r := relation.DefaultRegistry()
	require.Len(t, r.All(), 3)

	rel, ok := r.Lookup(entity.KindCompany, "clients")
	require.True(t, ok)
	assert.Equal(t, entity.KindClient, rel.ChildKind)
	assert.Equal(t, "companyId", rel.ForeignKey)
	assert.Equal(t, "Company.clients", rel.Name())

	rel, ok = r.ByRootQuery("invoiceLines")
	require.True(t, ok)
	assert.Equal(t, entity.KindInvoiceLine, rel.ChildKind)
	assert.Equal(t, "invoiceId", rel.RootArg)

	_, ok = r.Lookup(entity.KindInvoiceLine, "product")
	assert.False(t, ok, "el producto va embebido, no es una relación")
	_, ok = r.Lookup(entity.KindClient, "clients")
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Index
// ──────────────────────────────────────────────────────────────────────────────

func TestIndex_ChildrenOfFiltraYPreservaOrden(t *testing.T) {
	s, err := memory.NewSeededStore()
	require.NoError(t, err)
	ix := relation.NewIndex(s, nil)

	assert.Equal(t, []string{"Cliente 1", "Cliente 2"}, names(ix.ChildrenOf(entity.KindClient, "companyId", "1")))
	assert.Equal(t, []string{"Cliente 3", "Cliente 4"}, names(ix.ChildrenOf(entity.KindClient, "companyId", "2")))
	assert.Empty(t, ix.ChildrenOf(entity.KindClient, "companyId", "nonexistent"))
	assert.NotNil(t, ix.ChildrenOf(entity.KindClient, "companyId", "nonexistent"), "vacío, no nil")
}

func TestIndex_ChildrenOfAliasFacturaID(t *testing.T) {
	s, err := memory.NewSeededStore()
	require.NoError(t, err)
	ix := relation.NewIndex(s, nil)

	a := ix.ChildrenOf(entity.KindInvoiceLine, "invoiceId", "1")
	b := ix.ChildrenOf(entity.KindInvoiceLine, "facturaId", "1")
	assert.Len(t, a, 2)
	assert.Equal(t, a, b)
}

func TestIndex_RecalculaEnCadaLlamada(t *testing.T) {
	s, err := memory.NewSeededStore()
	require.NoError(t, err)
	obs := &scanCounter{}
	ix := relation.NewIndex(s, obs)

	require.Len(t, ix.ChildrenOf(entity.KindClient, "companyId", "1"), 2)
	require.NoError(t, s.Append(&entity.Client{ID: "9", Name: "Cliente 9", CompanyID: "1"}))
	assert.Equal(t, []string{"Cliente 1", "Cliente 2", "Cliente 9"},
		names(ix.ChildrenOf(entity.KindClient, "companyId", "1")))

	assert.Equal(t, 2, obs.scans)
	assert.Equal(t, 4+5, obs.scanned)
}

// ──────────────────────────────────────────────────────────────────────────────
// Memo
// ──────────────────────────────────────────────────────────────────────────────

func TestMemo_EvitaRecorridosRepetidos(t *testing.T) {
	s, err := memory.NewSeededStore()
	require.NoError(t, err)
	obs := &scanCounter{}
	m := relation.NewMemo(relation.NewIndex(s, obs))

	first := m.ChildrenOf(entity.KindInvoice, "clientId", "1")
	second := m.ChildrenOf(entity.KindInvoice, "clientId", "1")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, obs.scans)

	m.ChildrenOf(entity.KindInvoice, "clientId", "2")
	assert.Equal(t, 2, obs.scans)

	m.Invalidate()
	m.ChildrenOf(entity.KindInvoice, "clientId", "1")
	assert.Equal(t, 3, obs.scans)
}
