package relation

import "github.com/jhoicas/facturas-graph/internal/domain/entity"

// Resolver es lo que el motor usa para obtener hijos; lo cumplen Index y Memo.
type Resolver interface {
	ChildrenOf(childKind entity.Kind, foreignKey, parentID string) []entity.Record
}

type memoKey struct {
	kind       entity.Kind
	foreignKey string
	parentID   string
}

// Memo memoriza ChildrenOf durante una sola operación. No es seguro para uso concurrente;
// el motor crea uno por operación y lo invalida tras cada mutación.
type Memo struct {
	next  Resolver
	cache map[memoKey][]entity.Record
}

// NewMemo envuelve next.
func NewMemo(next Resolver) *Memo {
	return &Memo{next: next, cache: make(map[memoKey][]entity.Record)}
}

// ChildrenOf implementa Resolver.
func (m *Memo) ChildrenOf(childKind entity.Kind, foreignKey, parentID string) []entity.Record {
	k := memoKey{childKind, foreignKey, parentID}
	if recs, ok := m.cache[k]; ok {
		return recs
	}
	recs := m.next.ChildrenOf(childKind, foreignKey, parentID)
	m.cache[k] = recs
	return recs
}

// Invalidate descarta todo lo memorizado.
func (m *Memo) Invalidate() {
	clear(m.cache)
}
