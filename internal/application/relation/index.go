package relation

import (
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

// ScanObserver recibe una notificación por cada recorrido completo de una colección.
type ScanObserver interface {
	ObserveScan(childKind entity.Kind, foreignKey string, scanned int)
}

// Index resuelve hijos recorriendo la colección completa en cada llamada.
// No mantiene estructura de índice ni caché: O(|colección|) por resolución.
type Index struct {
	store    repository.EntityStore
	observer ScanObserver
}

// NewIndex construye el índice sobre el almacén. observer puede ser nil.
func NewIndex(store repository.EntityStore, observer ScanObserver) *Index {
	return &Index{store: store, observer: observer}
}

// ChildrenOf devuelve los registros de childKind cuyo foreignKey es parentID, en orden de recorrido.
// Un padre inexistente produce un slice vacío, nunca un error.
func (ix *Index) ChildrenOf(childKind entity.Kind, foreignKey, parentID string) []entity.Record {
	all := ix.store.All(childKind)
	out := make([]entity.Record, 0)
	for _, rec := range all {
		if fk, ok := entity.ForeignKey(rec, foreignKey); ok && fk == parentID {
			out = append(out, rec)
		}
	}
	if ix.observer != nil {
		ix.observer.ObserveScan(childKind, foreignKey, len(all))
	}
	return out
}
