// Package memory implementa el almacén de entidades en memoria y sus adaptadores de repositorio.
package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/facturas-graph/internal/domain"
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

var _ repository.EntityStore = (*Store)(nil)

// Store mantiene una colección ordenada por tipo de entidad.
// Es el dueño explícito del estado: cada instancia es independiente (aislamiento en tests).
type Store struct {
	mu          sync.RWMutex
	collections map[entity.Kind][]entity.Record
}

// NewStore construye un almacén vacío con las cinco colecciones.
func NewStore() *Store {
	s := &Store{collections: make(map[entity.Kind][]entity.Record, len(entity.Kinds()))}
	for _, k := range entity.Kinds() {
		s.collections[k] = nil
	}
	return s
}

// All devuelve los registros del tipo en orden de inserción.
// El slice es nuevo; los registros son los mismos punteros del almacén.
func (s *Store) All(kind entity.Kind) []entity.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.collections[kind]
	out := make([]entity.Record, len(src))
	copy(out, src)
	return out
}

// FindByID busca linealmente el primer registro con ese id.
func (s *Store) FindByID(kind entity.Kind, id string) (entity.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, rec := s.find(kind, id)
	return rec, rec != nil
}

// Len devuelve el tamaño actual de la colección.
func (s *Store) Len(kind entity.Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[kind])
}

// Append agrega un registro al final de su colección.
// Devuelve domain.ErrDuplicate si el id ya existe dentro del tipo.
func (s *Store) Append(rec entity.Record) error {
	kind := rec.Kind()
	if !kind.Valid() {
		return fmt.Errorf("append %q: %w", kind, domain.ErrUnknownKind)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, _ := s.find(kind, rec.RecordID()); i >= 0 {
		return fmt.Errorf("append %s %q: %w", kind, rec.RecordID(), domain.ErrDuplicate)
	}
	s.collections[kind] = append(s.collections[kind], rec)
	return nil
}

// Update aplica fn al registro en su lugar (identidad y posición intactas).
// Devuelve false si el id no existe; en ese caso fn no se invoca.
func (s *Store) Update(kind entity.Kind, id string, fn func(entity.Record)) (entity.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, rec := s.find(kind, id)
	if rec == nil {
		return nil, false
	}
	fn(rec)
	return rec, true
}

// Remove elimina físicamente el registro y lo devuelve. No hay borrado en cascada.
func (s *Store) Remove(kind entity.Kind, id string) (entity.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, rec := s.find(kind, id)
	if rec == nil {
		return nil, false
	}
	col := s.collections[kind]
	s.collections[kind] = append(col[:i:i], col[i+1:]...)
	return rec, true
}

// find requiere el lock tomado.
func (s *Store) find(kind entity.Kind, id string) (int, entity.Record) {
	for i, rec := range s.collections[kind] {
		if rec.RecordID() == id {
			return i, rec
		}
	}
	return -1, nil
}
