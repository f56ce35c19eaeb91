package memory

import (
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre el Store.
type ClientRepo struct {
	s *Store
}

// NewClientRepository construye el adaptador.
func NewClientRepository(s *Store) *ClientRepo {
	return &ClientRepo{s: s}
}

// UpdateName cambia el nombre en su lugar. (nil, nil) si el id no existe.
func (r *ClientRepo) UpdateName(id, name string) (*entity.Client, error) {
	rec, ok := r.s.Update(entity.KindClient, id, func(rec entity.Record) {
		rec.(*entity.Client).Name = name
	})
	if !ok {
		return nil, nil
	}
	return rec.(*entity.Client), nil
}
