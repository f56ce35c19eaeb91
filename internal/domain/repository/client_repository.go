package repository

import "github.com/jhoicas/facturas-graph/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	// UpdateName devuelve (nil, nil) si el id no existe.
	UpdateName(id, name string) (*entity.Client, error)
}
