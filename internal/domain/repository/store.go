package repository

import "github.com/jhoicas/facturas-graph/internal/domain/entity"

// EntityStore define el puerto de lectura del almacén de entidades.
// All devuelve los registros en orden de inserción; los punteros son compartidos
// con el almacén, así que una mutación es visible de inmediato para quien los tenga.
type EntityStore interface {
	All(kind entity.Kind) []entity.Record
	FindByID(kind entity.Kind, id string) (entity.Record, bool)
}

// IDGenerator genera identificadores nuevos para un tipo de entidad.
type IDGenerator interface {
	NextID(kind entity.Kind) string
}
