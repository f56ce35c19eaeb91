package memory

import (
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre el Store.
type InvoiceRepo struct {
	s *Store
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(s *Store) *InvoiceRepo {
	return &InvoiceRepo{s: s}
}

// Delete elimina la factura y la devuelve. Sus líneas quedan huérfanas en el almacén.
func (r *InvoiceRepo) Delete(id string) (*entity.Invoice, error) {
	rec, ok := r.s.Remove(entity.KindInvoice, id)
	if !ok {
		return nil, nil
	}
	return rec.(*entity.Invoice), nil
}
