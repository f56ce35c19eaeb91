package usecase

import (
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

// InvoiceUseCase casos de uso para facturas.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// Delete elimina la factura y la devuelve; (nil, nil) si no existe.
// No hay borrado en cascada: las líneas quedan huérfanas y siguen resolviéndose por invoiceId.
func (uc *InvoiceUseCase) Delete(id string) (*entity.Invoice, error) {
	return uc.repo.Delete(id)
}
