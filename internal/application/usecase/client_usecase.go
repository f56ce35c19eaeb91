package usecase

import (
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// UpdateName cambia el nombre del cliente en su lugar; id y companyId no cambian.
// Un id inexistente devuelve (nil, nil) y no modifica nada.
func (uc *ClientUseCase) UpdateName(id, name string) (*entity.Client, error) {
	return uc.repo.UpdateName(id, name)
}
