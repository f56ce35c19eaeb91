package usecase

import (
	"fmt"

	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	ids  repository.IDGenerator
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y el generador de IDs.
func NewCompanyUseCase(repo repository.CompanyRepository, ids repository.IDGenerator) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, ids: ids}
}

// Add crea una empresa con un ID nuevo y la agrega al final de la colección.
// No se valida el nombre (ni vacío ni unicidad).
func (uc *CompanyUseCase) Add(name string) (*entity.Company, error) {
	company := &entity.Company{
		ID:   uc.ids.NextID(entity.KindCompany),
		Name: name,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, fmt.Errorf("crear empresa: %w", err)
	}
	return company, nil
}
