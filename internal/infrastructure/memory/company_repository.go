package memory

import (
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre el Store.
type CompanyRepo struct {
	s *Store
}

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(s *Store) *CompanyRepo {
	return &CompanyRepo{s: s}
}

// Create agrega la empresa al final de la colección.
func (r *CompanyRepo) Create(company *entity.Company) error {
	return r.s.Append(company)
}
