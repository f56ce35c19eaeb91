package usecase

import (
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/infrastructure/memory"
)

// Mutations agrupa los casos de uso de escritura expuestos a la interfaz de consulta.
type Mutations struct {
	Companies *CompanyUseCase
	Clients   *ClientUseCase
	Invoices  *InvoiceUseCase
}

// NewMutations cablea los casos de uso sobre un almacén en memoria.
func NewMutations(s *memory.Store, idStrategy string) *Mutations {
	return &Mutations{
		Companies: NewCompanyUseCase(memory.NewCompanyRepository(s), memory.NewIDGenerator(idStrategy, s)),
		Clients:   NewClientUseCase(memory.NewClientRepository(s)),
		Invoices:  NewInvoiceUseCase(memory.NewInvoiceRepository(s)),
	}
}

// AddCompany crea una empresa.
func (m *Mutations) AddCompany(name string) (entity.Record, error) {
	c, err := m.Companies.Add(name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateClient renombra un cliente; nil si no existe.
func (m *Mutations) UpdateClient(id, name string) (entity.Record, error) {
	c, err := m.Clients.UpdateName(id, name)
	if err != nil || c == nil {
		return nil, err
	}
	return c, nil
}

// DeleteInvoice elimina una factura; nil si no existe.
func (m *Mutations) DeleteInvoice(id string) (entity.Record, error) {
	inv, err := m.Invoices.Delete(id)
	if err != nil || inv == nil {
		return nil, err
	}
	return inv, nil
}
