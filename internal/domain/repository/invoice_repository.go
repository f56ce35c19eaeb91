package repository

import "github.com/jhoicas/facturas-graph/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Delete elimina la factura y la devuelve; (nil, nil) si no existe.
	// Las líneas de la factura no se tocan.
	Delete(id string) (*entity.Invoice, error)
}
