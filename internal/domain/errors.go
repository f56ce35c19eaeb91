package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La ausencia de un registro en updateClient/deleteInvoice NO es un error: se representa con nil.
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnknownKind      = errors.New("tipo de entidad desconocido")
	ErrUnknownField     = errors.New("campo desconocido")
	ErrUnknownOperation = errors.New("operación desconocida")
	ErrMissingArgument  = errors.New("argumento requerido")
)
