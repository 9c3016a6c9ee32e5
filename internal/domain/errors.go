package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrBadSearch    = errors.New("combinación de filtros de búsqueda inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
