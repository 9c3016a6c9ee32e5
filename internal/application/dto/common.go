package dto

// ErrorResponse cuerpo de error HTTP para fallos de validación e internos.
// Los 404/400 de recurso ausente o búsqueda ambigua se responden con cuerpo
// vacío para mantener el contrato original de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Reference payload que referencia otra entidad solo por su id; se usa para
// vincular entidades en la creación sin transmitir su representación completa.
type Reference struct {
	ID int64 `json:"id"`
}
