package dto

// PageSize filas por página en todos los listados paginados.
const PageSize = 6

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
