package dto

// ListQuery parámetros de orden para listados.
type ListQuery struct {
	OrderBy string `query:"order_by"`
	Asc     bool   `query:"asc"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"` // campo que falló la validación, si aplica
}

// DateLayout formato de fechas en la API (ISO, solo fecha).
const DateLayout = "2006-01-02"
