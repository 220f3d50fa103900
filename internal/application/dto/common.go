package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y límites a Limit/Offset.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Page resultado paginado de un caso de uso; el handler agrega next/previous.
type Page[T any] struct {
	Count   int
	Limit   int
	Offset  int
	Results []T
}

// ListResponse cuerpo de los listados: {"count", "next", "previous", "results"}.
type ListResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ErrorResponse cuerpo de error HTTP (401/403/404/500).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
