package dto

// CategoryPayload entrada de escritura de Category.
type CategoryPayload struct {
	Name *string `json:"name" validate:"required,notblank,max=100"`
}

// CategoryResponse salida de Category.
type CategoryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
}
