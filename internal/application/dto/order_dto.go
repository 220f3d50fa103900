package dto

// OrderPayload entrada de escritura de Order. User y Status al crear los impone el servidor.
type OrderPayload struct {
	Comment  *string `json:"comment" validate:"required,notblank"`
	Delivery *bool   `json:"delivery" validate:"required"`
	Location *string `json:"location" validate:"required,notblank,max=255"`
	Status   *string `json:"status" validate:"omitempty,max=100"`
	Active   *bool   `json:"active"`
	User     *int64  `json:"user"`
}

// OrderResponse salida de Order (sin el usuario).
type OrderResponse struct {
	ID       int64  `json:"id"`
	Comment  string `json:"comment"`
	Delivery bool   `json:"delivery"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Active   bool   `json:"active"`
	Created  string `json:"created"`
}
