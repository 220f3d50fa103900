package dto

import "github.com/shopspring/decimal"

// ComplementPayload entrada de escritura de Complement. IncreaseValue es 0.00 si se omite al crear.
type ComplementPayload struct {
	Name          *string          `json:"name" validate:"required,notblank,max=255"`
	IncreaseValue *decimal.Decimal `json:"increase_value" validate:"omitempty,money,nonnegative"`
	Image         *string          `json:"image" validate:"omitempty,max=100"`
	Categories    *[]int64         `json:"categories" validate:"required,min=1"`
	CreatedBy     *int64           `json:"created_by"`
	UpdatedBy     *int64           `json:"updated_by"`
}

// ComplementResponse salida de Complement.
type ComplementResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	IncreaseValue string  `json:"increase_value"`
	Image         *string `json:"image"`
	Categories    []int64 `json:"categories"`
	Created       string  `json:"created"`
	Updated       string  `json:"updated"`
}
