package dto

import "github.com/shopspring/decimal"

// ProductPayload entrada de escritura de Product. CreatedBy/UpdatedBy se aceptan en el JSON solo para
// ser descartados: los asigna el servidor.
type ProductPayload struct {
	Name           *string          `json:"name" validate:"required,notblank,max=255"`
	Price          *decimal.Decimal `json:"price" validate:"required,money"`
	Description    *string          `json:"description" validate:"required,notblank,max=500"`
	Image          *string          `json:"image" validate:"omitempty,max=30"`
	MaxComplements *int             `json:"max_complements" validate:"required,gte=0"`
	InStock        *bool            `json:"in_stock"`
	Category       *int64           `json:"category" validate:"required"`
	CreatedBy      *int64           `json:"created_by"`
	UpdatedBy      *int64           `json:"updated_by"`
}

// ProductResponse salida de Product.
type ProductResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Price          string  `json:"price"`
	Description    string  `json:"description"`
	Image          *string `json:"image"`
	MaxComplements int     `json:"max_complements"`
	InStock        bool    `json:"in_stock"`
	Category       int64   `json:"category"`
	Created        string  `json:"created"`
	Updated        string  `json:"updated"`
}
