package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Pertenece a una única Category.
type Product struct {
	ID             int64
	Name           string          // único
	Price          decimal.Decimal // 2 decimales
	Description    string
	Image          *string
	MaxComplements int
	CategoryID     int64
	Authorship
	Item
}
