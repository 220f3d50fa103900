package entity

import "github.com/shopspring/decimal"

// Complement representa un adicional aplicable a los productos de sus categorías.
type Complement struct {
	ID            int64
	Name          string          // único
	IncreaseValue decimal.Decimal // >= 0, 2 decimales
	Image         *string
	CategoryIDs   []int64 // nunca vacío al crear
	Authorship
	Item
}

// HasCategory indica si el complemento aplica a la categoría dada.
func (c *Complement) HasCategory(categoryID int64) bool {
	for _, id := range c.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
