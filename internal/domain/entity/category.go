package entity

import "time"

// Category agrupa productos (uno a muchos) y complementos (muchos a muchos). Name es único.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
