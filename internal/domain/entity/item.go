package entity

import "time"

// TimestampLayout formato de fecha de salida de la API (DD/MM/YYYY HH:MM:SS).
const TimestampLayout = "02/01/2006 15:04:05"

// Item rasgo común de los artículos del catálogo (Product y Complement): disponibilidad y marcas de tiempo.
type Item struct {
	InStock   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Authorship usuarios que crearon y modificaron por última vez el registro. Solo los asigna el servidor.
type Authorship struct {
	CreatedBy int64
	UpdatedBy *int64 // nil hasta la primera actualización
}

// FormatTimestamp formatea t en UTC con TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp interpreta una fecha con TimestampLayout (UTC).
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}
