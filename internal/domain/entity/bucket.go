package entity

import "time"

// Bucket agrupación nombrada de medicamentos con imagen de portada y
// capacidad/cantidad declaradas. Solo se crea y lista; no se edita.
type Bucket struct {
	ID              int64
	Name            string
	Image           []string // URLs en el host de medios
	CreatedBy       string
	CreatedAt       time.Time
	Capacity        string
	NumberMedicines int
}
