package entity

import "time"

// Machine máquina de producción. Su BOM define los materiales necesarios
// para producir una unidad.
type Machine struct {
	ID          string
	Code        string // único
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
