package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMItem línea del Bill of Materials de una máquina: cantidad de un material
// necesaria para producir una unidad. El par (machine, material) es único.
type BOMItem struct {
	ID         string
	MachineID  string
	MaterialID string
	Quantity   decimal.Decimal // por unidad producida, > 0
	UnitPrice  decimal.Decimal // snapshot de precio para visualización
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
