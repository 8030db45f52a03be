package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material materia prima consumida por las máquinas en producción.
// CurrentStock solo se modifica a través del libro de movimientos (ledger),
// dentro de la misma transacción que registra el movimiento.
type Material struct {
	ID           string
	Code         string // único
	Name         string
	Unit         string // kg, m, unidad, litro...
	UnitPrice    decimal.Decimal
	CurrentStock decimal.Decimal // >= 0, invariante del ledger
	MinStock     decimal.Decimal // umbral de reposición
	MaxStock     decimal.Decimal
	Location     string // ubicación física en bodega
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
func (m *Material) IsLowStock() bool {
	return m.CurrentStock.LessThanOrEqual(m.MinStock)
}
