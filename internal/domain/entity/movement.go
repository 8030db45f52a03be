package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de stock. Tipado para que el compilador
// rechace estados ilegales en construcción.
type MovementType string

const (
	MovementTypeIN  MovementType = "IN"  // entrada
	MovementTypeOUT MovementType = "OUT" // salida
)

// IsValid verifica que el tipo sea IN u OUT.
func (t MovementType) IsValid() bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// StockMovement registro inmutable del libro de movimientos.
// La suma con signo de los movimientos de un material (IN = +q, OUT = -q)
// debe coincidir en todo momento con Material.CurrentStock.
type StockMovement struct {
	ID          string
	MaterialID  string
	Type        MovementType
	Quantity    decimal.Decimal // siempre > 0; el signo lo da Type
	UnitPrice   decimal.Decimal // precio unitario al momento del movimiento
	TotalPrice  decimal.Decimal // Quantity × UnitPrice
	Reason      string          // compra, consumo de orden, ajuste, etc.
	Location    string
	PerformedBy string // UserID
	CreatedAt   time.Time
}

// SignedQuantity devuelve la cantidad con signo según el tipo.
func (m *StockMovement) SignedQuantity() decimal.Decimal {
	if m.Type == MovementTypeOUT {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
