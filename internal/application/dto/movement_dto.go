package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest registro manual de un movimiento de stock.
type CreateMovementRequest struct {
	MaterialID string          `json:"material_id"`
	Type       string          `json:"type"` // IN | OUT
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason"`
	Location   string          `json:"location"`
}

// MovementResponse representación de un movimiento del ledger.
type MovementResponse struct {
	ID          string          `json:"id"`
	MaterialID  string          `json:"material_id"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Reason      string          `json:"reason"`
	Location    string          `json:"location"`
	PerformedBy string          `json:"performed_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MovementListResponse listado de movimientos, más recientes primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
