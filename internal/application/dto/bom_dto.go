package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddBOMItemRequest agrega un material al BOM de una máquina.
// Si UnitPrice es nil se toma el precio actual del material como snapshot.
type AddBOMItemRequest struct {
	MaterialID string           `json:"material_id"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
}

// UpdateBOMItemRequest actualiza cantidad y/o precio snapshot de una línea.
type UpdateBOMItemRequest struct {
	Quantity  *decimal.Decimal `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// BOMItemResponse línea del BOM con datos del material para visualización.
type BOMItemResponse struct {
	ID           string          `json:"id"`
	MachineID    string          `json:"machine_id"`
	MaterialID   string          `json:"material_id"`
	MaterialCode string          `json:"material_code,omitempty"`
	MaterialName string          `json:"material_name,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BOMResponse BOM completo de una máquina.
type BOMResponse struct {
	MachineID string            `json:"machine_id"`
	Items     []BOMItemResponse `json:"items"`
}
