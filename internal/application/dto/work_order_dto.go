package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest alta de orden de trabajo (nace en PLANNED).
type CreateWorkOrderRequest struct {
	MachineID      string     `json:"machine_id"`
	Quantity       int        `json:"quantity"`
	Priority       int        `json:"priority"`
	PlannedStart   *time.Time `json:"planned_start"`
	PlannedEnd     *time.Time `json:"planned_end"`
	EstimatedHours int        `json:"estimated_hours"`
}

// ChangeWorkOrderStatusRequest cambio de estado de una orden.
type ChangeWorkOrderStatusRequest struct {
	Status string `json:"status"` // PLANNED | IN_PROGRESS | COMPLETED | CANCELLED
}

// WorkOrderResponse representación de una orden de trabajo.
type WorkOrderResponse struct {
	ID             string     `json:"id"`
	OrderNumber    string     `json:"order_number"`
	MachineID      string     `json:"machine_id"`
	Quantity       int        `json:"quantity"`
	Status         string     `json:"status"`
	Priority       int        `json:"priority"`
	PlannedStart   *time.Time `json:"planned_start"`
	PlannedEnd     *time.Time `json:"planned_end"`
	ActualStart    *time.Time `json:"actual_start"`
	ActualEnd      *time.Time `json:"actual_end"`
	EstimatedHours int        `json:"estimated_hours"`
	ActualHours    *int       `json:"actual_hours"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// WorkOrderListResponse listado paginado de órdenes.
type WorkOrderListResponse struct {
	Items []WorkOrderResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// ConsumptionLineDTO resultado por línea del consumo de BOM al completar una orden.
// Status: "applied" o "skipped_insufficient_stock".
type ConsumptionLineDTO struct {
	MaterialID   string          `json:"material_id"`
	MaterialCode string          `json:"material_code"`
	Required     decimal.Decimal `json:"required"`
	Available    decimal.Decimal `json:"available"`
	StockBefore  decimal.Decimal `json:"stock_before"`
	StockAfter   decimal.Decimal `json:"stock_after"`
	Status       string          `json:"status"`
	MovementID   string          `json:"movement_id,omitempty"`
}

// ChangeWorkOrderStatusResponse orden actualizada; Consumption solo viene
// en la transición a COMPLETED.
type ChangeWorkOrderStatusResponse struct {
	WorkOrder   WorkOrderResponse    `json:"work_order"`
	Consumption []ConsumptionLineDTO `json:"consumption,omitempty"`
}
