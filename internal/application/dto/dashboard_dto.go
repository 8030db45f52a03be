package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del inventario y la producción (solo lectura).
type DashboardSummaryDTO struct {
	TotalStockValue  decimal.Decimal    `json:"total_stock_value"`
	MaterialCount    int                `json:"material_count"`
	LowStockCount    int                `json:"low_stock_count"`
	LowStock         []MaterialResponse `json:"low_stock"`
	WorkOrdersByStat map[string]int     `json:"work_orders_by_status"`
	MovementsToday   int                `json:"movements_today"`
}
