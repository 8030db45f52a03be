package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
)

// AnalyticsRepository consultas read-only para el dashboard.
// Sumas puras sobre materiales, movimientos y órdenes; no muta estado.
type AnalyticsRepository interface {
	// GetStockMetrics devuelve el valor total del inventario (Σ stock × precio)
	// y la cantidad de materiales registrados.
	GetStockMetrics(ctx context.Context) (totalValue decimal.Decimal, materialCount int, err error)
	// GetWorkOrderCounts devuelve el número de órdenes por estado.
	GetWorkOrderCounts(ctx context.Context) (map[entity.WorkOrderStatus]int, error)
	// CountMovementsSince cuenta movimientos creados desde la fecha dada.
	CountMovementsSince(ctx context.Context, since time.Time) (int, error)
}
