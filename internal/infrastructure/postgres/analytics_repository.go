package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool (solo lectura).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetStockMetrics valor total del inventario (Σ stock × precio) y cantidad de materiales.
func (r *AnalyticsRepo) GetStockMetrics(ctx context.Context) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(current_stock * unit_price), 0), COUNT(*)
		FROM materials`
	var totalValue decimal.Decimal
	var count int
	if err := r.q.QueryRow(ctx, query).Scan(&totalValue, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("stock metrics: %w", err)
	}
	return totalValue, count, nil
}

// GetWorkOrderCounts órdenes agrupadas por estado.
func (r *AnalyticsRepo) GetWorkOrderCounts(ctx context.Context) (map[entity.WorkOrderStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM work_orders GROUP BY status`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("work order counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.WorkOrderStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan work order count: %w", err)
		}
		counts[entity.WorkOrderStatus(status)] = n
	}
	return counts, rows.Err()
}

// CountMovementsSince movimientos creados desde la fecha dada.
func (r *AnalyticsRepo) CountMovementsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements WHERE created_at >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}
