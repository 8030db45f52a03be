// Package analytics contiene los casos de uso de solo lectura para el
// dashboard de inventario y producción.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/dto"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

const dashboardLowStockLimit = 5 // materiales en el widget de stock bajo

// DashboardUseCase genera el resumen de inventario y producción.
//
// Fuente de datos: AnalyticsRepository y MaterialRepository (consultas
// read-only, sumas puras). No muta estado.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	materialRepo  repository.MaterialRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, materialRepo repository.MaterialRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, materialRepo: materialRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetStockMetrics          → valor total + cantidad de materiales
//  2. GetWorkOrderCounts       → órdenes por estado
//  3. ListLowStock             → materiales bajo mínimo
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type stockResult struct {
		totalValue decimal.Decimal
		count      int
		err        error
	}
	type countsResult struct {
		counts map[string]int
		err    error
	}
	type lowStockResult struct {
		items []dto.MaterialResponse
		err   error
	}

	stockCh := make(chan stockResult, 1)
	countsCh := make(chan countsResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		total, count, err := uc.analyticsRepo.GetStockMetrics(ctx)
		stockCh <- stockResult{total, count, err}
	}()
	go func() {
		byStatus, err := uc.analyticsRepo.GetWorkOrderCounts(ctx)
		if err != nil {
			countsCh <- countsResult{nil, err}
			return
		}
		counts := make(map[string]int, len(byStatus))
		for status, n := range byStatus {
			counts[string(status)] = n
		}
		countsCh <- countsResult{counts, nil}
	}()
	go func() {
		list, err := uc.materialRepo.ListLowStock(dashboardLowStockLimit)
		if err != nil {
			lowCh <- lowStockResult{nil, err}
			return
		}
		items := make([]dto.MaterialResponse, 0, len(list))
		for _, m := range list {
			items = append(items, dto.MaterialResponse{
				ID:           m.ID,
				Code:         m.Code,
				Name:         m.Name,
				Unit:         m.Unit,
				UnitPrice:    m.UnitPrice,
				CurrentStock: m.CurrentStock,
				MinStock:     m.MinStock,
				MaxStock:     m.MaxStock,
				Location:     m.Location,
				LowStock:     true,
				CreatedAt:    m.CreatedAt,
				UpdatedAt:    m.UpdatedAt,
			})
		}
		lowCh <- lowStockResult{items, nil}
	}()

	stock := <-stockCh
	counts := <-countsCh
	low := <-lowCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de stock: %w", stock.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes por estado: %w", counts.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	movementsToday, err := uc.analyticsRepo.CountMovementsSince(ctx, todayStart)
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", err)
	}

	return &dto.DashboardSummaryDTO{
		TotalStockValue:  stock.totalValue.Round(2),
		MaterialCount:    stock.count,
		LowStockCount:    len(low.items),
		LowStock:         low.items,
		WorkOrdersByStat: counts.counts,
		MovementsToday:   movementsToday,
	}, nil
}
