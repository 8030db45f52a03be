package workorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/consumption"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/dto"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

// WorkOrderUseCase ciclo de vida de órdenes de trabajo.
//
// Transiciones legales: PLANNED → IN_PROGRESS → COMPLETED;
// PLANNED o IN_PROGRESS → CANCELLED. Al completar, el consumo de BOM corre en
// la misma transacción que el cambio de estado: si el motor devuelve un error,
// la orden queda intacta.
type WorkOrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.WorkOrderRepository // lecturas fuera de transacción
	machineRepo repository.MachineRepository
	engine      *consumption.Engine
	// scaleByQuantity: true = el consumo se multiplica por la cantidad de la
	// orden; false = un lote por completado.
	scaleByQuantity bool
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.WorkOrderRepository,
	machineRepo repository.MachineRepository,
	engine *consumption.Engine,
	scaleByQuantity bool,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		txRunner:        txRunner,
		orderRepo:       orderRepo,
		machineRepo:     machineRepo,
		engine:          engine,
		scaleByQuantity: scaleByQuantity,
	}
}

// Create crea una orden en estado PLANNED.
func (uc *WorkOrderUseCase) Create(in dto.CreateWorkOrderRequest, userID string) (*dto.WorkOrderResponse, error) {
	if in.MachineID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	machine, err := uc.machineRepo.GetByID(in.MachineID)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.WorkOrder{
		ID:             uuid.New().String(),
		OrderNumber:    generateOrderNumber(now),
		MachineID:      in.MachineID,
		Quantity:       in.Quantity,
		Status:         entity.WorkOrderPlanned,
		Priority:       in.Priority,
		PlannedStart:   in.PlannedStart,
		PlannedEnd:     in.PlannedEnd,
		EstimatedHours: in.EstimatedHours,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	resp := toWorkOrderResponse(order)
	return &resp, nil
}

// ChangeStatus aplica una transición de estado. En la transición a COMPLETED
// fija fecha fin y duración real y ejecuta el consumo de BOM sincrónicamente,
// todo en una transacción; la respuesta incluye el resultado por línea.
func (uc *WorkOrderUseCase) ChangeStatus(ctx context.Context, id, status, userID string) (*dto.ChangeWorkOrderStatusResponse, error) {
	target := entity.WorkOrderStatus(status)
	if !target.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.WorkOrder
	var lines []consumption.LineResult

	err := uc.txRunner.RunWorkOrder(ctx, func(
		orderRepo repository.WorkOrderRepository,
		materialRepo repository.MaterialRepository,
		movementRepo repository.MovementRepository,
		bomRepo repository.BOMRepository,
	) error {
		// Bloquea la fila de la orden: dos completados concurrentes no pueden
		// disparar el consumo dos veces.
		order, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.Status.CanTransitionTo(target) {
			return domain.ErrInvalidTransition
		}

		now := time.Now()
		switch target {
		case entity.WorkOrderInProgress:
			// actualStartDate se fija exactamente una vez
			order.ActualStart = &now

		case entity.WorkOrderCompleted:
			order.ActualEnd = &now
			if order.ActualStart != nil {
				hours := entity.DurationHours(*order.ActualStart, now)
				order.ActualHours = &hours
			}
			lines, err = uc.engine.ConsumeInTx(
				materialRepo, movementRepo, bomRepo,
				order.MachineID,
				uc.producedQuantity(order),
				fmt.Sprintf("consumo orden de trabajo %s", order.OrderNumber),
				userID,
				now,
			)
			if err != nil {
				// Error no-dominio del motor: rollback, la orden no cambia.
				return err
			}

		case entity.WorkOrderCancelled:
			// Sin consumo; lo ya aplicado en un completado parcial no se reversa.
		}

		order.Status = target
		order.UpdatedAt = now
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.ChangeWorkOrderStatusResponse{WorkOrder: toWorkOrderResponse(updated)}
	if target == entity.WorkOrderCompleted {
		resp.Consumption = toConsumptionDTOs(lines)
	}
	return resp, nil
}

// producedQuantity cantidad producida a efectos del consumo de BOM.
func (uc *WorkOrderUseCase) producedQuantity(order *entity.WorkOrder) decimal.Decimal {
	if uc.scaleByQuantity {
		return decimal.NewFromInt(int64(order.Quantity))
	}
	return decimal.NewFromInt(1)
}

// GetByID obtiene una orden por ID.
func (uc *WorkOrderUseCase) GetByID(id string) (*dto.WorkOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	resp := toWorkOrderResponse(order)
	return &resp, nil
}

// List lista órdenes, opcionalmente filtradas por estado.
func (uc *WorkOrderUseCase) List(status string, limit, offset int) (*dto.WorkOrderListResponse, error) {
	var filter *entity.WorkOrderStatus
	if status != "" {
		s := entity.WorkOrderStatus(status)
		if !s.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		filter = &s
	}
	list, err := uc.orderRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkOrderResponse, 0, len(list))
	for _, order := range list {
		items = append(items, toWorkOrderResponse(order))
	}
	return &dto.WorkOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una orden; prohibido mientras está IN_PROGRESS.
func (uc *WorkOrderUseCase) Delete(id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status == entity.WorkOrderInProgress {
		return domain.ErrCannotDeleteActiveWorkOrder
	}
	return uc.orderRepo.Delete(id)
}

// generateOrderNumber número legible tipo OT-20260828-0421.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("OT-%s-%04d", now.Format("20060102"), now.UnixNano()%10000)
}

func toWorkOrderResponse(order *entity.WorkOrder) dto.WorkOrderResponse {
	return dto.WorkOrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		MachineID:      order.MachineID,
		Quantity:       order.Quantity,
		Status:         string(order.Status),
		Priority:       order.Priority,
		PlannedStart:   order.PlannedStart,
		PlannedEnd:     order.PlannedEnd,
		ActualStart:    order.ActualStart,
		ActualEnd:      order.ActualEnd,
		EstimatedHours: order.EstimatedHours,
		ActualHours:    order.ActualHours,
		CreatedBy:      order.CreatedBy,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

func toConsumptionDTOs(lines []consumption.LineResult) []dto.ConsumptionLineDTO {
	out := make([]dto.ConsumptionLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.ConsumptionLineDTO{
			MaterialID:   l.MaterialID,
			MaterialCode: l.MaterialCode,
			Required:     l.Required,
			Available:    l.Available,
			StockBefore:  l.StockBefore,
			StockAfter:   l.StockAfter,
			Status:       string(l.Status),
			MovementID:   l.MovementID,
		})
	}
	return out
}
