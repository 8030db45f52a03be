package workorder

import (
	"context"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que abarca la orden de
// trabajo y el consumo de inventario: el cambio de estado y los movimientos del
// ledger se confirman o se revierten juntos.
type TxRunner interface {
	RunWorkOrder(ctx context.Context, fn func(
		workOrderRepo repository.WorkOrderRepository,
		materialRepo repository.MaterialRepository,
		movementRepo repository.MovementRepository,
		bomRepo repository.BOMRepository,
	) error) error
}
