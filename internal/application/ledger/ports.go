package ledger

import (
	"context"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la verificación de stock, el ajuste y el registro del movimiento
// sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		movementRepo repository.MovementRepository,
		bomRepo repository.BOMRepository,
	) error) error
}
