package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/ledger"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/workorder"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

// Asegura que TxRunner implementa ledger.TxRunner y workorder.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ workorder.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	movementRepo repository.MovementRepository,
	bomRepo repository.BOMRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	materialRepo := NewMaterialRepository(tx)
	movementRepo := NewMovementRepository(tx)
	bomRepo := NewBOMRepository(tx)

	if err := fn(materialRepo, movementRepo, bomRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunWorkOrder inicia una transacción que cubre la orden de trabajo y el consumo
// de inventario (para el completado de órdenes).
func (r *TxRunner) RunWorkOrder(ctx context.Context, fn func(
	workOrderRepo repository.WorkOrderRepository,
	materialRepo repository.MaterialRepository,
	movementRepo repository.MovementRepository,
	bomRepo repository.BOMRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	workOrderRepo := NewWorkOrderRepository(tx)
	materialRepo := NewMaterialRepository(tx)
	movementRepo := NewMovementRepository(tx)
	bomRepo := NewBOMRepository(tx)

	if err := fn(workOrderRepo, materialRepo, movementRepo, bomRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
