package consumption

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/ledger"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
	"github.com/Hakan0032/modern-stock-management-sub000/pkg/logger"
)

// LineStatus resultado de una línea del BOM durante el consumo.
type LineStatus string

const (
	LineApplied                  LineStatus = "applied"
	LineSkippedInsufficientStock LineStatus = "skipped_insufficient_stock"
)

// LineResult resultado por línea: qué se consumió y qué se saltó, con el stock
// antes y después para que el caller pueda reportar consumos parciales.
type LineResult struct {
	MaterialID   string
	MaterialCode string
	Required     decimal.Decimal
	Available    decimal.Decimal
	StockBefore  decimal.Decimal
	StockAfter   decimal.Decimal
	Status       LineStatus
	MovementID   string
}

// Engine explota el BOM de una máquina en movimientos OUT del ledger.
//
// Política de suficiencia: una línea sin stock suficiente se salta (sin
// movimiento y sin error al caller) y el motor continúa con la siguiente.
// El resultado por línea deja el consumo parcial visible en la respuesta;
// no se reversa lo ya aplicado.
type Engine struct {
	txRunner ledger.TxRunner
	applyUC  *ledger.ApplyMovementUseCase
	log      *logger.Logger
}

// NewEngine construye el motor de consumo.
func NewEngine(txRunner ledger.TxRunner, applyUC *ledger.ApplyMovementUseCase, log *logger.Logger) *Engine {
	return &Engine{txRunner: txRunner, applyUC: applyUC, log: log}
}

// ConsumeInTx explota el BOM usando los repositorios proporcionados (misma
// transacción del caller). Por cada línea: required = cantidad × quantityProduced,
// bloqueo de la fila del material, verificación de suficiencia y movimiento OUT
// vía el ledger. Una línea insuficiente se registra como saltada y se continúa.
// Cualquier otro error aborta la transacción completa.
func (e *Engine) ConsumeInTx(
	materialRepo repository.MaterialRepository,
	movementRepo repository.MovementRepository,
	bomRepo repository.BOMRepository,
	machineID string,
	quantityProduced decimal.Decimal,
	reason, performedBy string,
	now time.Time,
) ([]LineResult, error) {
	items, err := bomRepo.ListByMachine(machineID)
	if err != nil {
		return nil, err
	}

	results := make([]LineResult, 0, len(items))
	for _, item := range items {
		required := item.Quantity.Mul(quantityProduced)

		// Bloquea la fila del material; la verificación y el descuento quedan
		// bajo el mismo lock dentro de la transacción.
		material, err := materialRepo.GetForUpdate(item.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			// BOM apuntando a un material borrado: error inesperado, aborta.
			return nil, errMaterialMissing(item.MaterialID)
		}

		before := material.CurrentStock
		if before.LessThan(required) {
			e.log.Warn().
				Str("machine_id", machineID).
				Str("material_id", material.ID).
				Str("material_code", material.Code).
				Str("required", required.String()).
				Str("available", before.String()).
				Msg("consumo de BOM: línea saltada por stock insuficiente")
			results = append(results, LineResult{
				MaterialID:   material.ID,
				MaterialCode: material.Code,
				Required:     required,
				Available:    before,
				StockBefore:  before,
				StockAfter:   before,
				Status:       LineSkippedInsufficientStock,
			})
			continue
		}

		mov, err := e.applyUC.ApplyOUTInTx(materialRepo, movementRepo, material.ID, required, reason, "", performedBy, now)
		if err != nil {
			return nil, err
		}
		results = append(results, LineResult{
			MaterialID:   material.ID,
			MaterialCode: material.Code,
			Required:     required,
			Available:    before,
			StockBefore:  before,
			StockAfter:   before.Sub(required),
			Status:       LineApplied,
			MovementID:   mov.ID,
		})
	}
	return results, nil
}

// Consume explota el BOM en una transacción propia. Para consumos manuales
// fuera del ciclo de una orden de trabajo.
func (e *Engine) Consume(ctx context.Context, machineID string, quantityProduced decimal.Decimal, reason, performedBy string) ([]LineResult, error) {
	var results []LineResult
	now := time.Now()
	err := e.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		movementRepo repository.MovementRepository,
		bomRepo repository.BOMRepository,
	) error {
		var err error
		results, err = e.ConsumeInTx(materialRepo, movementRepo, bomRepo, machineID, quantityProduced, reason, performedBy, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func errMaterialMissing(materialID string) error {
	return fmt.Errorf("material %s referenciado por el BOM: %w", materialID, domain.ErrNotFound)
}
