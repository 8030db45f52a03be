package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/dto"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

// ApplyMovementUseCase aplica movimientos de stock (IN/OUT) de forma transaccional:
// bloqueo de la fila del material (SELECT FOR UPDATE), verificación de suficiencia
// en salidas, ajuste de stock y registro inmutable en el ledger, con Commit/Rollback.
type ApplyMovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository // lecturas fuera de transacción
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// MovementInputDTO entrada para aplicar un movimiento de stock.
type MovementInputDTO struct {
	MaterialID  string
	Type        entity.MovementType
	Quantity    decimal.Decimal
	Reason      string
	Location    string
	PerformedBy string
}

// ApplyMovement inicia una transacción, bloquea la fila del material, aplica la
// lógica según tipo (IN suma, OUT verifica suficiencia y resta) y hace Commit o
// Rollback. Tras el retorno, el stock del material coincide con la suma con
// signo de sus movimientos.
func (uc *ApplyMovementUseCase) ApplyMovement(ctx context.Context, input MovementInputDTO) (*dto.MovementResponse, error) {
	if input.MaterialID == "" || !input.Type.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var created *entity.StockMovement

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		movementRepo repository.MovementRepository,
		_ repository.BOMRepository,
	) error {
		var err error
		switch input.Type {
		case entity.MovementTypeIN:
			created, err = uc.ApplyINInTx(materialRepo, movementRepo, input.MaterialID, input.Quantity, input.Reason, input.Location, input.PerformedBy, now)
		case entity.MovementTypeOUT:
			created, err = uc.ApplyOUTInTx(materialRepo, movementRepo, input.MaterialID, input.Quantity, input.Reason, input.Location, input.PerformedBy, now)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToMovementResponse(created)
	return &resp, nil
}

// ApplyINInTx aplica una entrada usando los repositorios proporcionados (misma
// transacción del caller): bloquea la fila del material, suma la cantidad y
// registra el movimiento con el precio unitario vigente.
func (uc *ApplyMovementUseCase) ApplyINInTx(
	materialRepo repository.MaterialRepository,
	movementRepo repository.MovementRepository,
	materialID string,
	quantity decimal.Decimal,
	reason, location, performedBy string,
	now time.Time,
) (*entity.StockMovement, error) {
	// Bloquea la fila del material (SELECT FOR UPDATE) para evitar condiciones de carrera
	material, err := materialRepo.GetForUpdate(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	newStock := material.CurrentStock.Add(quantity)
	if err := materialRepo.UpdateStock(materialID, newStock, now); err != nil {
		return nil, err
	}
	mov := newMovement(material, entity.MovementTypeIN, quantity, reason, location, performedBy, now)
	if err := movementRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// ApplyOUTInTx aplica una salida usando los repositorios proporcionados (misma
// transacción del caller). Verifica StockActual >= CantidadSolicitada antes de
// restar; si no alcanza devuelve ErrInsufficientStock sin efecto parcial.
// Lo usa también el motor de consumo de órdenes de trabajo.
func (uc *ApplyMovementUseCase) ApplyOUTInTx(
	materialRepo repository.MaterialRepository,
	movementRepo repository.MovementRepository,
	materialID string,
	quantity decimal.Decimal,
	reason, location, performedBy string,
	now time.Time,
) (*entity.StockMovement, error) {
	// Bloquea la fila del material (SELECT FOR UPDATE)
	material, err := materialRepo.GetForUpdate(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if material.CurrentStock.LessThan(quantity) {
		return nil, domain.ErrInsufficientStock
	}
	newStock := material.CurrentStock.Sub(quantity)
	if err := materialRepo.UpdateStock(materialID, newStock, now); err != nil {
		return nil, err
	}
	mov := newMovement(material, entity.MovementTypeOUT, quantity, reason, location, performedBy, now)
	if err := movementRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// ListByMaterial devuelve los movimientos de un material, más recientes primero.
func (uc *ApplyMovementUseCase) ListByMaterial(materialID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListByMaterial(materialID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list), nil
}

// ListRecent devuelve los últimos movimientos del ledger, más recientes primero.
func (uc *ApplyMovementUseCase) ListRecent(limit int) (*dto.MovementListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	list, err := uc.movementRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return toMovementList(list), nil
}

// newMovement construye el registro inmutable con el precio unitario del
// material al momento del movimiento.
func newMovement(material *entity.Material, typ entity.MovementType, quantity decimal.Decimal, reason, location, performedBy string, now time.Time) *entity.StockMovement {
	if location == "" {
		location = material.Location
	}
	return &entity.StockMovement{
		ID:          uuid.New().String(),
		MaterialID:  material.ID,
		Type:        typ,
		Quantity:    quantity,
		UnitPrice:   material.UnitPrice,
		TotalPrice:  quantity.Mul(material.UnitPrice),
		Reason:      reason,
		Location:    location,
		PerformedBy: performedBy,
		CreatedAt:   now,
	}
}

// ToMovementResponse mapea la entidad al DTO de respuesta.
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		MaterialID:  m.MaterialID,
		Type:        string(m.Type),
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TotalPrice:  m.TotalPrice,
		Reason:      m.Reason,
		Location:    m.Location,
		PerformedBy: m.PerformedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func toMovementList(list []*entity.StockMovement) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}
}
