package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/ledger"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memMaterialRepo struct {
	items map[string]*entity.Material
}

func newMemMaterialRepo(materials ...*entity.Material) *memMaterialRepo {
	r := &memMaterialRepo{items: make(map[string]*entity.Material)}
	for _, m := range materials {
		r.items[m.ID] = m
	}
	return r
}

func (r *memMaterialRepo) Create(m *entity.Material) error { r.items[m.ID] = m; return nil }
func (r *memMaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.items[id], nil
}
func (r *memMaterialRepo) GetByCode(code string) (*entity.Material, error) {
	for _, m := range r.items {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, nil
}
func (r *memMaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.items[id], nil
}
func (r *memMaterialRepo) Update(m *entity.Material) error { r.items[m.ID] = m; return nil }
func (r *memMaterialRepo) UpdateStock(id string, stock decimal.Decimal, updatedAt time.Time) error {
	m, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.CurrentStock = stock
	m.UpdatedAt = updatedAt
	return nil
}
func (r *memMaterialRepo) List(limit, offset int) ([]*entity.Material, error) { return nil, nil }
func (r *memMaterialRepo) ListLowStock(limit int) ([]*entity.Material, error) { return nil, nil }
func (r *memMaterialRepo) Delete(id string) error                             { delete(r.items, id); return nil }

type memMovementRepo struct {
	created []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.created = append(r.created, m)
	return nil
}
func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.created {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *memMovementRepo) ListByMaterial(materialID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.created {
		if m.MaterialID == materialID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *memMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	return r.created, nil
}

type memBOMRepo struct {
	items []*entity.BOMItem
}

func (r *memBOMRepo) Create(item *entity.BOMItem) error { r.items = append(r.items, item); return nil }
func (r *memBOMRepo) GetByID(id string) (*entity.BOMItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}
func (r *memBOMRepo) GetByMachineAndMaterial(machineID, materialID string) (*entity.BOMItem, error) {
	for _, it := range r.items {
		if it.MachineID == machineID && it.MaterialID == materialID {
			return it, nil
		}
	}
	return nil, nil
}
func (r *memBOMRepo) ListByMachine(machineID string) ([]*entity.BOMItem, error) {
	var out []*entity.BOMItem
	for _, it := range r.items {
		if it.MachineID == machineID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memBOMRepo) Update(item *entity.BOMItem) error { return nil }
func (r *memBOMRepo) Delete(id string) error            { return nil }
func (r *memBOMRepo) DeleteByMachine(machineID string) error {
	return nil
}

// fakeTxRunner ejecuta fn directamente contra los repos en memoria. El caso de
// uso valida antes de mutar, así que un rechazo no deja efectos parciales.
type fakeTxRunner struct {
	materials *memMaterialRepo
	movements *memMovementRepo
	boms      *memBOMRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.MaterialRepository,
	repository.MovementRepository,
	repository.BOMRepository,
) error) error {
	return fn(r.materials, r.movements, r.boms)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func material(id, code, stock, price string) *entity.Material {
	return &entity.Material{
		ID:           id,
		Code:         code,
		Name:         "Material " + code,
		Unit:         "kg",
		UnitPrice:    dec(price),
		CurrentStock: dec(stock),
		Location:     "A-01",
	}
}

func buildUseCase(materials ...*entity.Material) (*ledger.ApplyMovementUseCase, *memMaterialRepo, *memMovementRepo) {
	matRepo := newMemMaterialRepo(materials...)
	movRepo := &memMovementRepo{}
	runner := &fakeTxRunner{materials: matRepo, movements: movRepo, boms: &memBOMRepo{}}
	return ledger.NewApplyMovementUseCase(runner, movRepo), matRepo, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos IN
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_INSumaStockYRegistraMovimiento(t *testing.T) {
	uc, matRepo, movRepo := buildUseCase(material("m1", "MAT-001", "10", "2.50"))

	resp, err := uc.ApplyMovement(context.Background(), ledger.MovementInputDTO{
		MaterialID:  "m1",
		Type:        entity.MovementTypeIN,
		Quantity:    dec("4"),
		Reason:      "compra",
		PerformedBy: "u1",
	})
	require.NoError(t, err)

	m, _ := matRepo.GetByID("m1")
	assert.True(t, m.CurrentStock.Equal(dec("14")), "stock debe quedar en 14, quedó %s", m.CurrentStock)
	require.Len(t, movRepo.created, 1)
	assert.Equal(t, "IN", resp.Type)
	assert.True(t, resp.Quantity.Equal(dec("4")))
}

func TestApplyMovement_INCongelaPrecioUnitarioYTotal(t *testing.T) {
	uc, _, _ := buildUseCase(material("m1", "MAT-001", "0", "2.50"))

	resp, err := uc.ApplyMovement(context.Background(), ledger.MovementInputDTO{
		MaterialID: "m1",
		Type:       entity.MovementTypeIN,
		Quantity:   dec("4"),
	})
	require.NoError(t, err)

	assert.True(t, resp.UnitPrice.Equal(dec("2.50")), "unit_price debe ser el precio vigente del material")
	assert.True(t, resp.TotalPrice.Equal(dec("10")), "total_price = 4 × 2.50 = 10, fue %s", resp.TotalPrice)
}

func TestApplyMovement_INHeredaUbicacionDelMaterial(t *testing.T) {
	uc, _, _ := buildUseCase(material("m1", "MAT-001", "0", "1"))

	resp, err := uc.ApplyMovement(context.Background(), ledger.MovementInputDTO{
		MaterialID: "m1",
		Type:       entity.MovementTypeIN,
		Quantity:   dec("1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "A-01", resp.Location, "sin ubicación explícita se usa la del material")
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos OUT
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_OUTRestaStock(t *testing.T) {
	uc, matRepo, _ := buildUseCase(material("m1", "MAT-001", "10", "1"))

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInputDTO{
		MaterialID: "m1",
		Type:       entity.MovementTypeOUT,
		Quantity:   dec("3.5"),
	})
	require.NoError(t, err)

	m, _ := matRepo.GetByID("m1")
	assert.True(t, m.CurrentStock.Equal(dec("6.5")))
}

func TestApplyMovement_OUTInsuficienteRechazaSinEfecto(t *testing.T) {
	uc, matRepo, movRepo := buildUseCase(material("m1", "MAT-001", "5", "1"))

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInputDTO{
		MaterialID: "m1",
		Type:       entity.MovementTypeOUT,
		Quantity:   dec("5.01"),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	m, _ := matRepo.GetByID("m1")
	assert.True(t, m.CurrentStock.Equal(dec("5")), "el stock no debe cambiar en un rechazo")
	assert.Empty(t, movRepo.created, "no debe registrarse ningún movimiento")
}

func TestApplyMovement_OUTExactoDejaStockEnCero(t *testing.T) {
	uc, matRepo, _ := buildUseCase(material("m1", "MAT-001", "5", "1"))

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInputDTO{
		MaterialID: "m1",
		Type:       entity.MovementTypeOUT,
		Quantity:   dec("5"),
	})
	require.NoError(t, err)

	m, _ := matRepo.GetByID("m1")
	assert.True(t, m.CurrentStock.IsZero(), "retirar exactamente el stock disponible es legal")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y consistencia del ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_ValidaEntrada(t *testing.T) {
	uc, _, _ := buildUseCase(material("m1", "MAT-001", "5", "1"))
	ctx := context.Background()

	_, err := uc.ApplyMovement(ctx, ledger.MovementInputDTO{Type: entity.MovementTypeIN, Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "material_id vacío")

	_, err = uc.ApplyMovement(ctx, ledger.MovementInputDTO{MaterialID: "m1", Type: "TRANSFER", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	_, err = uc.ApplyMovement(ctx, ledger.MovementInputDTO{MaterialID: "m1", Type: entity.MovementTypeOUT, Quantity: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.ApplyMovement(ctx, ledger.MovementInputDTO{MaterialID: "m1", Type: entity.MovementTypeIN, Quantity: dec("-2")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")
}

func TestApplyMovement_MaterialInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInputDTO{
		MaterialID: "no-existe",
		Type:       entity.MovementTypeIN,
		Quantity:   dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El stock final debe coincidir con la suma con signo de los movimientos.
func TestApplyMovement_StockCoincideConSumaDeMovimientos(t *testing.T) {
	uc, matRepo, movRepo := buildUseCase(material("m1", "MAT-001", "0", "1"))
	ctx := context.Background()

	pasos := []struct {
		tipo entity.MovementType
		qty  string
	}{
		{entity.MovementTypeIN, "10"},
		{entity.MovementTypeOUT, "3"},
		{entity.MovementTypeIN, "2.5"},
		{entity.MovementTypeOUT, "1.25"},
	}
	for _, p := range pasos {
		_, err := uc.ApplyMovement(ctx, ledger.MovementInputDTO{MaterialID: "m1", Type: p.tipo, Quantity: dec(p.qty)})
		require.NoError(t, err)
	}

	suma := decimal.Zero
	for _, mov := range movRepo.created {
		suma = suma.Add(mov.SignedQuantity())
	}
	m, _ := matRepo.GetByID("m1")
	assert.True(t, m.CurrentStock.Equal(suma),
		"stock %s debe igualar la suma con signo de movimientos %s", m.CurrentStock, suma)
	assert.True(t, m.CurrentStock.Equal(dec("8.25")))
}
