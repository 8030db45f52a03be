package bom_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/bom"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/dto"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

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
func (r *memBOMRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
func (r *memBOMRepo) DeleteByMachine(machineID string) error {
	var keep []*entity.BOMItem
	for _, it := range r.items {
		if it.MachineID != machineID {
			keep = append(keep, it)
		}
	}
	r.items = keep
	return nil
}

type memMachineRepo struct {
	items map[string]*entity.Machine
}

func (r *memMachineRepo) Create(m *entity.Machine) error                 { r.items[m.ID] = m; return nil }
func (r *memMachineRepo) GetByID(id string) (*entity.Machine, error)     { return r.items[id], nil }
func (r *memMachineRepo) GetByCode(code string) (*entity.Machine, error) { return nil, nil }
func (r *memMachineRepo) Update(m *entity.Machine) error                 { return nil }
func (r *memMachineRepo) List(limit, offset int) ([]*entity.Machine, error) {
	return nil, nil
}
func (r *memMachineRepo) Delete(id string) error { delete(r.items, id); return nil }

type memMaterialRepo struct {
	items map[string]*entity.Material
}

func (r *memMaterialRepo) Create(m *entity.Material) error                 { r.items[m.ID] = m; return nil }
func (r *memMaterialRepo) GetByID(id string) (*entity.Material, error)     { return r.items[id], nil }
func (r *memMaterialRepo) GetByCode(code string) (*entity.Material, error) { return nil, nil }
func (r *memMaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.items[id], nil
}
func (r *memMaterialRepo) Update(m *entity.Material) error { return nil }
func (r *memMaterialRepo) UpdateStock(id string, stock decimal.Decimal, updatedAt time.Time) error {
	return nil
}
func (r *memMaterialRepo) List(limit, offset int) ([]*entity.Material, error) { return nil, nil }
func (r *memMaterialRepo) ListLowStock(limit int) ([]*entity.Material, error) { return nil, nil }
func (r *memMaterialRepo) Delete(id string) error                             { return nil }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newUseCase() (*bom.BOMUseCase, *memBOMRepo) {
	machines := &memMachineRepo{items: map[string]*entity.Machine{
		"maq1": {ID: "maq1", Code: "MAQ-001", Name: "Prensa"},
	}}
	materials := &memMaterialRepo{items: map[string]*entity.Material{
		"m1": {ID: "m1", Code: "MAT-001", Name: "Acero", UnitPrice: dec("3.75")},
		"m2": {ID: "m2", Code: "MAT-002", Name: "Tornillo", UnitPrice: dec("0.10")},
	}}
	bomRepo := &memBOMRepo{}
	return bom.NewBOMUseCase(bomRepo, machines, materials), bomRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_AgregaLineaConSnapshotDelPrecio(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("2")})
	require.NoError(t, err)

	assert.True(t, resp.UnitPrice.Equal(dec("3.75")),
		"sin precio explícito se toma el precio actual del material como snapshot")
	assert.Equal(t, "MAT-001", resp.MaterialCode)
	assert.Equal(t, "Acero", resp.MaterialName)
}

func TestAddItem_PrecioExplicitoPisaElSnapshot(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.AddItem("maq1", dto.AddBOMItemRequest{
		MaterialID: "m1", Quantity: dec("2"), UnitPrice: decPtr("4.20"),
	})
	require.NoError(t, err)
	assert.True(t, resp.UnitPrice.Equal(dec("4.20")))
}

func TestAddItem_ParMaquinaMaterialDuplicadoRechazado(t *testing.T) {
	uc, bomRepo := newUseCase()

	_, err := uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("2")})
	require.NoError(t, err)

	_, err = uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("9")})
	assert.ErrorIs(t, err, domain.ErrDuplicateBOMEntry)
	assert.Len(t, bomRepo.items, 1, "el duplicado no debe persistirse")

	_, err = uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m2", Quantity: dec("4")})
	assert.NoError(t, err, "materiales distintos en la misma máquina son legales")
}

func TestAddItem_ValidaCantidadYExistencia(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = uc.AddItem("maq-fantasma", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound, "máquina inexistente")

	_, err = uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m-fantasma", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound, "material inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateItem_SoloDeLaMismaMaquina(t *testing.T) {
	uc, bomRepo := newUseCase()

	item, err := uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("2")})
	require.NoError(t, err)

	_, err = uc.UpdateItem("otra-maquina", item.ID, dto.UpdateBOMItemRequest{Quantity: decPtr("3")})
	assert.ErrorIs(t, err, domain.ErrNotFound, "la línea pertenece a otra máquina")

	resp, err := uc.UpdateItem("maq1", item.ID, dto.UpdateBOMItemRequest{Quantity: decPtr("3")})
	require.NoError(t, err)
	assert.True(t, resp.Quantity.Equal(dec("3")))

	_, err = uc.UpdateItem("maq1", item.ID, dto.UpdateBOMItemRequest{Quantity: decPtr("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.Len(t, bomRepo.items, 1)
}

func TestRemoveItem_EliminaLaLinea(t *testing.T) {
	uc, bomRepo := newUseCase()

	item, err := uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("2")})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.RemoveItem("otra-maquina", item.ID), domain.ErrNotFound)
	require.NoError(t, uc.RemoveItem("maq1", item.ID))
	assert.Empty(t, bomRepo.items)

	// tras borrar, el material puede volver a agregarse
	_, err = uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("5")})
	assert.NoError(t, err)
}

func TestGetBOM_EnriqueceConDatosDelMaterial(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m1", Quantity: dec("2")})
	require.NoError(t, err)
	_, err = uc.AddItem("maq1", dto.AddBOMItemRequest{MaterialID: "m2", Quantity: dec("8")})
	require.NoError(t, err)

	resp, err := uc.GetBOM("maq1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "MAT-001", resp.Items[0].MaterialCode)
	assert.Equal(t, "Tornillo", resp.Items[1].MaterialName)

	_, err = uc.GetBOM("maq-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
