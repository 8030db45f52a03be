package bom

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/dto"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

// BOMUseCase mantiene el Bill of Materials de cada máquina.
// Invariante: el par (máquina, material) aparece a lo sumo una vez.
type BOMUseCase struct {
	bomRepo      repository.BOMRepository
	machineRepo  repository.MachineRepository
	materialRepo repository.MaterialRepository
}

// NewBOMUseCase construye el caso de uso.
func NewBOMUseCase(bomRepo repository.BOMRepository, machineRepo repository.MachineRepository, materialRepo repository.MaterialRepository) *BOMUseCase {
	return &BOMUseCase{bomRepo: bomRepo, machineRepo: machineRepo, materialRepo: materialRepo}
}

// GetBOM devuelve el BOM ordenado de una máquina, con código y nombre de cada material.
func (uc *BOMUseCase) GetBOM(machineID string) (*dto.BOMResponse, error) {
	machine, err := uc.machineRepo.GetByID(machineID)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.bomRepo.ListByMachine(machineID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BOMItemResponse, 0, len(items))
	for _, item := range items {
		resp := toBOMItemResponse(item)
		if material, err := uc.materialRepo.GetByID(item.MaterialID); err == nil && material != nil {
			resp.MaterialCode = material.Code
			resp.MaterialName = material.Name
		}
		out = append(out, resp)
	}
	return &dto.BOMResponse{MachineID: machineID, Items: out}, nil
}

// AddItem agrega una línea al BOM. Rechaza cantidades no positivas y el par
// (máquina, material) duplicado.
func (uc *BOMUseCase) AddItem(machineID string, in dto.AddBOMItemRequest) (*dto.BOMItemResponse, error) {
	if in.MaterialID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	machine, err := uc.machineRepo.GetByID(machineID)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrNotFound
	}
	material, err := uc.materialRepo.GetByID(in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.bomRepo.GetByMachineAndMaterial(machineID, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateBOMEntry
	}

	unitPrice := material.UnitPrice
	if in.UnitPrice != nil {
		unitPrice = *in.UnitPrice
	}
	now := time.Now()
	item := &entity.BOMItem{
		ID:         uuid.New().String(),
		MachineID:  machineID,
		MaterialID: in.MaterialID,
		Quantity:   in.Quantity,
		UnitPrice:  unitPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.bomRepo.Create(item); err != nil {
		return nil, err
	}
	resp := toBOMItemResponse(item)
	resp.MaterialCode = material.Code
	resp.MaterialName = material.Name
	return &resp, nil
}

// UpdateItem actualiza cantidad y/o precio snapshot de una línea.
func (uc *BOMUseCase) UpdateItem(machineID, itemID string, in dto.UpdateBOMItemRequest) (*dto.BOMItemResponse, error) {
	item, err := uc.bomRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.MachineID != machineID {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil {
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	item.UpdatedAt = time.Now()
	if err := uc.bomRepo.Update(item); err != nil {
		return nil, err
	}
	resp := toBOMItemResponse(item)
	return &resp, nil
}

// RemoveItem elimina una línea del BOM.
func (uc *BOMUseCase) RemoveItem(machineID, itemID string) error {
	item, err := uc.bomRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil || item.MachineID != machineID {
		return domain.ErrNotFound
	}
	return uc.bomRepo.Delete(itemID)
}

func toBOMItemResponse(item *entity.BOMItem) dto.BOMItemResponse {
	return dto.BOMItemResponse{
		ID:         item.ID,
		MachineID:  item.MachineID,
		MaterialID: item.MaterialID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}
