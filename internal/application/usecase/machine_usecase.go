package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/dto"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

// MachineUseCase casos de uso CRUD para máquinas. Al eliminar una máquina se
// elimina su BOM en cascada explícita (no es un side effect de foreign key).
type MachineUseCase struct {
	repo    repository.MachineRepository
	bomRepo repository.BOMRepository
}

// NewMachineUseCase construye el caso de uso.
func NewMachineUseCase(repo repository.MachineRepository, bomRepo repository.BOMRepository) *MachineUseCase {
	return &MachineUseCase{repo: repo, bomRepo: bomRepo}
}

// Create crea una máquina.
func (uc *MachineUseCase) Create(in dto.CreateMachineRequest) (*dto.MachineResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	machine := &entity.Machine{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(machine); err != nil {
		return nil, err
	}
	resp := toMachineResponse(machine)
	return &resp, nil
}

// GetByID obtiene una máquina por ID.
func (uc *MachineUseCase) GetByID(id string) (*dto.MachineResponse, error) {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, nil
	}
	resp := toMachineResponse(machine)
	return &resp, nil
}

// Update actualiza una máquina.
func (uc *MachineUseCase) Update(id string, in dto.UpdateMachineRequest) (*dto.MachineResponse, error) {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, nil
	}
	if in.Name != nil {
		machine.Name = *in.Name
	}
	if in.Category != nil {
		machine.Category = *in.Category
	}
	if in.Description != nil {
		machine.Description = *in.Description
	}
	machine.UpdatedAt = time.Now()
	if err := uc.repo.Update(machine); err != nil {
		return nil, err
	}
	resp := toMachineResponse(machine)
	return &resp, nil
}

// List lista máquinas con paginación.
func (uc *MachineUseCase) List(limit, offset int) (*dto.MachineListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MachineResponse, 0, len(list))
	for _, machine := range list {
		items = append(items, toMachineResponse(machine))
	}
	return &dto.MachineListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina la máquina y su BOM, en ese orden explícito.
func (uc *MachineUseCase) Delete(id string) error {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if machine == nil {
		return domain.ErrNotFound
	}
	// Cascada explícita: primero el BOM, luego la máquina.
	if err := uc.bomRepo.DeleteByMachine(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toMachineResponse(m *entity.Machine) dto.MachineResponse {
	return dto.MachineResponse{
		ID:          m.ID,
		Code:        m.Code,
		Name:        m.Name,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
