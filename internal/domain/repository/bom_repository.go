package repository

import (
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
)

// BOMRepository define el puerto de persistencia para los BOM de las máquinas.
type BOMRepository interface {
	Create(item *entity.BOMItem) error
	GetByID(id string) (*entity.BOMItem, error)
	// GetByMachineAndMaterial permite verificar el invariante de unicidad (machine, material).
	GetByMachineAndMaterial(machineID, materialID string) (*entity.BOMItem, error)
	// ListByMachine devuelve el BOM ordenado de una máquina.
	ListByMachine(machineID string) ([]*entity.BOMItem, error)
	Update(item *entity.BOMItem) error
	Delete(id string) error
	// DeleteByMachine elimina el BOM completo (cascada explícita al borrar la máquina).
	DeleteByMachine(machineID string) error
}
