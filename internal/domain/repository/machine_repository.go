package repository

import (
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
)

// MachineRepository define el puerto de persistencia para Machine.
type MachineRepository interface {
	Create(machine *entity.Machine) error
	GetByID(id string) (*entity.Machine, error)
	GetByCode(code string) (*entity.Machine, error)
	Update(machine *entity.Machine) error
	List(limit, offset int) ([]*entity.Machine, error)
	Delete(id string) error
}
