package repository

import (
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
)

// WorkOrderRepository define el puerto de persistencia para órdenes de trabajo.
type WorkOrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	// GetForUpdate bloquea la fila de la orden (SELECT FOR UPDATE) para cambios de estado.
	GetForUpdate(id string) (*entity.WorkOrder, error)
	Update(order *entity.WorkOrder) error
	// List filtra por estado si status != nil; más recientes primero.
	List(status *entity.WorkOrderStatus, limit, offset int) ([]*entity.WorkOrder, error)
	Delete(id string) error
}
