package repository

import (
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// Los registros son inmutables: solo Create y lecturas.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListByMaterial devuelve movimientos de un material, más recientes primero.
	ListByMaterial(materialID string, limit, offset int) ([]*entity.StockMovement, error)
	// ListRecent devuelve los últimos movimientos, más recientes primero.
	ListRecent(limit int) ([]*entity.StockMovement, error)
}
