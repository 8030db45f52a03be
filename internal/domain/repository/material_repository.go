package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
// GetForUpdate y UpdateStock solo deben usarse dentro de una transacción del
// ledger: son la sección crítica por material que serializa check-then-act.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByCode(code string) (*entity.Material, error)
	// GetForUpdate bloquea la fila del material (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Material, error)
	Update(material *entity.Material) error
	// UpdateStock fija el stock actual y la fecha de modificación. Reservado al ledger.
	UpdateStock(id string, stock decimal.Decimal, updatedAt time.Time) error
	List(limit, offset int) ([]*entity.Material, error)
	ListLowStock(limit int) ([]*entity.Material, error)
	Delete(id string) error
}
