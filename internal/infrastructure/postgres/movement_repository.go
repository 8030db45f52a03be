package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, material_id, type, quantity, unit_price, total_price, reason, location, performed_by, created_at`

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: los movimientos son inmutables.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento del ledger.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	performedBy := (*string)(nil)
	if movement.PerformedBy != "" {
		performedBy = &movement.PerformedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.MaterialID, string(movement.Type),
		movement.Quantity, movement.UnitPrice, movement.TotalPrice,
		movement.Reason, movement.Location, performedBy, movement.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // material o usuario referenciado no existe
		}
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var typ string
	var performedBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.MaterialID, &typ, &m.Quantity, &m.UnitPrice, &m.TotalPrice,
		&m.Reason, &m.Location, &performedBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	m.Type = entity.MovementType(typ)
	if performedBy != nil {
		m.PerformedBy = *performedBy
	}
	return &m, nil
}

// ListByMaterial devuelve movimientos de un material, más recientes primero.
func (r *MovementRepo) ListByMaterial(materialID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE material_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, materialID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by material: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListRecent devuelve los últimos movimientos del ledger, más recientes primero.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		ORDER BY created_at DESC, id DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var typ string
		var performedBy *string
		if err := rows.Scan(
			&m.ID, &m.MaterialID, &typ, &m.Quantity, &m.UnitPrice, &m.TotalPrice,
			&m.Reason, &m.Location, &performedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.Type = entity.MovementType(typ)
		if performedBy != nil {
			m.PerformedBy = *performedBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
