package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

const bomColumns = `id, machine_id, material_id, quantity, unit_price, created_at, updated_at`

// BOMRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla lleva UNIQUE (machine_id, material_id) como respaldo del invariante.
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// Create persiste una línea de BOM.
func (r *BOMRepo) Create(item *entity.BOMItem) error {
	query := `
		INSERT INTO bom_items (` + bomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.MachineID, item.MaterialID, item.Quantity, item.UnitPrice,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBOMEntry
		}
		return fmt.Errorf("insert bom item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID.
func (r *BOMRepo) GetByID(id string) (*entity.BOMItem, error) {
	query := `SELECT ` + bomColumns + ` FROM bom_items WHERE id = $1`
	return scanBOMItem(r.q.QueryRow(context.Background(), query, id), "get bom item")
}

// GetByMachineAndMaterial busca la línea del par (máquina, material), si existe.
func (r *BOMRepo) GetByMachineAndMaterial(machineID, materialID string) (*entity.BOMItem, error) {
	query := `SELECT ` + bomColumns + ` FROM bom_items WHERE machine_id = $1 AND material_id = $2`
	return scanBOMItem(r.q.QueryRow(context.Background(), query, machineID, materialID), "get bom item by machine and material")
}

// ListByMachine devuelve el BOM ordenado de una máquina (orden de inserción).
func (r *BOMRepo) ListByMachine(machineID string) ([]*entity.BOMItem, error) {
	query := `SELECT ` + bomColumns + ` FROM bom_items WHERE machine_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, machineID)
	if err != nil {
		return nil, fmt.Errorf("list bom items: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOMItem
	for rows.Next() {
		var item entity.BOMItem
		if err := rows.Scan(
			&item.ID, &item.MachineID, &item.MaterialID, &item.Quantity, &item.UnitPrice,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bom item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Update actualiza cantidad y precio snapshot de una línea.
func (r *BOMRepo) Update(item *entity.BOMItem) error {
	query := `UPDATE bom_items SET quantity = $2, unit_price = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Quantity, item.UnitPrice, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update bom item: %w", err)
	}
	return nil
}

// Delete elimina una línea por ID.
func (r *BOMRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bom_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bom item: %w", err)
	}
	return nil
}

// DeleteByMachine elimina el BOM completo de una máquina (cascada explícita).
func (r *BOMRepo) DeleteByMachine(machineID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bom_items WHERE machine_id = $1`, machineID)
	if err != nil {
		return fmt.Errorf("delete bom by machine: %w", err)
	}
	return nil
}

func scanBOMItem(row pgx.Row, op string) (*entity.BOMItem, error) {
	var item entity.BOMItem
	err := row.Scan(
		&item.ID, &item.MachineID, &item.MaterialID, &item.Quantity, &item.UnitPrice,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}
