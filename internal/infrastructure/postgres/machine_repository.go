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

var _ repository.MachineRepository = (*MachineRepo)(nil)

const machineColumns = `id, code, name, category, description, created_at, updated_at`

// MachineRepo implementación sobre PostgreSQL (usable con pool o tx).
type MachineRepo struct {
	q Querier
}

// NewMachineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

// Create persiste una máquina.
func (r *MachineRepo) Create(machine *entity.Machine) error {
	query := `
		INSERT INTO machines (` + machineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		machine.ID, machine.Code, machine.Name, machine.Category, machine.Description,
		machine.CreatedAt, machine.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

// GetByID obtiene una máquina por ID.
func (r *MachineRepo) GetByID(id string) (*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = $1`
	return scanMachine(r.q.QueryRow(context.Background(), query, id), "get machine")
}

// GetByCode obtiene una máquina por código.
func (r *MachineRepo) GetByCode(code string) (*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE code = $1`
	return scanMachine(r.q.QueryRow(context.Background(), query, code), "get machine by code")
}

// Update actualiza una máquina.
func (r *MachineRepo) Update(machine *entity.Machine) error {
	query := `
		UPDATE machines SET name = $2, category = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		machine.ID, machine.Name, machine.Category, machine.Description, machine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update machine: %w", err)
	}
	return nil
}

// List lista máquinas con paginación.
func (r *MachineRepo) List(limit, offset int) ([]*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Category, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina una máquina por ID. El BOM se elimina antes, en cascada explícita.
func (r *MachineRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete machine: %w", err)
	}
	return nil
}

func scanMachine(row pgx.Row, op string) (*entity.Machine, error) {
	var m entity.Machine
	err := row.Scan(&m.ID, &m.Code, &m.Name, &m.Category, &m.Description, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}
