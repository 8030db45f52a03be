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

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

const workOrderColumns = `id, order_number, machine_id, quantity, status, priority,
	planned_start, planned_end, actual_start, actual_end,
	estimated_hours, actual_hours, created_by, created_at, updated_at`

// WorkOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create persiste una orden de trabajo.
func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (` + workOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.MachineID, order.Quantity, string(order.Status), order.Priority,
		order.PlannedStart, order.PlannedEnd, order.ActualStart, order.ActualEnd,
		order.EstimatedHours, order.ActualHours, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // la máquina referenciada no existe
		}
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	return scanWorkOrder(r.q.QueryRow(context.Background(), query, id), "get work order")
}

// GetForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE).
// Serializa cambios de estado concurrentes sobre la misma orden.
func (r *WorkOrderRepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1 FOR UPDATE`
	return scanWorkOrder(r.q.QueryRow(context.Background(), query, id), "get work order for update")
}

// Update actualiza una orden (estado, fechas reales, duración).
func (r *WorkOrderRepo) Update(order *entity.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET status = $2, priority = $3, planned_start = $4, planned_end = $5,
		    actual_start = $6, actual_end = $7, estimated_hours = $8, actual_hours = $9,
		    updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, string(order.Status), order.Priority, order.PlannedStart, order.PlannedEnd,
		order.ActualStart, order.ActualEnd, order.EstimatedHours, order.ActualHours,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	return nil
}

// List lista órdenes, opcionalmente filtradas por estado; más recientes primero.
func (r *WorkOrderRepo) List(status *entity.WorkOrderStatus, limit, offset int) ([]*entity.WorkOrder, error) {
	var rows pgx.Rows
	var err error
	if status != nil {
		query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		rows, err = r.q.Query(context.Background(), query, string(*status), limit, offset)
	} else {
		query := `SELECT ` + workOrderColumns + ` FROM work_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		rows, err = r.q.Query(context.Background(), query, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.WorkOrder
	for rows.Next() {
		var o entity.WorkOrder
		var statusStr string
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.MachineID, &o.Quantity, &statusStr, &o.Priority,
			&o.PlannedStart, &o.PlannedEnd, &o.ActualStart, &o.ActualEnd,
			&o.EstimatedHours, &o.ActualHours, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		o.Status = entity.WorkOrderStatus(statusStr)
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una orden por ID.
func (r *WorkOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM work_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work order: %w", err)
	}
	return nil
}

func scanWorkOrder(row pgx.Row, op string) (*entity.WorkOrder, error) {
	var o entity.WorkOrder
	var statusStr string
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.MachineID, &o.Quantity, &statusStr, &o.Priority,
		&o.PlannedStart, &o.PlannedEnd, &o.ActualStart, &o.ActualEnd,
		&o.EstimatedHours, &o.ActualHours, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	o.Status = entity.WorkOrderStatus(statusStr)
	return &o, nil
}
