package entity

import (
	"math"
	"time"
)

// WorkOrderStatus estado de una orden de trabajo. Tipado para rechazar
// estados ilegales en construcción.
type WorkOrderStatus string

const (
	WorkOrderPlanned    WorkOrderStatus = "PLANNED"
	WorkOrderInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderCancelled  WorkOrderStatus = "CANCELLED"
)

// IsValid verifica que el estado sea uno de los cuatro conocidos.
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderPlanned, WorkOrderInProgress, WorkOrderCompleted, WorkOrderCancelled:
		return true
	}
	return false
}

// IsTerminal indica si el estado no admite más transiciones.
func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderCompleted || s == WorkOrderCancelled
}

// CanTransitionTo implementa la máquina de estados:
// PLANNED → IN_PROGRESS → COMPLETED; PLANNED o IN_PROGRESS → CANCELLED.
// Cualquier otra transición es ilegal.
func (s WorkOrderStatus) CanTransitionTo(target WorkOrderStatus) bool {
	switch s {
	case WorkOrderPlanned:
		return target == WorkOrderInProgress || target == WorkOrderCancelled
	case WorkOrderInProgress:
		return target == WorkOrderCompleted || target == WorkOrderCancelled
	}
	return false
}

// WorkOrder orden de producción contra una máquina, con ciclo de vida por estados.
type WorkOrder struct {
	ID             string
	OrderNumber    string // único, legible (OT-20260828-0001)
	MachineID      string
	Quantity       int // unidades a producir
	Status         WorkOrderStatus
	Priority       int // 0 = normal, 1 = urgente, 2 = crítica
	PlannedStart   *time.Time
	PlannedEnd     *time.Time
	ActualStart    *time.Time // se fija una sola vez, en PLANNED → IN_PROGRESS
	ActualEnd      *time.Time // se fija una sola vez, en IN_PROGRESS → COMPLETED
	EstimatedHours int
	ActualHours    *int // horas reales, redondeadas
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DurationHours calcula la duración en horas entre start y end, redondeada
// al entero más cercano (5h30m → 6).
func DurationHours(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours()))
}
