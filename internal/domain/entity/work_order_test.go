package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkOrderStatus_TransicionesLegales(t *testing.T) {
	assert.True(t, entity.WorkOrderPlanned.CanTransitionTo(entity.WorkOrderInProgress),
		"PLANNED → IN_PROGRESS debe ser legal")
	assert.True(t, entity.WorkOrderPlanned.CanTransitionTo(entity.WorkOrderCancelled),
		"PLANNED → CANCELLED debe ser legal")
	assert.True(t, entity.WorkOrderInProgress.CanTransitionTo(entity.WorkOrderCompleted),
		"IN_PROGRESS → COMPLETED debe ser legal")
	assert.True(t, entity.WorkOrderInProgress.CanTransitionTo(entity.WorkOrderCancelled),
		"IN_PROGRESS → CANCELLED debe ser legal")
}

func TestWorkOrderStatus_TransicionesIlegales(t *testing.T) {
	casos := []struct {
		desde, hacia entity.WorkOrderStatus
	}{
		{entity.WorkOrderPlanned, entity.WorkOrderCompleted},  // saltarse IN_PROGRESS
		{entity.WorkOrderCompleted, entity.WorkOrderPlanned},  // reabrir
		{entity.WorkOrderCompleted, entity.WorkOrderCancelled},
		{entity.WorkOrderCompleted, entity.WorkOrderInProgress},
		{entity.WorkOrderCancelled, entity.WorkOrderPlanned},
		{entity.WorkOrderCancelled, entity.WorkOrderInProgress},
		{entity.WorkOrderCancelled, entity.WorkOrderCompleted},
		{entity.WorkOrderInProgress, entity.WorkOrderPlanned}, // retroceder
	}
	for _, c := range casos {
		assert.False(t, c.desde.CanTransitionTo(c.hacia),
			"%s → %s debe ser ilegal", c.desde, c.hacia)
	}
}

func TestWorkOrderStatus_EstadosTerminales(t *testing.T) {
	assert.False(t, entity.WorkOrderPlanned.IsTerminal())
	assert.False(t, entity.WorkOrderInProgress.IsTerminal())
	assert.True(t, entity.WorkOrderCompleted.IsTerminal())
	assert.True(t, entity.WorkOrderCancelled.IsTerminal())
}

func TestWorkOrderStatus_IsValid(t *testing.T) {
	assert.True(t, entity.WorkOrderPlanned.IsValid())
	assert.False(t, entity.WorkOrderStatus("PAUSED").IsValid())
	assert.False(t, entity.WorkOrderStatus("").IsValid())
}

// ──────────────────────────────────────────────────────────────────────────────
// Duración real
// ──────────────────────────────────────────────────────────────────────────────

func TestDurationHours_RedondeoAlEnteroMasCercano(t *testing.T) {
	start := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	// 5h30m redondea hacia arriba
	assert.Equal(t, 6, entity.DurationHours(start, start.Add(5*time.Hour+30*time.Minute)))
	// 5h29m redondea hacia abajo
	assert.Equal(t, 5, entity.DurationHours(start, start.Add(5*time.Hour+29*time.Minute)))
	// exacto
	assert.Equal(t, 8, entity.DurationHours(start, start.Add(8*time.Hour)))
	// menos de media hora → 0
	assert.Equal(t, 0, entity.DurationHours(start, start.Add(20*time.Minute)))
}
