package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de errores de PostgreSQL por código SQLSTATE. Los repositorios
// dependen de estos helpers para traducir violaciones de constraint a errores
// del dominio (23505 -> duplicado, 23503 -> la fila referenciada no existe).
// ──────────────────────────────────────────────────────────────────────────────

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "materials_code_key"}

	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert material: %w", pgErr)),
		"debe detectar el código aunque el error venga envuelto")
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "stock_movements_material_id_fkey"}

	assert.True(t, isForeignKeyViolation(pgErr))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert movement: %w", pgErr)))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}),
		"un duplicado no es una violación de foreign key")
	assert.False(t, isForeignKeyViolation(errors.New("connection refused")))
}
