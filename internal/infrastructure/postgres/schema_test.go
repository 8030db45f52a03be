package postgres_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// El esquema SQL debe coincidir con los tipos de las entidades: los repositorios
// pasan los valores Go tal cual a pgx, y un desfase de tipo de columna falla
// recién en runtime.
// ──────────────────────────────────────────────────────────────────────────────

func readSchema(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../../migrations/001_schema.sql")
	require.NoError(t, err, "el esquema inicial debe existir")
	return string(data)
}

func TestEsquema_PrioridadDeOrdenEsEntera(t *testing.T) {
	schema := readSchema(t)

	// WorkOrder.Priority es int; una columna TEXT no acepta el parámetro
	// entero que envía el repositorio.
	assert.Regexp(t, `priority\s+INTEGER NOT NULL DEFAULT 0`, schema,
		"work_orders.priority debe ser INTEGER como el campo de la entidad")
	assert.NotRegexp(t, `priority\s+TEXT`, schema)
}

func TestEsquema_RolPorDefectoEnMinusculas(t *testing.T) {
	schema := readSchema(t)

	// Los roles de la aplicación son minúsculas (admin, supervisor, operario);
	// el default de la columna debe usar la misma forma.
	assert.Regexp(t, `role\s+TEXT NOT NULL DEFAULT 'operario'`, schema)
	assert.NotContains(t, schema, "'OPERARIO'")
}

func TestEsquema_RespaldaInvariantesDelDominio(t *testing.T) {
	schema := readSchema(t)

	assert.Regexp(t, `UNIQUE \(machine_id, material_id\)`, schema,
		"el par (máquina, material) del BOM debe ser único también en la base")
	assert.Regexp(t, `CHECK \(current_stock >= 0\)`, schema,
		"el stock nunca puede quedar negativo, tampoco por SQL directo")
	assert.Regexp(t, `status IN \('PLANNED', 'IN_PROGRESS', 'COMPLETED', 'CANCELLED'\)`, schema)
}
