package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hakan0032/modern-stock-management-sub000/pkg/logger"
)

func TestNew_AgregaNombreDeAppComoCampoFijo(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info", App: "stock-api"})

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	assert.Contains(t, buf.String(), `"app":"stock-api"`,
		"cada línea debe identificar el servicio que la emitió")
}

func TestNew_SinNombreDeAppNoAgregaElCampo(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	assert.NotContains(t, buf.String(), `"app"`)
}
