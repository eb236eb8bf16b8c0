package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Env: "production", Level: "debug", Service: "raash-api"})

	zl := l.Component("checkout")
	zl.Info().Str("order_id", "ORD123456").Msg("pedido creado")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "raash-api", event["service"])
	assert.Equal(t, "checkout", event["component"])
	assert.Equal(t, "ORD123456", event["order_id"])
	assert.Equal(t, "info", event["level"])
}

func TestLogger_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "warn"})

	l.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("sí aparece")
	assert.NotZero(t, buf.Len())
}
