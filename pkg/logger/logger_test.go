package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m))
		out = append(out, m)
	}
	return out
}

func TestNewWithWriter_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "WARN")

	log.Info().Msg("descartado")
	log.Warn().Msg("visible")

	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "visible", got[0]["message"])
	assert.Equal(t, "warn", got[0]["level"])
}

func TestNewWithWriter_NivelDesconocidoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "verbose")

	log.Debug().Msg("descartado")
	log.Info().Msg("visible")

	assert.Len(t, lines(t, &buf), 1)
}

func TestNamed_EncadenaComponentSinRepetirCampo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info").Named("http").Named("auth")

	log.Info().Msg("login")

	assert.Equal(t, "http.auth", log.Name())
	assert.Equal(t, 1, strings.Count(buf.String(), `"component"`))
	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "http.auth", got[0]["component"])
}

func TestNew_Service(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Service: "gestione-fascicoli", Out: &buf})

	log.Named("fascicoli").Info().Msg("ok")

	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "gestione-fascicoli", got[0]["service"])
	assert.Equal(t, "fascicoli", got[0]["component"])
}

func TestNop_NoEscribe(t *testing.T) {
	log := logger.Nop().Named("x")
	assert.NotPanics(t, func() { log.Error().Msg("nada") })
	assert.Equal(t, "x", log.Name())
}
