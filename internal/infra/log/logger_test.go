package logs

import (
	"log/slog"
	"testing"

	"jobboard/config"
	"jobboard/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogConfig(env string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Env.Log.Level = "info"
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNew_PrettyUsesTextHandler(t *testing.T) {
	logger, err := New(Params{Config: testLogConfig(constants.EnvLocal, true)})
	require.NoError(t, err)

	assert.IsType(t, &slog.TextHandler{}, logger.Handler())
}

func TestNew_ProductionForcesJSONHandler(t *testing.T) {
	logger, err := New(Params{Config: testLogConfig(constants.EnvProduction, true)})
	require.NoError(t, err)

	assert.IsType(t, &slog.JSONHandler{}, logger.Handler())
}

func TestNew_UnknownLevelFails(t *testing.T) {
	cfg := testLogConfig(constants.EnvLocal, false)
	cfg.Env.Log.Level = "verbose"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}
