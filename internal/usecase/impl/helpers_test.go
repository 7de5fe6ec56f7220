package impl

import (
	"io"
	"log/slog"

	"jobboard/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(upsertOnUpdate bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Jobs: &config.JobsConfig{
			UpsertOnUpdate: upsertOnUpdate,
		},
	}
}
