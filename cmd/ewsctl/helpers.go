package main

import (
	"encoding/json"
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/food_insecurity_ews/internal/alert"
	"github.com/shenikar/food_insecurity_ews/internal/app"
	"github.com/shenikar/food_insecurity_ews/internal/config"
	"github.com/shenikar/food_insecurity_ews/internal/observability"
	"github.com/shenikar/food_insecurity_ews/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (o *options) toConfig() *config.Config {
	return &config.Config{
		LogLevel:      o.logLevel,
		ModelDir:      o.modelDir,
		ReferenceFile: o.referenceFile,
		DatabaseURL:   o.databaseURL,
		MigrationsDir: "file://migrations",
		AlertSink:     config.AlertSinkNone,
	}
}

func (o *options) newLogger(cmd *cobra.Command) *logrus.Logger {
	return logger.NewWithOutput(o.logLevel, cmd.ErrOrStderr())
}

// loadService загружает справочник и модель. Алерты офлайн не публикуются.
func (o *options) loadService(cmd *cobra.Command) (*app.Service, error) {
	return app.NewService(
		cmd.Context(),
		o.toConfig(),
		o.newLogger(cmd),
		observability.NewUnregisteredMetrics(),
		alert.NoopPublisher{},
		clockwork.NewRealClock(),
	)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
