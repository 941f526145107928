// Package logger builds *slog.Logger instances for the validation engine and
// provides attribute helpers that keep key names consistent.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithTextFormatter(),
//		logger.WithAttr(slog.String("component", "signup-form")),
//	)
//	log.Debug("rule failed", logger.Field("email"), logger.Rule("email"))
//
// Discard returns a logger that drops every record; it is the engine default.
package logger
