// Package logger configures the slog logger the SDK packages use as their
// diagnostic sink.
//
// Every SDK component takes a *slog.Logger through a WithLogger option and
// falls back to slog.Default(). New builds a configured logger and
// SetAsDefault wires it process-wide once at startup, so host applications
// control where SDK diagnostics go and tests can substitute a capturing
// handler.
//
// Attribute constructors in attr.go keep the key names of recurring SDK
// fields (error, message channel, machine state) consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("checkout"),
//	)
//	logger.SetAsDefault(log)
package logger
