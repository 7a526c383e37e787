// Package logging provides structured logging for fretsmart.
//
// This package wraps Go's log/slog to provide text or JSON formatted logs
// with persistent attributes. Diagnostics go to stderr (or a log file) so
// they never interleave with the rendered fretboard on stdout.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("", "WARN", logging.FormatText)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Debug("slot filled", "kind", "tuning", "line", 4)
//	logger.Warn("non-numeric value treated as 0", "value", "x")
//
// # Attributes
//
// Child loggers carry attributes into every entry they write:
//
//	resolverLogger := logger.WithComponent("resolve").With("source", "data.txt")
//	resolverLogger.Info("selection resolved")
//
// Output (JSON format):
//
//	{"time":"...","level":"INFO","msg":"selection resolved","component":"resolve","source":"data.txt"}
package logging
