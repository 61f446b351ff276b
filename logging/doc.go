// Package logging provides the minimal logging interface the synthesis engine
// depends on, plus adapters.
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping log/slog
//   - NoOpLogger, the engine default
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LevelDebug, "text", os.Stderr)
//	engine := synth.New(synth.WithLogger(logger))
package logging
