// Package logging provides structured logging using Go's standard library log/slog.
// It builds JSON or text handlers from a plain level/format configuration and is
// used by the loader package when wiring configuration modules into Fx.
package logging
