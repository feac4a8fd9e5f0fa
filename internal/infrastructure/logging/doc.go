// Package logging provides structured logging for netinv on top of
// log/slog. Output is discarded by default because the terminal UI owns the
// screen; point it at stderr when debugging.
package logging
