// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// logging with a configurable level and either JSON or console output, plus
// helpers for carrying a request-scoped logger through a context.
package logger
