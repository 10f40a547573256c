// Package logger provides context-aware structured logging on top of zap.
// A global logger with an atomic level is ready at startup; a context can carry
// its own logger with extra key-value fields.
package logger
