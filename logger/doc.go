// Package logger provides structured logging built on zerolog.
//
// Loggers are created from a Config (or environment variables) and carry
// contextual fields through With* methods:
//
//	log := logger.NewDefault("todo-client").WithComponent("pipeline")
//	log.Info("run finished", logger.DurationFields("login", elapsed))
//
// Nop() returns a discard-all logger for use as a library default.
package logger
