// Package logging provides structured logging configuration for schemagen.
//
// This package wraps log/slog to provide consistent logging across the CLI
// commands. It supports configurable log levels and output formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("schema loaded", "path", path)
//	logger.Error("generation failed", "error", err)
//
// # Output Formats
//
//   - Text: Human-readable format for development
//   - JSON: Structured format for log aggregation systems
//
// The generation core itself never logs; logging belongs to the CLI and
// file-loading collaborators. Components that require a logger but have
// logging disabled should use logging.Nop().
package logging
