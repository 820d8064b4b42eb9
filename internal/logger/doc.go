// Package logger provides logging functionality for the contribart application.
//
// The package distinguishes between two audiences. Internal messages
// (Info, Warning, Error) are structured events written through zerolog,
// persisted to a log file only when debug logging is enabled. User-facing
// messages (InfoToUser, WarningToUser, Success, StatusMessage) are plain
// terminal output with a small set of emoji prefixes, and are what the
// dry-run plan and apply progress are printed with.
//
// # Core Components
//
// - Logger: Interface defining the logging contract
// - DefaultLogger: zerolog-backed implementation with an optional file sink
//
// # Usage
//
//	log := logger.New(cfg.Debug, cfg.LogFile, cfg.Verbose)
//	defer log.Close()
//
//	log.Info("composed canvas with %d lit cells", cells)
//	log.StatusMessage("Pixels lit: %d", cells)
//	log.Success("Created %d commits", n)
//
// # Output Behavior
//
//   - Info: file sink only, dropped entirely unless debug is enabled
//   - Warning: file sink, plus stdout when verbose
//   - Error: file sink, always mirrored to stderr
//   - InfoToUser / WarningToUser / Success: always stdout, mirrored to the sink
//   - StatusMessage: stdout only, never logged
//
// # Thread Safety
//
// DefaultLogger serializes all writes with an internal mutex and is safe
// for concurrent use.
package logger
