// Package common provides shared interfaces used throughout the contribart application.
//
// This package contains the application-wide contracts that standardize
// interactions between packages. Keeping them here avoids import cycles
// between the packages that produce log output and the logger package
// that implements it.
//
// # Core Components
//
// - Logger: Interface defining standardized logging methods used throughout the application
//
// # Logger Interface
//
// The Logger interface separates internal logging from user-facing
// messages. Internal methods (Info, Warning, Error) feed the structured
// log sink; user-facing methods (InfoToUser, WarningToUser, Success,
// StatusMessage) always reach the terminal.
//
// # Usage
//
// The Logger interface is typically injected into components that need logging capabilities:
//
//	type Painter struct {
//	    logger common.Logger
//	    // other fields
//	}
//
//	func NewPainter(logger common.Logger) *Painter {
//	    return &Painter{logger: logger}
//	}
//
// # Design Principles
//
// - Minimal Dependencies: the common package depends on no other internal package
// - Interface-Based Design: favors interfaces over concrete implementations
// - Separation of Concerns: clearly separates user-facing and internal output
package common
