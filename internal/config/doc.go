// Package config provides configuration handling for the contribart application.
//
// This package manages all configuration parameters for contribart,
// including parsing command-line flags, loading environment variables,
// and providing default values. Validation happens in Finalize, after
// all sources have been merged.
//
// # Core Components
//
// - Config: Main configuration type that holds all contribart settings
// - VersionInfo: Type for version, commit, and build date information
//
// # Configuration Sources
//
// Configuration values are loaded with the following precedence:
//
// 1. Command-line flags (highest priority)
// 2. Environment variables (a .env file in the working directory is honored)
// 3. Default values (lowest priority)
//
// # Environment Variables
//
// The following environment variables are supported:
//
//	CONTRIB_WORD       Word to render (default: NERDLIN)
//	CONTRIB_INTENSITY  Commits per lit cell (default: 6)
//	CONTRIB_NAME       Author name for commits (default: Nerdlin)
//	CONTRIB_FILE       Tracking file touched per commit (default: art/log.txt)
//	GIT_AUTHOR_EMAIL   Fallback author email when -email is omitted
//	REPO_PATH          Path to repository (default: current directory)
//	VERBOSE            Whether to show informational messages (default: true)
//	DEBUG              Enable debug logging (default: false)
//	LOG_FILE           Path to log file (default: ~/.local/share/contribart/logs/contribart-<hash>.log)
//
// # Command-line Flags
//
// The following command-line flags are supported:
//
//	-word         Word to render
//	-intensity    Commits per lit cell
//	-apply        Create commits instead of dry-run
//	-push         Push after committing
//	-name         Author name for commits
//	-email        Author email (required when applying)
//	-file         Tracking file touched per commit
//	-repo         Path to repository
//	-allow-empty  Pass --allow-empty to git commit
//	-quiet        Hide informational messages
//	-debug        Enable debug logging
//	-log-file     Path to log file
//	-version      Print version information and exit
//	-logo         Display ASCII logo and exit
//
// # Validation
//
// Finalize rejects a negative intensity and, when -apply is set,
// requires an author email from either -email or GIT_AUTHOR_EMAIL.
// Dry runs never require an email.
//
// # Thread Safety
//
// The Config type is not designed to be thread-safe. Configuration is
// loaded at startup and then used in a read-only fashion.
package config
