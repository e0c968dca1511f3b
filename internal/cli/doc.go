// Package cli wires together the Cobra command tree for the trendwatch binary.
//
// It defines the root command and all subcommands (run, annotate, config,
// version), binds flags, reads configuration, builds the logger, invokes the
// monitor, and returns deterministic exit codes for schedulers.
package cli
