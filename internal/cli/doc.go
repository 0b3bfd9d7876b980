// Package cli defines the Cobra command tree for the netbeansify CLI. The
// root command generates a project; config and version are the only
// subcommands. Commands assemble configuration layers and delegate the work
// to internal/generate.
package cli
