// Package generate runs a complete project generation: hooks, template
// copy, token substitution, source merge, logo and optional zip archive.
// It consumes a resolved config.Record and never parses arguments itself.
package generate
