// Package config builds the configuration record for a generation run.
//
// Configuration comes from ordered layers: built-in defaults, user settings
// stored at ~/.netbeansify/config.yaml (plus NETBEANSIFY_* environment
// variables), template manifest defaults, the netbeansifierfile in the working
// directory, and finally the command line. Resolve merges them (later layers
// win) into one immutable Record.
package config
