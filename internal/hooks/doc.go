// Package hooks runs the user-supplied pre and post commands of a
// generation. Commands are opaque strings handed to the platform shell.
package hooks
