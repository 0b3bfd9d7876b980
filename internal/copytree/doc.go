// Package copytree copies directory trees into a generated project.
//
// Source trees are copied selectively. A .nbignore file excludes matching
// entries in its directory and below, and the generator's own control files
// are never copied. When the output directory is nested inside the source it
// is skipped. Template trees are copied whole, minus the template manifest
// and its exclude globs.
package copytree
