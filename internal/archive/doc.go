// Package archive packs a generated project directory into a zip file.
package archive
