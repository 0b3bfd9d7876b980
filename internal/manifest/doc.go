// Package manifest handles the optional template manifest (template.yaml)
// found at the root of a template directory. It parses the manifest, validates
// it against an embedded JSON Schema, checks the tool version constraint, and
// answers which template paths are excluded from copying.
package manifest
