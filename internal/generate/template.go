package generate

import (
	"fmt"

	"github.com/netbeansifier/netbeansify/internal/manifest"
	"github.com/netbeansifier/netbeansify/internal/scaffold"
	"github.com/spf13/afero"
)

// Template is a template tree ready to be copied.
type Template struct {
	Fs       afero.Fs
	Root     string
	Manifest *manifest.TemplateManifest
}

// Defaults returns the template manifest's default substitution values, or
// nil when the template has no manifest.
func (t *Template) Defaults() map[string]string {
	if t.Manifest == nil {
		return nil
	}
	return t.Manifest.Defaults
}

// LoadTemplate opens the template directory at path on fsys, or the built-in
// template when path is empty. A manifest at the template root is validated
// and checked against toolVersion.
func LoadTemplate(fsys afero.Fs, path, toolVersion string) (*Template, error) {
	if path == "" {
		src, root := scaffold.DefaultTemplate()
		return &Template{Fs: src, Root: root}, nil
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening template %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template %s is not a directory", path)
	}

	m, err := manifest.Load(fsys, path)
	if err != nil {
		return nil, err
	}
	if err := manifest.CheckCompatibility(m, toolVersion); err != nil {
		return nil, err
	}
	return &Template{Fs: fsys, Root: path, Manifest: m}, nil
}
