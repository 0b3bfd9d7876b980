package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	// ErrNoSource is returned when no usable source directory was given.
	ErrNoSource = errors.New("source path not provided")
	// ErrNoOutput is returned when neither --out nor --zip was given.
	ErrNoOutput = errors.New("destination path not provided")
)

// Layer is one configuration source. Entries present in a layer override
// the same entries of every earlier layer, even when the value is empty.
type Layer struct {
	Name       string
	Values     map[string]string
	Settings   map[Setting]string
	Flags      map[Flag]bool
	Positional string
}

func newLayer(name string) Layer {
	return Layer{
		Name:     name,
		Values:   make(map[string]string),
		Settings: make(map[Setting]string),
		Flags:    make(map[Flag]bool),
	}
}

func (l Layer) set(opt option, value string) {
	if opt.setting != "" {
		l.Settings[opt.setting] = value
		return
	}
	l.Values[opt.key] = value
}

// Defaults returns the built-in default layer.
func Defaults() Layer {
	layer := newLayer("defaults")
	layer.Values[KeyJavacSource] = DefaultJavaVersion
	layer.Values[KeyJavacTarget] = DefaultJavaVersion
	return layer
}

// ValuesLayer wraps plain substitution values, such as template manifest
// defaults, as a layer.
func ValuesLayer(name string, values map[string]string) Layer {
	layer := newLayer(name)
	maps.Copy(layer.Values, values)
	return layer
}

// Merge folds layers left to right into a new layer. Inputs are not modified.
func Merge(layers ...Layer) Layer {
	merged := newLayer("merged")
	for _, l := range layers {
		maps.Copy(merged.Values, l.Values)
		maps.Copy(merged.Settings, l.Settings)
		for f, on := range l.Flags {
			if on {
				merged.Flags[f] = true
			}
		}
		if l.Positional != "" {
			merged.Positional = l.Positional
		}
	}
	return merged
}

// Record is the fully resolved configuration for one run. It is a value
// type; accessors hand out copies so callers cannot mutate shared state.
type Record struct {
	SourcePath   string
	OutputPath   string
	TemplatePath string
	PreCommand   string
	PostCommand  string

	values map[string]string
	flags  map[Flag]bool
}

// Values returns a copy of the substitution values.
func (r Record) Values() map[string]string {
	return maps.Clone(r.values)
}

// Value returns a single substitution value, or "" if unset.
func (r Record) Value(key string) string {
	return r.values[key]
}

// Has reports whether a flag is enabled.
func (r Record) Has(f Flag) bool {
	return r.flags[f]
}

// ProjectName returns the resolved project name.
func (r Record) ProjectName() string {
	return r.values[KeyProjectName]
}

// WithOutputPath returns a copy of r with a different output path.
func (r Record) WithOutputPath(path string) Record {
	r.OutputPath = path
	return r
}

// Resolve merges layers and applies derived defaults. The project name
// defaults to the source directory's base name and the main class defaults
// to the project name. The source directory must exist, and an output path
// is required unless the zip flag is set.
func Resolve(fsys afero.Fs, layers ...Layer) (Record, error) {
	m := Merge(layers...)

	source := m.Settings[SettingSourcePath]
	if source == "" {
		source = m.Positional
	}
	if source == "" {
		return Record{}, ErrNoSource
	}
	info, err := fsys.Stat(source)
	if err != nil || !info.IsDir() {
		return Record{}, fmt.Errorf("%w: %s is not a directory", ErrNoSource, source)
	}

	out := m.Settings[SettingOut]
	if out == "" && !m.Flags[FlagZip] {
		return Record{}, ErrNoOutput
	}

	values := maps.Clone(m.Values)
	if values[KeyProjectName] == "" {
		abs, err := filepath.Abs(source)
		if err != nil {
			return Record{}, fmt.Errorf("resolving source path %s: %w", source, err)
		}
		values[KeyProjectName] = filepath.Base(abs)
	}
	if values[KeyMainClass] == "" {
		values[KeyMainClass] = values[KeyProjectName]
	}

	return Record{
		SourcePath:   source,
		OutputPath:   out,
		TemplatePath: m.Settings[SettingTemplate],
		PreCommand:   m.Settings[SettingPreCommand],
		PostCommand:  m.Settings[SettingPostCommand],
		values:       values,
		flags:        maps.Clone(m.Flags),
	}, nil
}
