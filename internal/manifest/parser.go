package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/netbeansifier/netbeansify/internal/branding"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// ErrInvalid is returned by Load when the manifest fails schema validation.
var ErrInvalid = errors.New("invalid template manifest")

// Load reads and validates the manifest at the root of a template directory.
// A template without a manifest yields (nil, nil).
func Load(fsys afero.Fs, templateRoot string) (*TemplateManifest, error) {
	manifestPath := filepath.Join(templateRoot, branding.ManifestFile())
	data, err := afero.ReadFile(fsys, manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading file %s: %w", manifestPath, err)
	}
	return Parse(data, manifestPath)
}

// Parse validates and decodes manifest bytes. path is used in error messages.
func Parse(data []byte, path string) (*TemplateManifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("%w %s: %s", ErrInvalid, path, strings.Join(msgs, "; "))
	}

	var m TemplateManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// Excludes reports whether rel, a slash-separated path relative to the
// template root, matches one of the manifest's exclude globs. A nil
// manifest excludes nothing.
func (m *TemplateManifest) Excludes(rel string) bool {
	if m == nil {
		return false
	}
	rel = path.Clean(filepath.ToSlash(rel))
	for _, pattern := range m.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// CheckCompatibility fails when toolVersion does not satisfy the manifest's
// requires constraint. Development builds ("dev") are never rejected.
func CheckCompatibility(m *TemplateManifest, toolVersion string) error {
	if m == nil || m.Requires == "" || toolVersion == "" || toolVersion == "dev" {
		return nil
	}

	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("template %s: parsing requires %q: %w", m.Name, m.Requires, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(toolVersion, "v"))
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", toolVersion, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("template %s requires %s %s, running %s", m.Name, branding.CLIName(), m.Requires, toolVersion)
	}
	return nil
}
