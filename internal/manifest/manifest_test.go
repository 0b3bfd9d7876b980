package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(testPath(name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return data
}

func TestValidate_ValidManifests(t *testing.T) {
	for _, file := range []string{"valid-full.yaml", "valid-minimal.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := Validate(readTestdata(t, file))
			if err != nil {
				t.Fatalf("Validate(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidate_InvalidManifests(t *testing.T) {
	tests := []struct {
		file string
		desc string
	}{
		{"invalid-missing-name.yaml", "missing required name field"},
		{"invalid-bad-default-key.yaml", "default key is not a token identifier"},
		{"invalid-unknown-field.yaml", "unknown top-level field"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := Validate(readTestdata(t, tt.file))
			if err != nil {
				t.Fatalf("Validate(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	if _, err := Validate(readTestdata(t, "invalid-yaml.yaml")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/tmpl/template.yaml", readTestdata(t, "valid-full.yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(fsys, "/tmpl")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Name != "netbeans-ant" {
		t.Errorf("Name = %q, want %q", m.Name, "netbeans-ant")
	}
	if m.Defaults["javac_source"] != "17" {
		t.Errorf("numeric default should decode as string, got %q", m.Defaults["javac_source"])
	}
	if m.Defaults["author"] != "Course Staff" {
		t.Errorf("author default = %q, want %q", m.Defaults["author"], "Course Staff")
	}
}

func TestLoadMissingManifest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/tmpl", 0755); err != nil {
		t.Fatal(err)
	}
	m, err := Load(fsys, "/tmpl")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil manifest, got %+v", m)
	}
}

func TestLoadInvalidManifest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/tmpl/template.yaml", readTestdata(t, "invalid-missing-name.yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(fsys, "/tmpl")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load() error = %v, want ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "template.yaml") {
		t.Errorf("error should name the manifest file, got: %v", err)
	}
}

func TestExcludes(t *testing.T) {
	m := &TemplateManifest{Exclude: []string{"**/*.orig", "docs/**", "README.md"}}

	tests := []struct {
		rel  string
		want bool
	}{
		{"build.xml.orig", true},
		{"nbproject/project.xml.orig", true},
		{"docs/guide.md", true},
		{"README.md", true},
		{"nbproject/README.md", false},
		{"build.xml", false},
	}

	for _, tt := range tests {
		if got := m.Excludes(tt.rel); got != tt.want {
			t.Errorf("Excludes(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}

	var none *TemplateManifest
	if none.Excludes("anything") {
		t.Error("nil manifest should exclude nothing")
	}
}

func TestCheckCompatibility(t *testing.T) {
	m := &TemplateManifest{Name: "ant", Requires: ">= 1.2.0, < 2.0.0"}

	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.2.0", false},
		{"v1.5.3", false},
		{"1.1.9", true},
		{"2.0.0", true},
		{"dev", false},
		{"", false},
		{"not-a-version", true},
	}

	for _, tt := range tests {
		err := CheckCompatibility(m, tt.version)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckCompatibility(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
		}
	}

	if err := CheckCompatibility(nil, "0.0.1"); err != nil {
		t.Errorf("nil manifest should always be compatible, got %v", err)
	}
	if err := CheckCompatibility(&TemplateManifest{Name: "x", Requires: "not a constraint"}, "1.0.0"); err == nil {
		t.Error("expected error for malformed constraint")
	}
}
