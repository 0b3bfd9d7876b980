package manifest

// TemplateManifest describes a template directory. It lives at the template
// root and is never copied into generated projects.
type TemplateManifest struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Author      string            `yaml:"author,omitempty" json:"author,omitempty"`
	Version     string            `yaml:"version,omitempty" json:"version,omitempty"`
	Requires    string            `yaml:"requires,omitempty" json:"requires,omitempty"` // semver constraint on the tool version
	Defaults    map[string]string `yaml:"defaults,omitempty" json:"defaults,omitempty"` // substitution key → value
	Exclude     []string          `yaml:"exclude,omitempty" json:"exclude,omitempty"`   // doublestar globs relative to the template root
}
