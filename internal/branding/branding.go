// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed. Besides the CLI name and
// environment prefix it also carries the reserved file names the generator
// recognizes (ignore file, command file, template manifest, logo).
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	IgnoreFile   string `yaml:"ignore_file"`
	CommandFile  string `yaml:"command_file"`
	ManifestFile string `yaml:"manifest_file"`
	LogoFile     string `yaml:"logo_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "netbeansify",
			DisplayName:  "netbeansifier",
			Description:  "Package up Java sources into a basic NetBeans project",
			HomeDir:      ".netbeansify",
			EnvPrefix:    "NETBEANSIFY",
			GoModule:     "github.com/netbeansifier/netbeansify",
			IgnoreFile:   ".nbignore",
			CommandFile:  "netbeansifierfile",
			ManifestFile: "template.yaml",
			LogoFile:     "netbeanz.png",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "netbeansify").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".netbeansify").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NETBEANSIFY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// IgnoreFile returns the per-directory ignore file name (".nbignore").
func IgnoreFile() string { load(); return defaults.IgnoreFile }

// CommandFile returns the command-list file name ("netbeansifierfile").
func CommandFile() string { load(); return defaults.CommandFile }

// ManifestFile returns the template manifest file name ("template.yaml").
func ManifestFile() string { load(); return defaults.ManifestFile }

// LogoFile returns the file name the logo is written under.
func LogoFile() string { load(); return defaults.LogoFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "NETBEANSIFY_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
