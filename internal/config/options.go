package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Flag is a boolean switch. Presence means enabled.
type Flag string

const (
	FlagZip    Flag = "zip"
	FlagNoLogo Flag = "nologo"
)

// Setting names an internal-only configuration entry. Settings live apart
// from substitution values and are never written into templates.
type Setting string

const (
	SettingOut         Setting = "out"
	SettingSourcePath  Setting = "sourcepath"
	SettingTemplate    Setting = "template"
	SettingPreCommand  Setting = "precommand"
	SettingPostCommand Setting = "postcommand"
)

// Substitution keys visible to templates.
const (
	KeyProjectName = "project_name"
	KeyMainClass   = "main_class"
	KeyJavacSource = "javac_source"
	KeyJavacTarget = "javac_target"
	KeyJVMArgs     = "jvm_args"
	KeyJavacArgs   = "javac_args"
)

// DefaultJavaVersion is the baseline source/target compatibility version.
const DefaultJavaVersion = "11"

// option maps a long command-line option to either a substitution key or
// an internal setting. Exactly one of key and setting is non-empty.
type option struct {
	name    string
	key     string
	setting Setting
	usage   string
}

var valueOptions = []option{
	{name: "out", setting: SettingOut, usage: "Output directory; optional if --zip is set"},
	{name: "sourcepath", setting: SettingSourcePath, usage: "Input directory (overrides the positional one)"},
	{name: "name", key: KeyProjectName, usage: "Project name (default: input directory name)"},
	{name: "mainclass", key: KeyMainClass, usage: "Main class, including the package (default: project name)"},
	{name: "sourcever", key: KeyJavacSource, usage: "Source compatibility Java version (default: " + DefaultJavaVersion + ")"},
	{name: "targetver", key: KeyJavacTarget, usage: "Target compatibility Java version (default: " + DefaultJavaVersion + ")"},
	{name: "jvmargs", key: KeyJVMArgs, usage: "Additional args passed to the JVM during execution"},
	{name: "javacargs", key: KeyJavacArgs, usage: "Additional args passed to javac during compilation"},
	{name: "precommand", setting: SettingPreCommand, usage: "Command run in the source directory before generating"},
	{name: "postcommand", setting: SettingPostCommand, usage: "Command run in the output directory after generating"},
	{name: "template", setting: SettingTemplate, usage: "Template directory (default: built-in NetBeans template)"},
}

var flagOptions = []struct {
	flag  Flag
	usage string
}{
	{FlagZip, "Create ProjectName.zip in the current directory; --out becomes optional"},
	{FlagNoLogo, "Do not include the logo in the output"},
}

// IsOption reports whether name is a known value option or flag.
func IsOption(name string) bool {
	if _, ok := lookupOption(name); ok {
		return true
	}
	for _, f := range flagOptions {
		if string(f.flag) == name {
			return true
		}
	}
	return false
}

func lookupOption(name string) (option, bool) {
	for _, opt := range valueOptions {
		if opt.name == name {
			return opt, true
		}
	}
	return option{}, false
}

// BindFlags registers every generator option on fs. The command line and
// the command file share these definitions so both accept the same grammar.
func BindFlags(fs *pflag.FlagSet) {
	for _, opt := range valueOptions {
		fs.String(opt.name, "", opt.usage)
	}
	for _, f := range flagOptions {
		fs.Bool(string(f.flag), false, f.usage)
	}
}

// LayerFromFlags builds a layer from the options explicitly set on fs.
// The last positional argument, if any, becomes the source path.
func LayerFromFlags(name string, fs *pflag.FlagSet, args []string) Layer {
	layer := newLayer(name)
	fs.Visit(func(f *pflag.Flag) {
		if opt, ok := lookupOption(f.Name); ok {
			layer.set(opt, f.Value.String())
			return
		}
		for _, fo := range flagOptions {
			if string(fo.flag) == f.Name && f.Value.String() == "true" {
				layer.Flags[fo.flag] = true
			}
		}
	})
	if len(args) > 0 {
		layer.Positional = args[len(args)-1]
	}
	return layer
}

// ParseArgs parses option tokens with the same grammar as the command line.
// Unknown options and options missing their value are reported as errors.
func ParseArgs(name string, tokens []string) (Layer, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs)
	if err := fs.Parse(tokens); err != nil {
		return Layer{}, fmt.Errorf("%s: %w", name, err)
	}
	return LayerFromFlags(name, fs, fs.Args()), nil
}
