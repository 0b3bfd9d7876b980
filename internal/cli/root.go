package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/netbeansifier/netbeansify/internal/branding"
	"github.com/netbeansifier/netbeansify/internal/config"
	"github.com/netbeansifier/netbeansify/internal/generate"
	"github.com/netbeansifier/netbeansify/internal/hooks"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [source]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` turns a directory of Java sources into a NetBeans project.

The template is copied into the output directory, #[key]# tokens in its text
files are replaced, and the source tree is copied into src/. Files matching
patterns in ` + branding.IgnoreFile() + ` files are skipped. Options may also be listed,
one per line, in a ` + branding.CommandFile() + ` in the current directory; the
command line takes precedence over it.

A source directory named like a subcommand (config, version) must be given
as ./config or with --sourcepath.

Note: --precommand and --postcommand run arbitrary shell commands, so never
run with an untrusted ` + branding.CommandFile() + `.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	config.BindFlags(rootCmd.Flags())
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are reported on stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	fsys := afero.NewOsFs()
	config.Load()

	rec, tmpl, err := resolveRecord(fsys, branding.CommandFile(), cmd.Flags(), args)
	if errors.Is(err, pflag.ErrHelp) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if quiet {
		out = io.Discard
	}
	deps := generate.Deps{
		Fs:       fsys,
		Hooks:    &hooks.Shell{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		Out:      out,
		Warn:     cmd.ErrOrStderr(),
		Version:  buildVersion,
		Template: tmpl,
	}
	_, err = generate.Run(cmd.Context(), deps, rec)
	return err
}

// resolveRecord layers built-in defaults, user settings, template manifest
// defaults, the command file and the command line, in that order of
// increasing precedence, and returns the record with the template it names.
// config.Load must have been called.
func resolveRecord(fsys afero.Fs, commandFile string, flags *pflag.FlagSet, args []string) (config.Record, *generate.Template, error) {
	fileLayer, err := config.CommandFileLayer(fsys, commandFile)
	if err != nil {
		return config.Record{}, nil, err
	}

	layers := []config.Layer{
		config.Defaults(),
		config.UserLayer(),
		fileLayer,
		config.LayerFromFlags("command line", flags, args),
	}

	// The template may be chosen in any layer, and its defaults sit just
	// above user settings.
	templatePath := config.Merge(layers...).Settings[config.SettingTemplate]
	tmpl, err := generate.LoadTemplate(fsys, templatePath, buildVersion)
	if err != nil {
		return config.Record{}, nil, err
	}
	layers = slices.Insert(layers, 2, config.ValuesLayer("template defaults", tmpl.Defaults()))

	rec, err := config.Resolve(fsys, layers...)
	if err != nil {
		return config.Record{}, nil, err
	}
	return rec, tmpl, nil
}
