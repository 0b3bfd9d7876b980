package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/netbeansifier/netbeansify/internal/archive"
	"github.com/netbeansifier/netbeansify/internal/branding"
	"github.com/netbeansifier/netbeansify/internal/config"
	"github.com/netbeansifier/netbeansify/internal/copytree"
	"github.com/netbeansifier/netbeansify/internal/hooks"
	"github.com/netbeansifier/netbeansify/internal/scaffold"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// sourceDir is the directory inside the output root that receives the
// user's source tree.
const sourceDir = "src"

// Deps are the collaborators of a generation run.
type Deps struct {
	// Fs is used for every file operation. Defaults to the OS filesystem.
	Fs afero.Fs
	// Hooks runs the pre and post commands. Defaults to hooks.Shell.
	Hooks hooks.Runner
	// Out receives progress messages. Defaults to io.Discard.
	Out io.Writer
	// Warn receives non-fatal warnings. Defaults to Out.
	Warn io.Writer
	// WorkDir is where zip archives are written. Defaults to the process
	// working directory.
	WorkDir string
	// Version is the running tool version, checked against template manifests.
	Version string
	// Template is an already loaded template. When nil, the template named
	// by the record is loaded.
	Template *Template
}

// Result describes a finished generation.
type Result struct {
	// OutputRoot is the absolute generated project directory. It no longer
	// exists when the project was generated only into a zip archive.
	OutputRoot string
	// Skipped lists template files left unrendered because they are binary.
	Skipped []string
	// Archive is the path of the zip archive, if one was made.
	Archive string
}

// Run generates a project for rec. With the zip flag and no output path the
// project is generated in a temporary directory named after the project and
// only the archive is kept. Any failure aborts the run; partial output is
// left in place.
func Run(ctx context.Context, deps Deps, rec config.Record) (*Result, error) {
	deps = deps.withDefaults()

	if rec.OutputPath != "" {
		res, err := generate(ctx, deps, rec)
		if err != nil {
			return nil, err
		}
		if rec.Has(config.FlagZip) {
			if res.Archive, err = makeArchive(deps, res.OutputRoot, rec.ProjectName()); err != nil {
				return nil, err
			}
		}
		fmt.Fprintln(deps.Out, "Done.")
		return res, nil
	}

	if !rec.Has(config.FlagZip) {
		return nil, config.ErrNoOutput
	}

	tmp, err := afero.TempDir(deps.Fs, "", branding.CLIName()+"-")
	if err != nil {
		return nil, fmt.Errorf("creating temporary directory: %w", err)
	}
	defer deps.Fs.RemoveAll(tmp)

	res, err := generate(ctx, deps, rec.WithOutputPath(filepath.Join(tmp, rec.ProjectName())))
	if err != nil {
		return nil, err
	}
	if res.Archive, err = makeArchive(deps, res.OutputRoot, rec.ProjectName()); err != nil {
		return nil, err
	}
	fmt.Fprintln(deps.Out, "Done.")
	return res, nil
}

func (d Deps) withDefaults() Deps {
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}
	if d.Out == nil {
		d.Out = io.Discard
	}
	if d.Warn == nil {
		d.Warn = d.Out
	}
	if d.Hooks == nil {
		d.Hooks = &hooks.Shell{Stdout: d.Out, Stderr: d.Warn}
	}
	return d
}

func generate(ctx context.Context, deps Deps, rec config.Record) (*Result, error) {
	out := deps.Out
	fmt.Fprintln(out, "Netbeansify started.")

	source, err := filepath.Abs(rec.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("resolving source path %s: %w", rec.SourcePath, err)
	}
	outputRoot, err := filepath.Abs(rec.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("resolving output path %s: %w", rec.OutputPath, err)
	}

	if rec.PreCommand != "" {
		fmt.Fprint(out, "Running pre-command; output:\n\n")
		if err := deps.Hooks.Run(ctx, source, rec.PreCommand); err != nil {
			return nil, fmt.Errorf("pre-command failed: %w", err)
		}
		fmt.Fprint(out, "\nPre-command exited with success.\n")
	}

	tmpl := deps.Template
	if tmpl == nil {
		if tmpl, err = LoadTemplate(deps.Fs, rec.TemplatePath, deps.Version); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(out, "Copying template files...")
	if err := copytree.CopyTemplate(tmpl.Fs, tmpl.Root, deps.Fs, outputRoot, tmpl.Manifest); err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "Starting template file generation...")
	skipped, err := scaffold.Materialize(deps.Fs, outputRoot, rec.Values(), out)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		printer := message.NewPrinter(language.English)
		printer.Fprintf(out, "%d binary template files left unchanged.\n", len(skipped))
	}

	fmt.Fprintln(out, "Template files generated. Copying source files...")
	if err := copytree.CopySourceTree(deps.Fs, source, filepath.Join(outputRoot, sourceDir), outputRoot); err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "Source files copied successfully.")

	if !rec.Has(config.FlagNoLogo) {
		fmt.Fprintln(out, "Copying logo...")
		logoPath := filepath.Join(outputRoot, branding.LogoFile())
		if err := afero.WriteFile(deps.Fs, logoPath, scaffold.Logo(), 0644); err != nil {
			fmt.Fprintf(deps.Warn, "Warning: could not write logo %s: %v\n", logoPath, err)
		}
	}

	if rec.PostCommand != "" {
		fmt.Fprint(out, "Running post-command; output:\n\n")
		if err := deps.Hooks.Run(ctx, outputRoot, rec.PostCommand); err != nil {
			return nil, fmt.Errorf("post-command failed: %w", err)
		}
		fmt.Fprint(out, "\nPost-command exited with success.\n")
	}

	return &Result{OutputRoot: outputRoot, Skipped: skipped}, nil
}

func makeArchive(deps Deps, outputRoot, projectName string) (string, error) {
	fmt.Fprintln(deps.Out, "Files generated successfully. Making zip file...")

	dir := deps.WorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}

	dest := filepath.Join(dir, projectName+".zip")
	if err := archive.Zip(deps.Fs, outputRoot, dest); err != nil {
		return "", err
	}
	return dest, nil
}
