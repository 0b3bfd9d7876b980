package scaffold

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"unicode/utf8"

	"github.com/spf13/afero"
)

//go:embed all:template
var templateFS embed.FS

//go:embed netbeanz.png
var logo []byte

// defaultTemplateRoot is the directory inside templateFS holding the
// built-in NetBeans Ant project skeleton.
const defaultTemplateRoot = "template"

// tokenPattern matches placeholder tokens such as #[project_name]#.
var tokenPattern = regexp.MustCompile(`#\[(\w+)\]#`)

// DefaultTemplate returns the built-in template as a read-only filesystem
// and the root directory to copy from.
func DefaultTemplate() (afero.Fs, string) {
	return afero.FromIOFS{FS: templateFS}, defaultTemplateRoot
}

// Logo returns the logo image written into generated projects.
func Logo() []byte {
	return logo
}

// Substitute replaces every #[identifier]# token in text with its value.
// Identifiers missing from values become the empty string. Replacement
// text is not scanned again.
func Substitute(text string, values map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		return values[token[2:len(token)-2]]
	})
}

// Materialize rewrites every text file under outputRoot in place, replacing
// placeholder tokens with values. Files that are not valid UTF-8 are treated
// as binary: they are left untouched and returned in skipped. File names and
// directory structure never change. The first I/O error aborts the walk.
func Materialize(fsys afero.Fs, outputRoot string, values map[string]string, out io.Writer) (skipped []string, err error) {
	if out == nil {
		out = io.Discard
	}

	err = afero.Walk(fsys, outputRoot, func(path string, info fs.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		fmt.Fprintf(out, "Generating %s\n", path)
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if !utf8.Valid(data) {
			fmt.Fprintf(out, "File %s is a binary, skipping.\n", path)
			skipped = append(skipped, path)
			return nil
		}

		rendered := Substitute(string(data), values)
		if err := afero.WriteFile(fsys, path, []byte(rendered), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return skipped, fmt.Errorf("generating templates in %s: %w", outputRoot, err)
	}
	return skipped, nil
}
