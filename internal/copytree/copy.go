package copytree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/netbeansifier/netbeansify/internal/branding"
	"github.com/netbeansifier/netbeansify/internal/manifest"
	"github.com/spf13/afero"
)

// templateExcludedNames are never copied out of a template.
var templateExcludedNames = map[string]bool{
	".git":      true,
	".DS_Store": true,
}

// isReserved reports whether name is one of the generator's own control
// files, which are never copied out of a source tree.
func isReserved(name string) bool {
	return name == branding.IgnoreFile() || name == branding.CommandFile()
}

// CopySourceTree mirrors sourceRoot into destRoot. Ignore files found along
// the way exclude matching entries in their directory and below; the ignore
// file and the command file themselves are never copied. A directory whose
// absolute path equals outputRoot is skipped so a destination nested in the
// source is not copied into itself. Any filesystem error aborts the copy.
func CopySourceTree(fsys afero.Fs, sourceRoot, destRoot, outputRoot string) error {
	absOut, err := filepath.Abs(outputRoot)
	if err != nil {
		return fmt.Errorf("resolving output root %s: %w", outputRoot, err)
	}
	return copyDir(fsys, sourceRoot, destRoot, absOut, nil)
}

func copyDir(fsys afero.Fs, src, dst, outputRoot string, active scopes) error {
	ignorePath := filepath.Join(src, branding.IgnoreFile())
	if _, err := fsys.Stat(ignorePath); err == nil {
		s, err := loadScope(fsys, src, ignorePath)
		if err != nil {
			return err
		}
		active = active.with(s)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", ignorePath, err)
	}

	if err := fsys.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	entries, err := readDir(fsys, src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		srcPath := filepath.Join(src, name)
		dstPath := filepath.Join(dst, name)

		if isReserved(name) || active.matches(srcPath, entry.IsDir()) {
			continue
		}

		switch {
		case entry.Mode().IsRegular():
			if err := copyFile(fsys, srcPath, fsys, dstPath, entry.Mode()); err != nil {
				return err
			}
		case entry.IsDir():
			abs, err := filepath.Abs(srcPath)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", srcPath, err)
			}
			if abs == outputRoot {
				continue
			}
			if err := copyDir(fsys, srcPath, dstPath, outputRoot, active); err != nil {
				return err
			}
		}
	}

	return nil
}

// CopyTemplate copies a template tree into destRoot. src and dst may be
// different filesystems (for example the embedded default template). The
// manifest file at the template root, .git and .DS_Store entries, and paths
// matching the manifest's exclude globs are left out.
func CopyTemplate(src afero.Fs, templateRoot string, dst afero.Fs, destRoot string, m *manifest.TemplateManifest) error {
	return copyTemplateDir(src, templateRoot, "", dst, destRoot, m)
}

func copyTemplateDir(src afero.Fs, root, rel string, dst afero.Fs, destRoot string, m *manifest.TemplateManifest) error {
	dstDir := filepath.Join(destRoot, rel)
	if err := dst.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dstDir, err)
	}

	entries, err := readDir(src, filepath.Join(root, rel))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		entryRel := filepath.Join(rel, name)

		if templateExcludedNames[name] || m.Excludes(entryRel) {
			continue
		}
		if rel == "" && name == branding.ManifestFile() {
			continue
		}

		switch {
		case entry.Mode().IsRegular():
			if err := copyFile(src, filepath.Join(root, entryRel), dst, filepath.Join(destRoot, entryRel), entry.Mode()); err != nil {
				return err
			}
		case entry.IsDir():
			if err := copyTemplateDir(src, root, entryRel, dst, destRoot, m); err != nil {
				return err
			}
		}
	}

	return nil
}

// readDir lists a directory. Symlinks are resolved to what they point at;
// a dangling link is an error.
func readDir(fsys afero.Fs, dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	for i, entry := range entries {
		if entry.Mode()&os.ModeSymlink == 0 {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		target, err := fsys.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", path, err)
		}
		entries[i] = namedInfo{FileInfo: target, name: entry.Name()}
	}
	return entries, nil
}

// namedInfo keeps a symlink's own name on its target's FileInfo.
type namedInfo struct {
	os.FileInfo
	name string
}

func (n namedInfo) Name() string { return n.name }

// copyFile copies a single file's bytes, overwriting dst. The copy is
// always owner-writable so later template rendering can rewrite it.
func copyFile(srcFs afero.Fs, src string, dstFs afero.Fs, dst string, mode os.FileMode) error {
	in, err := srcFs.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := dstFs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm()|0200)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
