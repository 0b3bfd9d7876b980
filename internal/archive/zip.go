package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Zip writes a zip archive of the directory root to dest. Every entry is
// stored under base(root)/ so the archive extracts to a single directory.
// Directories get their own entries, including empty ones. If dest lies
// inside root it is left out of the archive.
func Zip(fsys afero.Fs, root, dest string) error {
	root = filepath.Clean(root)
	parent := filepath.Dir(root)

	f, err := fsys.Create(dest)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", dest, err)
	}

	zw := zip.NewWriter(f)
	walkErr := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if filepath.Clean(path) == filepath.Clean(dest) {
			return nil
		}
		rel, err := filepath.Rel(parent, path)
		if err != nil {
			return err
		}
		return addEntry(fsys, zw, path, filepath.ToSlash(rel), info)
	})

	closeErr := zw.Close()
	if err := f.Close(); err != nil && closeErr == nil {
		closeErr = err
	}
	if walkErr != nil {
		return fmt.Errorf("archiving %s: %w", root, walkErr)
	}
	if closeErr != nil {
		return fmt.Errorf("writing archive %s: %w", dest, closeErr)
	}
	return nil
}

func addEntry(fsys afero.Fs, zw *zip.Writer, path, name string, info fs.FileInfo) error {
	switch {
	case info.IsDir():
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = name + "/"
		_, err = zw.CreateHeader(header)
		return err
	case info.Mode().IsRegular():
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = name
		header.Method = zip.Deflate
		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		in, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(w, in)
		return err
	default:
		return nil
	}
}
