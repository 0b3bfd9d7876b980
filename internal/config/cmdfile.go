package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// ReadCommandFile reads a command-list file and returns its option tokens.
// Blank lines and lines starting with # are skipped. A line starting with
// "--" is split at the first space into an option and its value; any other
// line is a single token. A missing file yields no tokens.
func ReadCommandFile(fsys afero.Fs, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening command file %s: %w", path, err)
	}
	defer f.Close()

	var tokens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "--") {
			if opt, value, found := strings.Cut(line, " "); found {
				tokens = append(tokens, opt, value)
				continue
			}
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading command file %s: %w", path, err)
	}
	return tokens, nil
}

// CommandFileLayer reads and parses a command-list file into a layer.
func CommandFileLayer(fsys afero.Fs, path string) (Layer, error) {
	tokens, err := ReadCommandFile(fsys, path)
	if err != nil {
		return Layer{}, err
	}
	return ParseArgs(path, tokens)
}
