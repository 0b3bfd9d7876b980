//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/netbeansifier/netbeansify/internal/config"
	"github.com/netbeansifier/netbeansify/internal/generate"
	"github.com/netbeansifier/netbeansify/internal/hooks"
	"github.com/spf13/afero"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // NETBEANSIFY_HOME, holds config.yaml
	WorkDir   string // process working directory, receives zip files
	SourceDir string // a mock Java project
}

// setupTestEnv creates isolated temp directories, points NETBEANSIFY_HOME at
// one of them and changes into the work directory for the test's duration.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.SourceDir = filepath.Join(env.WorkDir, "Demo")

	t.Setenv("NETBEANSIFY_HOME", env.HomeDir)
	t.Chdir(env.WorkDir)

	setupSourceTree(t, env.SourceDir)
	return env
}

// setupSourceTree writes a small Java project with layered ignore files.
func setupSourceTree(t *testing.T, root string) {
	t.Helper()

	writeFile(t, filepath.Join(root, "com", "demo", "App.java"), "package com.demo;\n\npublic class App {}\n")
	writeFile(t, filepath.Join(root, "com", "demo", "App.class"), "\xca\xfe\xba\xbe")
	writeFile(t, filepath.Join(root, "com", "demo", "notes.txt"), "keep me\n")
	writeFile(t, filepath.Join(root, "build", "out.jar"), "jar")
	writeFile(t, filepath.Join(root, "docs", "draft.md"), "draft\n")
	writeFile(t, filepath.Join(root, "docs", "final.md"), "final\n")

	writeFile(t, filepath.Join(root, ".nbignore"), "*.class\nbuild/\n")
	writeFile(t, filepath.Join(root, "docs", ".nbignore"), "draft.md\n")
}

// run resolves args the same way the command line does, minus user settings,
// and generates with a real shell for hooks.
func run(t *testing.T, args ...string) (*generate.Result, string, error) {
	t.Helper()

	layer, err := config.ParseArgs("command line", args)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	fsys := afero.NewOsFs()
	rec, err := config.Resolve(fsys, config.Defaults(), layer)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	var out bytes.Buffer
	deps := generate.Deps{
		Fs:    fsys,
		Hooks: &hooks.Shell{Stdout: &out, Stderr: &out},
		Out:   &out,
	}
	res, err := generate.Run(context.Background(), deps, rec)
	return res, out.String(), err
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
