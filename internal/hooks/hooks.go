package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Runner executes a shell command in a working directory.
type Runner interface {
	// Run executes command with dir as the working directory and returns an
	// error if it cannot be started or exits with a non-zero status.
	Run(ctx context.Context, dir, command string) error
}

// Shell runs commands through the platform shell: sh -c on Unix, cmd /C on
// Windows. Chained commands such as "a && b" work as the shell defines them.
type Shell struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (s *Shell) Run(ctx context.Context, dir, command string) error {
	name, args := shellCommand(command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("command %q exited with status %d", command, exitErr.ExitCode())
		}
		return fmt.Errorf("running command %q: %w", command, err)
	}
	return nil
}

func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
