package azcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Cmd describes one external CLI invocation.
type Cmd struct {
	Path string
	Args []string
	Env  map[string]string // additional env vars
	Dir  string            // working directory
}

// Runner executes external commands. The interface seam lets tests substitute
// canned output for az/azd.
type Runner interface {
	// Output runs the command and returns its stdout.
	Output(ctx context.Context, c Cmd) ([]byte, error)
	// Run runs the command, wiring stdout/stderr to the process streams.
	Run(ctx context.Context, c Cmd) error
}

// ExecRunner is the real Runner backed by os/exec.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, c Cmd) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	applyEnvDir(cmd, c)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, wrapRunError(c, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func (ExecRunner) Run(ctx context.Context, c Cmd) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	applyEnvDir(cmd, c)
	cmd.Stdout = os.Stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return wrapRunError(c, err, stderr.String())
	}
	return nil
}

func applyEnvDir(cmd *exec.Cmd, c Cmd) {
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	// inherit environment
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
}

func wrapRunError(c Cmd, err error, stderr string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return ErrCLIMissing(c.Path)
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ErrCommandFailed(c.Path, c.Args, ee.ExitCode(), stderrTail(stderr))
	}
	return fmt.Errorf("%s: %w", c.Path, err)
}

// stderrTail keeps error messages short: the last non-empty line usually
// carries the actionable part of az/azd failures.
func stderrTail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
