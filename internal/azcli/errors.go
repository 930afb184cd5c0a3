package azcli

import (
	"fmt"
	"strings"
)

// cliMissingError signals that the az/azd binary is not on PATH.
type cliMissingError struct{ name string }

func (e cliMissingError) Error() string {
	return fmt.Sprintf("%s CLI not found on PATH", e.name)
}

// ErrCLIMissing constructs a cliMissingError.
func ErrCLIMissing(name string) error { return cliMissingError{name: name} }

// IsCLIMissing reports whether err indicates a missing CLI binary.
func IsCLIMissing(err error) bool {
	_, ok := err.(cliMissingError)
	return ok
}

// commandError carries the exit code and stderr tail of a failed invocation.
type commandError struct {
	name   string
	args   []string
	code   int
	stderr string
}

func (e commandError) Error() string {
	msg := fmt.Sprintf("%s %s: exit %d", e.name, strings.Join(e.args, " "), e.code)
	if e.stderr != "" {
		msg += ": " + e.stderr
	}
	return msg
}

// ErrCommandFailed constructs a commandError.
func ErrCommandFailed(name string, args []string, code int, stderr string) error {
	return commandError{name: name, args: args, code: code, stderr: stderr}
}

// IsCommandFailed reports whether err is a non-zero exit from an external CLI.
func IsCommandFailed(err error) bool {
	_, ok := err.(commandError)
	return ok
}
