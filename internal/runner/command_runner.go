package runner

import (
	"context"
	"io"
	"os/exec"
)

// CommandRunner is an interface for spawning external processes. It exists
// so tests can substitute a fake without executing binaries.
type CommandRunner interface {
	// LookPath finds the executable in PATH
	LookPath(file string) (string, error)
	// CommandContext creates a command that can be executed
	CommandContext(ctx context.Context, name string, args ...string) Command
}

// Command represents an executable command.
type Command interface {
	// SetStdin sets the stdin reader
	SetStdin(stdin io.Reader)
	// SetStdout sets the stdout writer
	SetStdout(stdout io.Writer)
	// SetStderr sets the stderr writer
	SetStderr(stderr io.Writer)
	// Start starts the command
	Start() error
	// Wait waits for the command to complete
	Wait() error
}

// realCommandRunner is the real implementation using os/exec.
type realCommandRunner struct{}

// NewCommandRunner creates a new real command runner.
func NewCommandRunner() CommandRunner {
	return &realCommandRunner{}
}

func (r *realCommandRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (r *realCommandRunner) CommandContext(ctx context.Context, name string, args ...string) Command {
	return &realCommand{cmd: exec.CommandContext(ctx, name, args...)}
}

// realCommand wraps exec.Cmd to implement the Command interface.
type realCommand struct {
	cmd *exec.Cmd
}

func (c *realCommand) SetStdin(stdin io.Reader) {
	c.cmd.Stdin = stdin
}

func (c *realCommand) SetStdout(stdout io.Writer) {
	c.cmd.Stdout = stdout
}

func (c *realCommand) SetStderr(stderr io.Writer) {
	c.cmd.Stderr = stderr
}

func (c *realCommand) Start() error {
	return c.cmd.Start()
}

func (c *realCommand) Wait() error {
	return c.cmd.Wait()
}
