// Package runner executes built command lines attached to the terminal and
// classifies how they ended.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInterrupted reports a connect the user cancelled. It is separated from
// ConnectError for messaging only; neither is fatal to the process.
var ErrInterrupted = errors.New("connection interrupted by user")

// sigintExitCode is the conventional exit status of a child killed by SIGINT.
const sigintExitCode = 130

// exitCoder matches *exec.ExitError and any error that exposes a child
// exit status.
type exitCoder interface {
	error
	ExitCode() int
}

// ConnectError reports a failed external invocation, carrying the
// underlying cause.
type ConnectError struct {
	Command string
	Err     error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connection failed (%s): %v", e.Command, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// Runner spawns external commands attached to the configured streams.
type Runner struct {
	stdin         io.Reader
	stdout        io.Writer
	stderr        io.Writer
	commandRunner CommandRunner
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdin sets the stdin reader.
func WithStdin(r io.Reader) Option {
	return func(run *Runner) {
		run.stdin = r
	}
}

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) Option {
	return func(run *Runner) {
		run.stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) Option {
	return func(run *Runner) {
		run.stderr = w
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func WithCommandRunner(cr CommandRunner) Option {
	return func(run *Runner) {
		run.commandRunner = cr
	}
}

// New creates a Runner attached to the process terminal by default.
func New(opts ...Option) *Runner {
	r := &Runner{
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		commandRunner: NewCommandRunner(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Split turns a built command line into an argv. Fields are separated by
// whitespace only; no shell is involved, so quoting and metacharacters are
// never interpreted.
func Split(cmdline string) []string {
	return strings.Fields(cmdline)
}

// Run executes a built command line attached to the terminal and blocks
// until it exits. No timeout is imposed here; cancelling ctx is the only
// way to abandon a run in flight. The result is classified: user
// cancellation (context cancel or child exit 130) reports ErrInterrupted,
// every other failure reports a *ConnectError carrying the cause.
func (r *Runner) Run(ctx context.Context, cmdline string) error {
	argv := Split(cmdline)
	if len(argv) == 0 {
		return &ConnectError{Command: cmdline, Err: errors.New("empty command")}
	}

	path, err := r.commandRunner.LookPath(argv[0])
	if err != nil {
		return &ConnectError{Command: cmdline, Err: err}
	}

	// #nosec G204 - argv comes from the profile the user chose to run
	cmd := r.commandRunner.CommandContext(ctx, path, argv[1:]...)
	cmd.SetStdin(r.stdin)
	cmd.SetStdout(r.stdout)
	cmd.SetStderr(r.stderr)

	if err := cmd.Start(); err != nil {
		return &ConnectError{Command: cmdline, Err: err}
	}

	waitErr := cmd.Wait()
	return classify(ctx, cmdline, waitErr)
}

func classify(ctx context.Context, cmdline string, waitErr error) error {
	if waitErr == nil {
		return nil
	}
	// Only user cancellation is "interrupted"; an expired deadline is a
	// plain connection failure.
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%w: %v", ErrInterrupted, waitErr)
	}
	var exitErr exitCoder
	if errors.As(waitErr, &exitErr) && exitErr.ExitCode() == sigintExitCode {
		return fmt.Errorf("%w: %v", ErrInterrupted, waitErr)
	}
	return &ConnectError{Command: cmdline, Err: waitErr}
}
