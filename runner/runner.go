// Package runner writes submitted command text to scratch files and executes
// them with an external interpreter process.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/flurion/fpb/logging"
)

// Error kinds reported through Result.Err.
var (
	// ErrScratch reports a scratch directory or script file that could not
	// be prepared.
	ErrScratch = errors.New("prepare scratch file")
	// ErrLaunch reports an interpreter process that could not be started.
	ErrLaunch = errors.New("failed to execute")
	// ErrTimeout reports an execution that exceeded the configured bound
	// and was forcibly terminated.
	ErrTimeout = errors.New("execution timed out")
)

// Result holds the captured output and metadata from one execution.
type Result struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error
}

// Runner executes command text with an external interpreter. A default
// Runner reproduces the original helper: "python" invoked on a script under
// $TMPDIR/fpb, bounded at 30 seconds.
type Runner struct {
	interpreter string
	scratchDir  string
	timeout     time.Duration
	log         zerolog.Logger
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{
		interpreter: cfg.interpreter,
		scratchDir:  cfg.scratchDir,
		timeout:     cfg.timeout,
		log:         logging.Component("runner"),
	}
}

// Interpreter returns the configured interpreter binary.
func (r *Runner) Interpreter() string { return r.interpreter }

// Timeout returns the configured execution bound. Zero means unbounded.
func (r *Runner) Timeout() time.Duration { return r.timeout }

// Run writes command to a fresh scratch file, invokes the interpreter on it,
// and blocks until the process exits. Each run gets its own uniquely named
// script file, removed on every exit path, so concurrent runs never share
// one. The interpreter's exit code is not inspected; whatever it wrote to
// stderr is reported through Result.Stderr.
func (r *Runner) Run(ctx context.Context, command string) Result {
	start := time.Now()

	if err := os.MkdirAll(r.scratchDir, 0o755); err != nil {
		r.log.Error().Err(err).Str("dir", r.scratchDir).Msg("failed to create scratch dir")
		return Result{Err: fmt.Errorf("%w: %v", ErrScratch, err), Duration: time.Since(start)}
	}

	script, err := os.CreateTemp(r.scratchDir, "script-*.py")
	if err != nil {
		r.log.Error().Err(err).Msg("failed to create script file")
		return Result{Err: fmt.Errorf("%w: %v", ErrScratch, err), Duration: time.Since(start)}
	}
	scriptPath := script.Name()
	defer os.Remove(scriptPath)

	_, werr := script.WriteString(command)
	if cerr := script.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		r.log.Error().Err(werr).Str("script", scriptPath).Msg("failed to write script file")
		return Result{Err: fmt.Errorf("%w: %v", ErrScratch, werr), Duration: time.Since(start)}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.interpreter, scriptPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// The interpreter gets its own process group so expiry kills anything it
	// forked, not just the leader. WaitDelay abandons the output pipes if an
	// orphaned grandchild still holds them past the deadline.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = time.Second

	r.log.Debug().Str("interpreter", r.interpreter).Str("script", scriptPath).Msg("executing")
	err = cmd.Run()

	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case ctx.Err() == context.DeadlineExceeded:
			result.Err = fmt.Errorf("%w after %v", ErrTimeout, r.timeout)
		case ctx.Err() != nil:
			// Caller-canceled context: not a timeout, not a clean run.
			result.Err = ctx.Err()
		case errors.As(err, &exitErr):
			// The process ran; its exit status is deliberately ignored.
			// Stderr carries whatever the interpreter reported.
		default:
			result.Err = fmt.Errorf("%w %s: %v", ErrLaunch, r.interpreter, err)
		}
	}

	if result.Stderr != "" {
		r.log.Warn().Str("stderr", result.Stderr).Msg("interpreter wrote to stderr")
	}
	r.log.Debug().Dur("duration", result.Duration).Str("stdout", result.Stdout).Msg("execution finished")

	return result
}
