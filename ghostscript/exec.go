package ghostscript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/madamkiwi/rghost/logging"
)

// DefaultPath is the interpreter binary looked up in PATH.
const DefaultPath = "gs"

// Interpreter runs a PostScript program.
type Interpreter interface {
	Run(ctx context.Context, job Job) (*Result, error)
}

// Exec runs the interpreter as a child process.
type Exec struct {
	path    string
	logger  logging.Logger
	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

var _ Interpreter = (*Exec)(nil)

// NewExec returns an interpreter that runs the binary at path, or
// DefaultPath when path is empty. A nil logger disables logging.
func NewExec(path string, logger logging.Logger) *Exec {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return &Exec{
		path:    path,
		logger:  logging.OrNoOp(logger),
		command: exec.CommandContext,
	}
}

// Path returns the interpreter binary.
func (e *Exec) Path() string {
	return e.path
}

// Run writes job.Program to the interpreter's stdin and waits for it to exit.
// Errors are returned when the job is invalid, the binary cannot be started
// or ctx ends first. A run that exits non-zero returns a Result with
// Failed() true and a nil error.
func (e *Exec) Run(ctx context.Context, job Job) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := e.logger.WithContext(ctx)

	if !job.Stream && job.Options.Filename == "" {
		name, err := tempOutput(job.Device)
		if err != nil {
			return nil, wrapOutputError(err)
		}
		job.Options.Filename = name
	}

	args, err := Args(job)
	if err != nil {
		return nil, wrapValidationError(err)
	}

	var stdout, stderr bytes.Buffer
	cmd := e.command(ctx, e.path, args...)
	cmd.Stdin = job.Program
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("ghostscript.run", "path", e.path, "device", string(job.Device), "output", job.OutputFile())
	started := time.Now()
	runErr := cmd.Run()

	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Warn("ghostscript.cancelled", "device", string(job.Device), "error", ctxErr)
		return nil, wrapContextError(ctxErr)
	}

	result := &Result{Args: args}
	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
	case errors.As(runErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		logger.Error("ghostscript.start_failed", "path", e.path, "error", runErr)
		return nil, wrapExecuteError(fmt.Errorf("run %s: %w", e.path, runErr))
	}

	if job.Stream {
		result.Output = stdout.Bytes()
		result.Log = stderr.String()
	} else {
		result.Log = stdout.String() + stderr.String()
		files, err := outputFiles(job.Options.Filename, job.Options.Multipage)
		if err != nil {
			return nil, wrapOutputError(err)
		}
		result.Files = files
	}

	if job.Options.Logfile != "" {
		if err := os.WriteFile(job.Options.Logfile, []byte(result.Log), 0o644); err != nil {
			return nil, wrapOutputError(fmt.Errorf("write log %s: %w", job.Options.Logfile, err))
		}
	}

	if result.Failed() {
		logger.Warn("ghostscript.failed",
			"device", string(job.Device),
			"exit_code", result.ExitCode,
			"log", strings.TrimSpace(result.Log),
		)
		return result, nil
	}

	logger.Info("ghostscript.done",
		"device", string(job.Device),
		"files", len(result.Files),
		"bytes", len(result.Output),
		"elapsed", time.Since(started),
	)
	return result, nil
}

func tempOutput(device Device) (string, error) {
	f, err := os.CreateTemp("", "rghost-*"+device.Extension())
	if err != nil {
		return "", fmt.Errorf("create temporary output: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("create temporary output: %w", err)
	}
	return name, nil
}

// outputFiles lists the files written for filename. Multipage runs are
// matched against the page numbered pattern and sorted.
func outputFiles(filename string, multipage bool) ([]string, error) {
	if !multipage {
		if _, err := os.Stat(filename); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, nil
			}
			return nil, fmt.Errorf("stat %s: %w", filename, err)
		}
		return []string{filename}, nil
	}

	ext := filepath.Ext(filename)
	pattern := strings.TrimSuffix(filename, ext) + "_[0-9][0-9][0-9][0-9]*" + ext
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("list pages of %s: %w", filename, err)
	}
	sort.Strings(files)
	return files, nil
}
