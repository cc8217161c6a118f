// Package ffmpeg encodes numbered image sequences into H.264 MP4 files by
// running the ffmpeg command-line tool.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/user/rendervid/pkg/adapters/logger"
	"github.com/user/rendervid/pkg/ports"
)

// Fixed encoding parameters.
const (
	VideoCodec  = "libx264"
	PixelFormat = "yuv420p"
	Preset      = "medium"
	CRF         = 23

	// DefaultBinary is resolved through PATH when the process is spawned.
	DefaultBinary = "ffmpeg"
)

var commandContext = exec.CommandContext

// Option configures an Encoder.
type Option func(*Encoder)

// WithBinary overrides the ffmpeg executable.
func WithBinary(path string) Option {
	return func(e *Encoder) {
		if path != "" {
			e.binary = path
		}
	}
}

// WithOutput redirects ffmpeg's stdout and stderr.
// By default both are inherited from the current process.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Encoder) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(log ports.Logger) Option {
	return func(e *Encoder) {
		if log != nil {
			e.log = log
		}
	}
}

// Encoder implements ports.SequenceEncoder with an ffmpeg child process.
type Encoder struct {
	binary string
	stdout io.Writer
	stderr io.Writer
	log    ports.Logger
}

// New creates an Encoder that runs "ffmpeg" from PATH.
func New(opts ...Option) *Encoder {
	e := &Encoder{
		binary: DefaultBinary,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logger.NewNoop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Binary returns the executable the encoder runs.
func (e *Encoder) Binary() string {
	return e.binary
}

// Args builds the ffmpeg argument list for a job.
func Args(job ports.EncodeJob) []string {
	return []string{
		"-y", // Overwrite output
		"-framerate", strconv.Itoa(job.FPS),
		"-i", job.FramePattern,
		"-c:v", VideoCodec,
		"-pix_fmt", PixelFormat,
		"-preset", Preset,
		"-crf", strconv.Itoa(CRF),
		job.OutputPath,
	}
}

// Encode runs ffmpeg and waits for it to exit. Only the exit status decides
// the result; a partially written output file is left in place on failure.
func (e *Encoder) Encode(ctx context.Context, job ports.EncodeJob) error {
	if job.FramePattern == "" || job.OutputPath == "" {
		return fmt.Errorf("%w: frame pattern and output path are required", ErrInvalidJob)
	}

	args := Args(job)
	e.log.Debug("Running %s %s", e.binary, strings.Join(args, " "))

	cmd := commandContext(ctx, e.binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			e.log.Debug("Encoder exited with status %d", exitErr.ExitCode())
			return fmt.Errorf("%w: exit status %d", ErrEncoderFailed, exitErr.ExitCode())
		}
		return fmt.Errorf("start %s: %w", e.binary, err)
	}
	return nil
}

// Ensure Encoder implements ports.SequenceEncoder
var _ ports.SequenceEncoder = (*Encoder)(nil)
