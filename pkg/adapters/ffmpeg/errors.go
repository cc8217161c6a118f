package ffmpeg

import "errors"

var (
	// ErrEncoderFailed is returned when ffmpeg exits with a non-zero status.
	ErrEncoderFailed = errors.New("ffmpeg: encoder exited with non-zero status")

	// ErrInvalidJob is returned when a job is missing its input pattern or output path.
	ErrInvalidJob = errors.New("ffmpeg: invalid encode job")
)
