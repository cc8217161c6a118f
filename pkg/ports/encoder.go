package ports

import (
	"context"
	"time"
)

// EncodeJob describes one image-sequence-to-video conversion.
type EncodeJob struct {
	// FramePattern is a printf-style pattern such as dir/frame_%05d.png.
	FramePattern string
	OutputPath   string
	FPS          int
}

// SequenceEncoder turns a numbered image sequence into a video file.
type SequenceEncoder interface {
	// Encode blocks until the encoder exits. A nil error means the
	// encoder reported success.
	Encode(ctx context.Context, job EncodeJob) error
}

// VideoInfo describes an encoded video file.
type VideoInfo struct {
	Codec      string
	FrameCount int
	Duration   time.Duration
}

// OutputProber inspects a produced video file.
type OutputProber interface {
	Probe(path string) (VideoInfo, error)
}

// RunLock guards a run against concurrent invocations.
type RunLock interface {
	// Acquire takes the lock without blocking.
	Acquire() error

	// Release gives the lock back.
	Release() error
}
