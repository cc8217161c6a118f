package pipeline

import (
	"time"

	"github.com/user/rendervid/pkg/ports"
)

// SelectInput contains input for the select stage.
type SelectInput struct {
	RootDir string
}

// SelectResult identifies the render directory to encode.
type SelectResult struct {
	Dir       string
	Name      string
	Timestamp time.Time
}

// EncodeInput contains input for the encode stage.
type EncodeInput struct {
	FramePattern string // printf-style, e.g. dir/frame_%05d.png
	OutputPath   string
	FPS          int
}

// EncodeResult describes the produced video.
type EncodeResult struct {
	OutputPath string
	FileSize   int64

	// Video is filled in when the output could be inspected.
	Video  ports.VideoInfo
	Probed bool
}

// CleanupInput contains input for the cleanup stage.
type CleanupInput struct {
	Dir string
}

// CleanupResult reports what the cleanup stage removed.
type CleanupResult struct {
	RemovedDir string
}
