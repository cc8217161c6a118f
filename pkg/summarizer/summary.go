// Package summarizer provides summary generation for completed runs.
package summarizer

import "time"

// Summary contains everything reported about a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	Source   SourceInfo
	Settings Settings
	Video    VideoInfo

	// SourceRemoved reports whether the render directory was deleted.
	SourceRemoved bool
	Elapsed       time.Duration
}

// SourceInfo describes the encoded render directory.
type SourceInfo struct {
	Dir       string
	Name      string
	Timestamp time.Time
}

// Settings contains the encoder parameters.
type Settings struct {
	FPS         int
	Codec       string
	PixelFormat string
	Preset      string
	CRF         int
}

// VideoInfo contains information about the output video.
// Codec, FrameCount and Duration are only meaningful when Probed is set.
type VideoInfo struct {
	Path       string
	FileSize   int64
	Probed     bool
	Codec      string
	FrameCount int
	Duration   time.Duration
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets the render directory information.
func (b *Builder) WithSource(dir, name string, timestamp time.Time) *Builder {
	b.summary.Source = SourceInfo{
		Dir:       dir,
		Name:      name,
		Timestamp: timestamp,
	}
	return b
}

// WithSettings sets the encoder parameters.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithVideo sets video output information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// WithCleanup records whether the source directory was removed.
func (b *Builder) WithCleanup(removed bool) *Builder {
	b.summary.SourceRemoved = removed
	return b
}

// WithElapsed sets the total run time.
func (b *Builder) WithElapsed(elapsed time.Duration) *Builder {
	b.summary.Elapsed = elapsed
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
