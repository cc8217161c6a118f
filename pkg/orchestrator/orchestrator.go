// Package orchestrator runs one select, encode and cleanup pass.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/user/rendervid/pkg/framerate"
	"github.com/user/rendervid/pkg/pipeline"
	"github.com/user/rendervid/pkg/ports"
)

const (
	// FramePattern names the frames inside a render directory.
	FramePattern = "frame_%05d.png"
	// OutputExt is appended to the render directory name to form the video name.
	OutputExt = ".mp4"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	RootDir   string
	OutputDir string
	FPS       int
}

// DefaultConfig returns the fixed layout relative to the working directory.
func DefaultConfig() Config {
	return Config{
		RootDir:   "./image_renders",
		OutputDir: "./rendered_videos",
		FPS:       framerate.Default,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	selectStage  pipeline.Stage[pipeline.SelectInput, pipeline.SelectResult]
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	cleanupStage pipeline.Stage[pipeline.CleanupInput, pipeline.CleanupResult]
	fs           ports.FileSystem
	lock         ports.RunLock
	logger       ports.Logger
}

// New creates a new Orchestrator. lock may be nil to run unguarded.
func New(
	selectStage pipeline.Stage[pipeline.SelectInput, pipeline.SelectResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	cleanupStage pipeline.Stage[pipeline.CleanupInput, pipeline.CleanupResult],
	fs ports.FileSystem,
	lock ports.RunLock,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		selectStage:  selectStage,
		encodeStage:  encodeStage,
		cleanupStage: cleanupStage,
		fs:           fs,
		lock:         lock,
		logger:       logger,
	}
}

// Run encodes the newest render directory and deletes it once the encoder
// has succeeded. Any error ends the run: a failed encode leaves the source
// directory in place, a failed delete leaves both the video and the frames.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	started := time.Now()
	o.logger.Info("Converting frames to video at %d fps", config.FPS)

	// 1. Output directory
	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		o.logger.Error("Failed to create output directory: %s", err)
		return RunResult{}, fmt.Errorf("create output directory: %w", err)
	}

	if o.lock != nil {
		if err := o.lock.Acquire(); err != nil {
			return RunResult{}, err
		}
		defer func() {
			if err := o.lock.Release(); err != nil {
				o.logger.Warn("Failed to release run lock: %s", err)
			}
		}()
	}

	// 2. Select render directory
	selected, err := o.selectStage.Execute(ctx, pipeline.SelectInput{RootDir: config.RootDir})
	if err != nil {
		o.logger.Error("Failed to find render directory: %s", err)
		return RunResult{}, fmt.Errorf("select stage: %w", err)
	}
	o.logger.Info("Processing directory: %s", selected.Name)

	// 3. Encode
	encodeInput := o.buildEncodeInput(config, selected)
	encoded, err := o.encodeStage.Execute(ctx, encodeInput)
	if err != nil {
		o.logger.Error("Failed to encode video: %s", err)
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info("Video created successfully: %s", encoded.OutputPath)

	result := RunResult{
		SourceDir:  selected.Dir,
		SourceName: selected.Name,
		SourceTime: selected.Timestamp,
		FPS:        config.FPS,
		OutputPath: encoded.OutputPath,
		FileSize:   encoded.FileSize,
		Video:      encoded.Video,
		Probed:     encoded.Probed,
	}

	// 4. Delete the frames
	if _, err := o.cleanupStage.Execute(ctx, pipeline.CleanupInput{Dir: selected.Dir}); err != nil {
		o.logger.Error("Failed to delete render folder: %s", err)
		result.Elapsed = time.Since(started)
		return result, fmt.Errorf("cleanup stage: %w", err)
	}
	o.logger.Info("Deleted render folder: %s", selected.Dir)

	result.SourceRemoved = true
	result.Elapsed = time.Since(started)
	return result, nil
}

func (o *Orchestrator) buildEncodeInput(config Config, selected pipeline.SelectResult) pipeline.EncodeInput {
	return pipeline.EncodeInput{
		FramePattern: filepath.Join(selected.Dir, FramePattern),
		OutputPath:   filepath.Join(config.OutputDir, selected.Name+OutputExt),
		FPS:          config.FPS,
	}
}

// RunResult describes a completed (or partially completed) run.
type RunResult struct {
	SourceDir  string
	SourceName string
	SourceTime time.Time
	FPS        int

	OutputPath string
	FileSize   int64
	Video      ports.VideoInfo
	Probed     bool

	// SourceRemoved is false when cleanup failed after a successful encode.
	SourceRemoved bool
	Elapsed       time.Duration
}
