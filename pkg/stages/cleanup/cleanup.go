// Package cleanup implements the stage that deletes an encoded render directory.
package cleanup

import (
	"context"
	"fmt"

	"github.com/user/rendervid/pkg/pipeline"
	"github.com/user/rendervid/pkg/ports"
)

// Stage removes a render directory and its frames.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new cleanup stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("cleanup"),
	}
}

// Execute deletes input.Dir recursively.
func (s *Stage) Execute(ctx context.Context, input pipeline.CleanupInput) (pipeline.CleanupResult, error) {
	if input.Dir == "" {
		return pipeline.CleanupResult{}, fmt.Errorf("no directory to remove")
	}
	if err := ctx.Err(); err != nil {
		return pipeline.CleanupResult{}, err
	}

	if err := s.fs.RemoveAll(input.Dir); err != nil {
		return pipeline.CleanupResult{}, fmt.Errorf("remove %s: %w", input.Dir, err)
	}
	return pipeline.CleanupResult{RemovedDir: input.Dir}, nil
}
