// Package selectdir implements the stage that picks the render directory.
package selectdir

import (
	"context"

	"github.com/user/rendervid/pkg/pipeline"
	"github.com/user/rendervid/pkg/ports"
	"github.com/user/rendervid/pkg/selector"
)

// Stage selects the newest render directory under the input root.
type Stage struct {
	selector *selector.Selector
}

// NewStage creates a new select stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		selector: selector.New(fs, logger.WithComponent("selector")),
	}
}

// Execute runs the directory scan.
func (s *Stage) Execute(ctx context.Context, input pipeline.SelectInput) (pipeline.SelectResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.SelectResult{}, err
	}

	candidate, err := s.selector.FindLatest(input.RootDir)
	if err != nil {
		return pipeline.SelectResult{}, err
	}

	return pipeline.SelectResult{
		Dir:       candidate.Path,
		Name:      candidate.Name,
		Timestamp: candidate.Timestamp,
	}, nil
}
