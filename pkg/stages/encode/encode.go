// Package encode implements the video encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/rendervid/pkg/pipeline"
	"github.com/user/rendervid/pkg/ports"
)

// Stage encodes a frame sequence into an MP4 file.
type Stage struct {
	encoder ports.SequenceEncoder
	prober  ports.OutputProber
	fs      ports.FileSystem
	logger  ports.Logger
}

// NewStage creates a new encode stage. prober may be nil.
func NewStage(encoder ports.SequenceEncoder, prober ports.OutputProber, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		prober:  prober,
		fs:      fs,
		logger:  logger.WithComponent("encode"),
	}
}

// Execute runs the encoder and waits for it. Success is decided by the
// encoder alone; inspecting the output afterwards is best effort.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if input.FramePattern == "" || input.OutputPath == "" {
		return result, fmt.Errorf("frame pattern and output path are required")
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	job := ports.EncodeJob{
		FramePattern: input.FramePattern,
		OutputPath:   input.OutputPath,
		FPS:          input.FPS,
	}
	if err := s.encoder.Encode(ctx, job); err != nil {
		return result, err
	}
	result.OutputPath = input.OutputPath

	if size, err := s.fs.Size(input.OutputPath); err == nil {
		result.FileSize = size
	} else {
		s.logger.Warn("Could not inspect output %s: %s", input.OutputPath, err)
	}

	if s.prober != nil {
		info, err := s.prober.Probe(input.OutputPath)
		if err != nil {
			s.logger.Warn("Could not inspect output %s: %s", input.OutputPath, err)
		} else {
			result.Video = info
			result.Probed = true
			s.logger.Debug("Output: %s, %d frames, %s", info.Codec, info.FrameCount, info.Duration)
		}
	}

	return result, nil
}
