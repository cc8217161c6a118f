package mocks

import (
	"context"

	"github.com/user/rendervid/pkg/ports"
)

// SequenceEncoder is a mock implementation of ports.SequenceEncoder.
type SequenceEncoder struct {
	EncodeFunc func(ctx context.Context, job ports.EncodeJob) error

	// Recorded calls for verification
	Jobs []ports.EncodeJob
}

func (m *SequenceEncoder) Encode(ctx context.Context, job ports.EncodeJob) error {
	m.Jobs = append(m.Jobs, job)
	if m.EncodeFunc != nil {
		return m.EncodeFunc(ctx, job)
	}
	return nil
}

// OutputProber is a mock implementation of ports.OutputProber.
type OutputProber struct {
	ProbeFunc func(path string) (ports.VideoInfo, error)

	ProbeCalls []string
}

func (m *OutputProber) Probe(path string) (ports.VideoInfo, error) {
	m.ProbeCalls = append(m.ProbeCalls, path)
	if m.ProbeFunc != nil {
		return m.ProbeFunc(path)
	}
	return ports.VideoInfo{Codec: "h264"}, nil
}

var (
	_ ports.SequenceEncoder = (*SequenceEncoder)(nil)
	_ ports.OutputProber    = (*OutputProber)(nil)
)
