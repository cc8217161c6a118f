// Package mp4probe reads codec, frame count and duration from MP4 files.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/user/rendervid/pkg/ports"
)

// Codec names reported in ports.VideoInfo.
const (
	CodecH264    = "h264"
	CodecHEVC    = "hevc"
	CodecAV1     = "av1"
	CodecUnknown = "unknown"
)

// ErrNoVideoTrack is returned when an MP4 has no video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Prober implements ports.OutputProber.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe inspects the MP4 file at path.
func (p *Prober) Probe(path string) (ports.VideoInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader inspects MP4 data from r. Only box headers and sample tables
// are read; mdat payloads are skipped.
func ProbeReader(r io.ReadSeeker) (ports.VideoInfo, error) {
	mp4File, err := mp4.DecodeFile(r, mp4.WithDecodeMode(mp4.DecModeLazyMdat))
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	var moov *mp4.MoovBox
	switch {
	case mp4File.Moov != nil:
		moov = mp4File.Moov
	case mp4File.Init != nil && mp4File.Init.Moov != nil:
		moov = mp4File.Init.Moov
	default:
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	for _, trak := range moov.Traks {
		if !isVideoTrack(trak) {
			continue
		}
		info := ports.VideoInfo{
			Codec:    codecOf(trak),
			Duration: trackDuration(trak, moov.Mvhd),
		}
		if stsz := trak.Mdia.Minf.Stbl.Stsz; stsz != nil {
			info.FrameCount = int(stsz.SampleNumber)
		}
		return info, nil
	}

	return ports.VideoInfo{}, ErrNoVideoTrack
}

func isVideoTrack(trak *mp4.TrakBox) bool {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
		return false
	}
	if trak.Mdia.Hdlr.HandlerType != "vide" {
		return false
	}
	return trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil
}

func codecOf(trak *mp4.TrakBox) string {
	stsd := trak.Mdia.Minf.Stbl.Stsd
	if stsd == nil {
		return CodecUnknown
	}
	for _, child := range stsd.Children {
		switch child.Type() {
		case "avc1", "avc3":
			return CodecH264
		case "hvc1", "hev1":
			return CodecHEVC
		case "av01":
			return CodecAV1
		}
	}
	return CodecUnknown
}

// trackDuration prefers the media header of the track and falls back to the
// movie header.
func trackDuration(trak *mp4.TrakBox, mvhd *mp4.MvhdBox) time.Duration {
	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 && mdhd.Duration > 0 {
		return scale(mdhd.Duration, mdhd.Timescale)
	}
	if mvhd != nil && mvhd.Timescale > 0 {
		return scale(mvhd.Duration, mvhd.Timescale)
	}
	return 0
}

func scale(duration uint64, timescale uint32) time.Duration {
	return time.Duration(float64(duration) / float64(timescale) * float64(time.Second))
}

// Ensure Prober implements ports.OutputProber
var _ ports.OutputProber = (*Prober)(nil)
