package mp4probe

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"
)

// countingReader records how many bytes were actually read.
type countingReader struct {
	io.ReadSeeker
	n int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.ReadSeeker.Read(p)
	r.n += int64(n)
	return n, err
}

// buildMP4 writes ftyp and moov for one avc1 video track of frames samples,
// followed by an mdat of payload bytes.
func buildMP4(t *testing.T, frames uint32, payload int) []byte {
	t.Helper()

	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(90000, "video", "und")
	trak := init.Moov.Trak
	trak.Mdia.Mdhd.Duration = 90000
	trak.Mdia.Minf.Stbl.Stsd.AddChild(mp4.CreateVisualSampleEntryBox("avc1", 64, 48, nil))
	trak.Mdia.Minf.Stbl.Stsz.SampleUniformSize = 100
	trak.Mdia.Minf.Stbl.Stsz.SampleNumber = frames

	var buf bytes.Buffer
	if err := init.Encode(&buf); err != nil {
		t.Fatalf("encode init: %v", err)
	}
	mdat := &mp4.MdatBox{}
	mdat.SetData(make([]byte, payload))
	if err := mdat.Encode(&buf); err != nil {
		t.Fatalf("encode mdat: %v", err)
	}
	return buf.Bytes()
}

func TestProbeReader_VideoTrack(t *testing.T) {
	data := buildMP4(t, 11, 4<<20)
	r := &countingReader{ReadSeeker: bytes.NewReader(data)}

	info, err := ProbeReader(r)
	if err != nil {
		t.Fatalf("ProbeReader failed: %v", err)
	}
	if info.Codec != CodecH264 {
		t.Errorf("Codec = %q, want %q", info.Codec, CodecH264)
	}
	if info.FrameCount != 11 {
		t.Errorf("FrameCount = %d, want 11", info.FrameCount)
	}
	if info.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", info.Duration)
	}

	// mdat payload is skipped, not loaded
	if r.n >= 4<<20 {
		t.Errorf("read %d bytes, expected the mdat payload to be skipped", r.n)
	}
}

func TestProbe_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render_1.mp4")
	if err := os.WriteFile(path, buildMP4(t, 5, 1024), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := New().Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.FrameCount != 5 {
		t.Errorf("FrameCount = %d, want 5", info.FrameCount)
	}
}

func TestProbe_MissingFile(t *testing.T) {
	p := New()

	if _, err := p.Probe(filepath.Join(t.TempDir(), "missing.mp4")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProbe_NotMP4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.mp4")
	if err := os.WriteFile(path, []byte("ffmpeg crashed here"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New().Probe(path); err == nil {
		t.Error("expected error for data that is not an MP4")
	}
}

func TestProbeReader_Empty(t *testing.T) {
	if _, err := ProbeReader(bytes.NewReader(nil)); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		duration  uint64
		timescale uint32
		want      time.Duration
	}{
		{duration: 90000, timescale: 90000, want: time.Second},
		{duration: 15360, timescale: 12288, want: 1250 * time.Millisecond},
		{duration: 0, timescale: 1000, want: 0},
	}

	for _, tt := range tests {
		if got := scale(tt.duration, tt.timescale); got != tt.want {
			t.Errorf("scale(%d, %d) = %v, want %v", tt.duration, tt.timescale, got, tt.want)
		}
	}
}
