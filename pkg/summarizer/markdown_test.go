package summarizer

import (
	"strings"
	"testing"
	"time"
)

func testSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Source: SourceInfo{
			Dir:       "image_renders/render_20240101_0001",
			Name:      "render_20240101_0001",
			Timestamp: time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC),
		},
		Settings: Settings{
			FPS:         24,
			Codec:       "libx264",
			PixelFormat: "yuv420p",
			Preset:      "medium",
			CRF:         23,
		},
		Video: VideoInfo{
			Path:       "rendered_videos/render_20240101_0001.mp4",
			FileSize:   1000 * 1000,
			Probed:     true,
			Codec:      "h264",
			FrameCount: 11,
			Duration:   458333 * time.Microsecond,
		},
		SourceRemoved: true,
		Elapsed:       1500 * time.Millisecond,
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	result := NewMarkdownFormatter().Format(testSummary())

	checks := []string{
		"# Render Summary",
		"2024-01-15 10:30:00",
		"image_renders/render_20240101_0001",
		"2024-01-01T00:00:01Z",
		"24 fps",
		"libx264",
		"yuv420p",
		"medium",
		"| 23 |",
		"rendered_videos/render_20240101_0001.mp4",
		"1.0 MB",
		"h264",
		"| 11 |",
		"458ms",
		"1.5s",
		"Yes",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q\n%s", check, result)
		}
	}
}

func TestMarkdownFormatter_Format_NotProbed(t *testing.T) {
	s := testSummary()
	s.Video.Probed = false
	s.SourceRemoved = false

	result := NewMarkdownFormatter().Format(s)

	if strings.Contains(result, "Frame Count") {
		t.Error("expected probe rows to be omitted")
	}
	if !strings.Contains(result, "| Source Removed | No |") {
		t.Errorf("expected source removal to read No\n%s", result)
	}
}

func TestMarkdownFormatter_Format_EscapesPipes(t *testing.T) {
	s := testSummary()
	s.Source.Dir = "image_renders/render|odd"

	result := NewMarkdownFormatter().Format(s)

	if !strings.Contains(result, `render\|odd`) {
		t.Errorf("expected pipe to be escaped\n%s", result)
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(s *Summary) string { return s.Source.Name })

	if got := f.Format(testSummary()); got != "render_20240101_0001" {
		t.Errorf("unexpected output %q", got)
	}
}
