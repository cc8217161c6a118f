package summarizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ideamans/go-l10n"
)

// MarkdownFormatter renders a Summary as a Markdown document with tables.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", l10n.T("Render Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", l10n.T("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	section(&b, l10n.T("Source"), [][2]string{
		{l10n.T("Directory"), s.Source.Dir},
		{l10n.T("Timestamp"), formatTime(s.Source.Timestamp)},
	})

	section(&b, l10n.T("Encoding"), [][2]string{
		{l10n.T("Frame Rate"), fmt.Sprintf("%d fps", s.Settings.FPS)},
		{l10n.T("Codec"), s.Settings.Codec},
		{l10n.T("Pixel Format"), s.Settings.PixelFormat},
		{l10n.T("Preset"), s.Settings.Preset},
		{l10n.T("CRF"), fmt.Sprintf("%d", s.Settings.CRF)},
	})

	output := [][2]string{
		{l10n.T("File"), s.Video.Path},
		{l10n.T("File Size"), humanize.Bytes(uint64(s.Video.FileSize))},
	}
	if s.Video.Probed {
		output = append(output,
			[2]string{l10n.T("Video Codec"), s.Video.Codec},
			[2]string{l10n.T("Frame Count"), fmt.Sprintf("%d", s.Video.FrameCount)},
			[2]string{l10n.T("Duration"), s.Video.Duration.Round(time.Millisecond).String()},
		)
	}
	output = append(output,
		[2]string{l10n.T("Source Removed"), yesNo(s.SourceRemoved)},
		[2]string{l10n.T("Elapsed"), s.Elapsed.Round(time.Millisecond).String()},
	)
	section(&b, l10n.T("Output"), output)

	fmt.Fprintf(&b, "---\n%s rendervid\n", l10n.T("Generated by"))
	return b.String()
}

func section(b *strings.Builder, title string, rows [][2]string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintf(b, "| %s | %s |\n", l10n.T("Item"), l10n.T("Value"))
	b.WriteString("|------|-------|\n")
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", row[0], escapeCell(row[1]))
	}
	b.WriteString("\n")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func yesNo(v bool) string {
	if v {
		return l10n.T("Yes")
	}
	return l10n.T("No")
}

func escapeCell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}

var _ Formatter = (*MarkdownFormatter)(nil)
