// Package main provides the CLI entry point for rendervid.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/rendervid/pkg/adapters/ffmpeg"
	"github.com/user/rendervid/pkg/adapters/logger"
	"github.com/user/rendervid/pkg/adapters/mp4probe"
	"github.com/user/rendervid/pkg/adapters/osfilesystem"
	"github.com/user/rendervid/pkg/adapters/runlock"
	"github.com/user/rendervid/pkg/config"
	"github.com/user/rendervid/pkg/framerate"
	"github.com/user/rendervid/pkg/orchestrator"
	"github.com/user/rendervid/pkg/ports"
	"github.com/user/rendervid/pkg/stages/cleanup"
	"github.com/user/rendervid/pkg/stages/encode"
	"github.com/user/rendervid/pkg/stages/selectdir"
	"github.com/user/rendervid/pkg/summarizer"
)

// CLI defines the command-line interface.
type CLI struct {
	// Only the first value is used; extra values are ignored.
	FPS []string `arg:"" optional:"" name:"fps" help:"${help_fps}"`

	Config  string `short:"c" type:"path" help:"${help_config}"`
	Summary string `short:"s" type:"path" help:"${help_summary}"`

	// Logging options
	LogLevel string `short:"l" help:"${help_log_level}"`
	Quiet    bool   `short:"Q" help:"${help_quiet}"`

	Version kong.VersionFlag `short:"v" help:"${help_version}"`
}

var version = "dev"

func main() {
	cli := CLI{}

	parser := kong.Must(&cli,
		kong.Name("rendervid"),
		kong.Description(l10n.T("Encode the newest render directory into an MP4 video")),
		kong.UsageOnError(),
		vars(),
	)

	ctx, err := parseArgs(parser, &cli, os.Args[1:])
	parser.FatalIfErrorf(err)

	err = cli.Run()
	ctx.FatalIfErrorf(err)
}

// parseArgs parses args into cli. A leading negative number such as "-5" is
// taken as the frame rate rather than a flag.
func parseArgs(parser *kong.Kong, cli *CLI, args []string) (*kong.Context, error) {
	var rate string
	if len(args) > 0 && isNegativeNumber(args[0]) {
		rate, args = args[0], args[1:]
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return ctx, err
	}
	if rate != "" {
		cli.FPS = append([]string{rate}, cli.FPS...)
	}
	return ctx, nil
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.ParseInt(arg, 10, 64)
	return err == nil
}

// vars supplies localized help text and the version string to kong.
func vars() kong.Vars {
	return kong.Vars{
		"version":        l10n.F("rendervid version %s", version),
		"help_fps":       l10n.T("Frame rate of the output video (default: 30)"),
		"help_config":    l10n.T("YAML configuration file"),
		"help_summary":   l10n.T("Output execution summary to file (Markdown format)"),
		"help_log_level": l10n.T("Log level (debug, info, warn, error)"),
		"help_quiet":     l10n.T("Suppress all log output"),
		"help_version":   l10n.T("Show version information"),
	}
}

// Run selects, encodes and removes the newest render directory.
func (cmd *CLI) Run() error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}

	log := cmd.newLogger(cfg)
	fps := framerate.FromArgs(cmd.FPS)

	orch := newOrchestrator(cfg, log)
	result, err := orch.Run(context.Background(), cfg.ToOrchestratorConfig(fps))
	return cmd.writeSummary(log, result, err)
}

// writeSummary writes --summary once a video exists, including when deleting
// the source failed afterwards. runErr is returned unchanged.
func (cmd *CLI) writeSummary(log ports.Logger, result orchestrator.RunResult, runErr error) error {
	if cmd.Summary == "" || result.OutputPath == "" {
		return runErr
	}

	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter())
	if err := writer.Write(cmd.Summary, buildSummary(result)); err != nil {
		log.Error("Failed to write summary: %s", err)
		if runErr != nil {
			return runErr
		}
		return fmt.Errorf("write summary: %w", err)
	}
	log.Info("Summary saved to %s", cmd.Summary)
	return runErr
}

// loadConfig returns the defaults, or the file given with --config.
func (cmd *CLI) loadConfig() (config.Config, error) {
	if cmd.Config == "" {
		return config.Defaults(), nil
	}
	cfg, err := config.LoadFromFile(cmd.Config)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger applies --quiet and --log-level on top of the configured level.
func (cmd *CLI) newLogger(cfg config.Config) ports.Logger {
	if cmd.Quiet {
		return logger.NewNoop()
	}
	level := cfg.LogLevel
	if cmd.LogLevel != "" {
		level = cmd.LogLevel
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

func newOrchestrator(cfg config.Config, log ports.Logger) *orchestrator.Orchestrator {
	// Create adapters
	fs := osfilesystem.New()
	encoder := ffmpeg.New(
		ffmpeg.WithBinary(cfg.FFmpegPath),
		ffmpeg.WithLogger(log.WithComponent("ffmpeg")),
	)
	prober := mp4probe.New()

	var lock ports.RunLock
	if cfg.Lock {
		lock = runlock.InDir(cfg.OutputDir)
	}

	// Create stages
	selectStage := selectdir.NewStage(fs, log)
	encodeStage := encode.NewStage(encoder, prober, fs, log)
	cleanupStage := cleanup.NewStage(fs, log)

	return orchestrator.New(
		selectStage,
		encodeStage,
		cleanupStage,
		fs,
		lock,
		log,
	)
}

// buildSummary converts a completed run into a Summary.
func buildSummary(result orchestrator.RunResult) *summarizer.Summary {
	return summarizer.NewBuilder().
		WithSource(result.SourceDir, result.SourceName, result.SourceTime).
		WithSettings(summarizer.Settings{
			FPS:         result.FPS,
			Codec:       ffmpeg.VideoCodec,
			PixelFormat: ffmpeg.PixelFormat,
			Preset:      ffmpeg.Preset,
			CRF:         ffmpeg.CRF,
		}).
		WithVideo(summarizer.VideoInfo{
			Path:       result.OutputPath,
			FileSize:   result.FileSize,
			Probed:     result.Probed,
			Codec:      result.Video.Codec,
			FrameCount: result.Video.FrameCount,
			Duration:   result.Video.Duration,
		}).
		WithCleanup(result.SourceRemoved).
		WithElapsed(result.Elapsed).
		Build()
}
