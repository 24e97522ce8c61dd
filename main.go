package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return buildCLI(execRain).ParseAndRun(context.Background(), args)
}

// buildCLI wires flags (or KATARAIN_* environment variables) into a Config
// and hands it to exec.
func buildCLI(exec func(context.Context, *Config) error) *ffcli.Command {
	def := DefaultConfig()
	fs := flag.NewFlagSet("katarain", flag.ContinueOnError)
	var seed seedFlag
	fs.Var(&seed, "seed", "seed for a reproducible rain (default random)")
	fps := fs.Int("fps", def.FPS, fmt.Sprintf("frames per second (1-%d)", maxFPS))
	trail := fs.Int("trail", def.TrailLength, "trail length in cells")
	color := fs.String("color", defaultColorMode, "color mode: truecolor, 256, 16, none or auto")
	debug := fs.Bool("debug", false, "enable debug logging on stderr")

	return &ffcli.Command{
		Name:       "katarain",
		ShortUsage: "katarain [flags]",
		ShortHelp:  "Katakana rain for your terminal",
		LongHelp:   "Press Ctrl+C to stop. Every flag can also be set as KATARAIN_<FLAG>, e.g. KATARAIN_FPS=60.",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("KATARAIN")},
		Exec: func(ctx context.Context, _ []string) error {
			profile, err := resolveProfile(*color, os.Stdout)
			if err != nil {
				return err
			}
			cfg := &Config{
				Seed:        seed.value,
				FPS:         *fps,
				TrailLength: *trail,
				Profile:     profile,
				Debug:       *debug,
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return exec(ctx, cfg)
		},
	}
}

// execRain runs the animation on stdout until SIGINT or SIGTERM.
func execRain(ctx context.Context, cfg *Config) error {
	setupLogging(cfg.Debug)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	terminal := NewStdTerminal(os.Stdout)
	if !terminal.IsTerminal() {
		slog.Warn("stdout is not a terminal, using fallback size")
	}
	rain, err := NewRain(cfg, os.Stdout, terminal, newMonotonicClock())
	if err != nil {
		terminal.Close()
		return err
	}
	if cfg.Seed != nil {
		slog.Debug("seeded run", "seed", *cfg.Seed)
	}
	return rain.Run(ctx)
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
