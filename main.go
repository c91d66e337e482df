package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/retext/app"
	"github.com/soocke/retext/config"
	"github.com/soocke/retext/debug"
	"github.com/soocke/retext/domain/imagefile"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := config.ParseArgs(args)
	if err != nil {
		if config.IsHelp(err) {
			return 0
		}
		// go-flags already printed its own errors
		if err == config.ErrNoImage {
			fmt.Fprintln(os.Stderr, err)
		}
		return 2
	}

	// Base config from file, then flags
	cfg, cfgErr := config.Load(opts.ConfigPath)
	opts.Apply(cfg)

	if opts.SaveConfig {
		if err := cfg.Save(opts.ConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not write config %s: %v\n", opts.ConfigPath, err)
			return 1
		}
		fmt.Println("Config written to", opts.ConfigPath)
		return 0
	}

	// Set up logger
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(os.Stdout, level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", opts.ConfigPath, "error", cfgErr)
	}

	img, source, err := loadSource(opts)
	if err != nil {
		logger.Error("image load failed", "source", source, "error", err)
		fmt.Fprintf(os.Stderr, "Error: could not load image %s: %v\n", source, err)
		return 1
	}
	logger.Info("image loaded", "source", source, "w", img.Bounds().Dx(), "h", img.Bounds().Dy())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Debug {
		debug.StartStatsLogger(ctx, 2*time.Second, logger)
	}

	application, err := app.NewApp("retext - "+source, cfg, img, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	application.Start()
	return 0
}

func loadSource(opts *config.Options) (image.Image, string, error) {
	if opts.Screen {
		img, err := imagefile.CaptureScreen()
		return img, "<screen>", err
	}
	img, err := imagefile.Load(opts.Args.Image)
	return img, opts.Args.Image, err
}
