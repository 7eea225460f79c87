package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"formscale/internal/app"
	"formscale/internal/host"
	"formscale/internal/platform/headless"
)

func main() {
	formPath := flag.String("form", "", "YAML form definition (default: built-in demo form)")
	headlessRun := flag.Bool("headless", false, "replay -sizes without opening a window and print the final layout")
	sizes := flag.String("sizes", "1280x720,1920x1080,2560x1440,800x600", "comma separated WxH sizes for -headless")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *headlessRun {
		if err := replay(*formPath, *sizes, logger); err != nil {
			fmt.Fprintf(os.Stderr, "formscale: %v\n", err)
			os.Exit(1)
		}
		return
	}

	application, err := app.New(app.Config{FormPath: *formPath, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "formscale: %v\n", err)
		os.Exit(1)
	}
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "formscale failed: %v\n", err)
		os.Exit(1)
	}
}

func replay(formPath, sizeList string, logger *slog.Logger) error {
	script, err := headless.ParseSizes(sizeList)
	if err != nil {
		return err
	}
	h, err := host.Load(formPath, logger)
	if err != nil {
		return err
	}
	if err := host.Replay(h, headless.New(script...)); err != nil {
		return err
	}
	fmt.Print(h.Dump())
	return nil
}
