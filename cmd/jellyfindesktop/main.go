// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Command jellyfindesktop is the native desktop client entrypoint: it
// resolves this OS's platform.Config, opens the settings store, starts
// the two embedded web engines and the out-of-process video engine, and
// runs the frame loop until the window closes (spec sections 1-9).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jellyfin/jellyfin-desktop-go/config"
	"github.com/jellyfin/jellyfin-desktop-go/platform"
)

// runOptions are the flags spec section 6/7 names: a video file to play
// directly instead of pointing the overlay at a server, and the
// GPU-shared-texture compositor policy decided by Open Question 1 (see
// DESIGN.md).
type runOptions struct {
	videoPath  string
	gpuOverlay bool
	verbose    bool
}

func main() {
	opts := &runOptions{}

	root := &cobra.Command{
		Use:           "jellyfindesktop",
		Short:         "Jellyfin desktop client",
		Long:          "A native desktop client for Jellyfin: an embedded web UI composited over an out-of-process video engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	root.Flags().StringVar(&opts.videoPath, "video", "", "play a local video file directly instead of loading the server picker")
	root.Flags().BoolVar(&opts.gpuOverlay, "gpu-overlay", false, "composite the web UI as a GPU shared texture instead of a CPU-copied bitmap (see DESIGN.md OQ1)")
	root.Flags().BoolVar(&opts.verbose, "verbose", false, "enable debug-level logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jellyfindesktop:", err)
		os.Exit(1)
	}
}

func run(opts *runOptions) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg := platform.Detect()
	log.Info("platform detected",
		"videoSurface", cfg.VideoSurface,
		"gpuBackend", cfg.GPUBackend,
		"threading", cfg.Threading,
		"independentVideoSurface", cfg.HasIndependentVideoSurface,
	)

	store, err := config.Open()
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	settings := store.Load()

	rt, err := newRuntime(cfg, store, settings, opts)
	if err != nil {
		return fmt.Errorf("start runtime: %w", err)
	}
	defer rt.Close()

	if opts.videoPath != "" {
		rt.PlayLocalFile(opts.videoPath)
	}

	rt.Loop.Run()
	return nil
}
