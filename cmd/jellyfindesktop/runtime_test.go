// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/platform"
	"github.com/jellyfin/jellyfin-desktop-go/player"
)

func TestPlayLocalFileEnqueuesLoadWithNoTrackSelected(t *testing.T) {
	bridge := &player.Bridge{}
	rt := &jellyfinRuntime{bridge: bridge}

	rt.PlayLocalFile("/movies/demo.mkv")

	cmds := bridge.Commands.Drain()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	got := cmds[0]
	if got.Kind != player.CmdLoad || got.URL != "/movies/demo.mkv" {
		t.Fatalf("got %+v, want a CmdLoad for the given path", got)
	}
	if got.AudioIndex != -1 || got.SubtitleIndex != -1 {
		t.Fatalf("got AudioIndex=%d SubtitleIndex=%d, want -1/-1 (no track forced)", got.AudioIndex, got.SubtitleIndex)
	}
}

type fakeGPUSurface struct{ closed bool }

func (f *fakeGPUSurface) Close() error {
	f.closed = true
	return nil
}

func TestRuntimeCloseTearsDownGPUWithNoSession(t *testing.T) {
	gpu := &fakeGPUSurface{}
	rt := &jellyfinRuntime{gpu: gpu}

	rt.Close()
	if !gpu.closed {
		t.Fatalf("gpu surface was not closed")
	}
}

func TestNewMediaSessionBackendFallsBackToNoopOffLinux(t *testing.T) {
	cfg := platform.Config{OS: "darwin"}
	backend := newMediaSessionBackend(cfg, &player.CommandQueue{})
	if backend == nil {
		t.Fatalf("got nil backend, want the no-op backend")
	}
	if err := backend.Close(); err != nil {
		t.Fatalf("no-op backend Close() = %v, want nil", err)
	}
}
