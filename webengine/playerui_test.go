// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package webengine

import (
	"strings"
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/player"
)

type fakeExecutor struct {
	calls []string
}

func (f *fakeExecutor) ExecuteJavaScript(code string) {
	f.calls = append(f.calls, code)
}

func lastCall(t *testing.T, f *fakeExecutor) string {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatal("no JavaScript executed")
	}
	return f.calls[len(f.calls)-1]
}

func TestPlayerUIPositionAndDuration(t *testing.T) {
	exec := &fakeExecutor{}
	ui := &PlayerUI{engine: exec}

	ui.OnPosition(1234.7)
	if got := lastCall(t, exec); !strings.Contains(got, "positionUpdate(1235)") {
		t.Fatalf("OnPosition produced %q", got)
	}

	ui.OnDuration(60000)
	if got := lastCall(t, exec); !strings.Contains(got, "updateDuration(60000)") {
		t.Fatalf("OnDuration produced %q", got)
	}
}

func TestPlayerUISignalEvents(t *testing.T) {
	exec := &fakeExecutor{}
	ui := &PlayerUI{engine: exec}

	ui.OnPlaying()
	if got := lastCall(t, exec); !strings.Contains(got, `"onPlaying"`) {
		t.Fatalf("OnPlaying produced %q", got)
	}

	ui.OnError("decode failed")
	if got := lastCall(t, exec); !strings.Contains(got, `"onError"`) || !strings.Contains(got, `"decode failed"`) {
		t.Fatalf("OnError produced %q", got)
	}
}

func TestPlayerUIErrorMessageEscaping(t *testing.T) {
	exec := &fakeExecutor{}
	ui := &PlayerUI{engine: exec}

	ui.OnError(`bad "quote" and \backslash`)
	got := lastCall(t, exec)
	if !strings.Contains(got, `\"quote\"`) || !strings.Contains(got, `\\backslash`) {
		t.Fatalf("escaping failed: %q", got)
	}
}

func TestPlayerUIBufferedRanges(t *testing.T) {
	exec := &fakeExecutor{}
	ui := &PlayerUI{engine: exec}

	ui.OnBufferedRanges([]player.BufferedRange{{StartUs: 0, EndUs: 5000000}})
	got := lastCall(t, exec)
	if !strings.Contains(got, `"onBufferedRangesChanged"`) {
		t.Fatalf("OnBufferedRanges produced %q", got)
	}
}
