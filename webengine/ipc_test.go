// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package webengine

import (
	"errors"
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/player"
)

type fakeSettings struct {
	lastURL string
	err     error
}

func (f *fakeSettings) SetServerURL(url string) error {
	f.lastURL = url
	return f.err
}

func drainOne(t *testing.T, q *player.CommandQueue) player.Command {
	t.Helper()
	cmds := q.Drain()
	if len(cmds) != 1 {
		t.Fatalf("want exactly 1 queued command, got %d", len(cmds))
	}
	return cmds[0]
}

func TestIPCRouterTransportCommands(t *testing.T) {
	q := &player.CommandQueue{}
	r := NewIPCRouter(q, nil)

	cases := []struct {
		msg  IPCMessage
		kind player.CommandKind
	}{
		{IPCMessage{Function: FnPlayerLoad, String0: "http://x/item", Int0: 500}, player.CmdLoad},
		{IPCMessage{Function: FnPlayerStop}, player.CmdStop},
		{IPCMessage{Function: FnPlayerPlay}, player.CmdPlay},
		{IPCMessage{Function: FnPlayerPause}, player.CmdPause},
		{IPCMessage{Function: FnPlayerSeek, Int0: 1500}, player.CmdSeek},
		{IPCMessage{Function: FnPlayerSetVolume, Int0: 80}, player.CmdVolume},
		{IPCMessage{Function: FnPlayerSetMuted, Bool0: true}, player.CmdMute},
		{IPCMessage{Function: FnPlayerSetSpeed, Int0: 1500}, player.CmdSpeed},
		{IPCMessage{Function: FnPlayerSubtitle, Int0: 2}, player.CmdSubtitle},
		{IPCMessage{Function: FnPlayerAudio, Int0: 1}, player.CmdAudio},
		{IPCMessage{Function: FnPlayerAudioDelay, Double0: 0.25}, player.CmdAudioDelay},
		{IPCMessage{Function: FnSetFullscreen, Bool0: true}, player.CmdSetFullscreen},
	}

	for _, c := range cases {
		if err := r.Route(c.msg); err != nil {
			t.Fatalf("Route(%v) error: %v", c.msg.Function, err)
		}
		got := drainOne(t, q)
		if got.Kind != c.kind {
			t.Errorf("Route(%v): Kind = %v, want %v", c.msg.Function, got.Kind, c.kind)
		}
	}
}

func TestIPCRouterSpeedConvertsFixedPoint(t *testing.T) {
	q := &player.CommandQueue{}
	r := NewIPCRouter(q, nil)

	if err := r.Route(IPCMessage{Function: FnPlayerSetSpeed, Int0: 1500}); err != nil {
		t.Fatal(err)
	}
	got := drainOne(t, q)
	if got.DoubleArg != 1.5 {
		t.Fatalf("DoubleArg = %v, want 1.5", got.DoubleArg)
	}
}

func TestIPCRouterNotifyKinds(t *testing.T) {
	q := &player.CommandQueue{}
	r := NewIPCRouter(q, nil)

	notifyCases := []struct {
		msg     IPCMessage
		wantURL string
	}{
		{IPCMessage{Function: FnNotifyMetadata, String0: `{"Name":"x"}`}, "media_metadata"},
		{IPCMessage{Function: FnNotifyPosition, Int0: 2000}, "media_position"},
		{IPCMessage{Function: FnNotifySeek, Int0: 9000}, "media_seeked"},
		{IPCMessage{Function: FnNotifyPlaybackState, String0: "playing"}, "media_state"},
		{IPCMessage{Function: FnNotifyArtwork, String0: "data:image/png;base64,x"}, "media_artwork"},
		{IPCMessage{Function: FnNotifyRateChange, Double0: 1.0}, "media_notify_rate"},
	}

	for _, c := range notifyCases {
		if err := r.Route(c.msg); err != nil {
			t.Fatal(err)
		}
		got := drainOne(t, q)
		if got.Kind != player.CmdNotify {
			t.Errorf("%v: Kind = %v, want CmdNotify", c.msg.Function, got.Kind)
		}
		if got.URL != c.wantURL {
			t.Errorf("%v: URL = %q, want %q", c.msg.Function, got.URL, c.wantURL)
		}
	}
}

func TestIPCRouterNotifyQueueChangeEncodesBitflags(t *testing.T) {
	q := &player.CommandQueue{}
	r := NewIPCRouter(q, nil)

	if err := r.Route(IPCMessage{Function: FnNotifyQueueChange, Bool0: true, Bool1: false}); err != nil {
		t.Fatal(err)
	}
	got := drainOne(t, q)
	if got.URL != "media_queue" || got.IntArg != 1 {
		t.Fatalf("got %+v, want URL=media_queue IntArg=1 (canNext only)", got)
	}

	if err := r.Route(IPCMessage{Function: FnNotifyQueueChange, Bool0: true, Bool1: true}); err != nil {
		t.Fatal(err)
	}
	got = drainOne(t, q)
	if got.IntArg != 3 {
		t.Fatalf("IntArg = %d, want 3 (canNext|canPrev)", got.IntArg)
	}
}

func TestIPCRouterSaveServerURLPersistsAndEnqueues(t *testing.T) {
	q := &player.CommandQueue{}
	settings := &fakeSettings{}
	r := NewIPCRouter(q, settings)

	if err := r.Route(IPCMessage{Function: FnSaveServerURL, String0: "https://jf.example.com"}); err != nil {
		t.Fatal(err)
	}
	if settings.lastURL != "https://jf.example.com" {
		t.Fatalf("settings.lastURL = %q", settings.lastURL)
	}
	got := drainOne(t, q)
	if got.Kind != player.CmdSaveServerURL || got.URL != "https://jf.example.com" {
		t.Fatalf("got %+v", got)
	}
}

func TestIPCRouterSaveServerURLPropagatesSettingsError(t *testing.T) {
	q := &player.CommandQueue{}
	settings := &fakeSettings{err: errors.New("disk full")}
	r := NewIPCRouter(q, settings)

	if err := r.Route(IPCMessage{Function: FnSaveServerURL, String0: "https://jf.example.com"}); err == nil {
		t.Fatal("want error propagated from settings.SetServerURL")
	}
}

func TestIPCRouterLoadServerIsNotAPlayerCommand(t *testing.T) {
	q := &player.CommandQueue{}
	r := NewIPCRouter(q, nil)

	if err := r.Route(IPCMessage{Function: FnLoadServer, String0: "https://other.example.com"}); err != nil {
		t.Fatal(err)
	}
	if cmds := q.Drain(); len(cmds) != 0 {
		t.Fatalf("loadServer should not enqueue a player command, got %d", len(cmds))
	}
}

func TestIPCRouterUnknownFunctionErrors(t *testing.T) {
	q := &player.CommandQueue{}
	r := NewIPCRouter(q, nil)

	if err := r.Route(IPCMessage{Function: NativeFunction("bogus")}); err == nil {
		t.Fatal("want error for unknown native function")
	}
}
