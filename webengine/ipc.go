// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// ipc.go is the browser-process side of the renderer/browser IPC
// boundary spec section 4.H describes: the renderer attaches named
// native functions to window.jmpNative; each marshals its JS arguments
// into a CefProcessMessage; the browser process receives it here and
// forwards to the player bridge or the settings layer. The named
// message set and field layout are grounded directly on
// original_source/src/cef/cef_client.cpp's OnProcessMessageReceived and
// cef_app.cpp's NativeV8Handler::Execute.
package webengine

import (
	"fmt"
	"log/slog"

	"github.com/jellyfin/jellyfin-desktop-go/player"
)

// NativeFunction names one of the functions attached to window.jmpNative
// in the renderer process (spec section 4.H).
type NativeFunction string

const (
	FnPlayerLoad         NativeFunction = "playerLoad"
	FnPlayerStop         NativeFunction = "playerStop"
	FnPlayerPause        NativeFunction = "playerPause"
	FnPlayerPlay         NativeFunction = "playerPlay"
	FnPlayerSeek         NativeFunction = "playerSeek"
	FnPlayerSetVolume    NativeFunction = "playerSetVolume"
	FnPlayerSetMuted     NativeFunction = "playerSetMuted"
	FnPlayerSetSpeed     NativeFunction = "playerSetSpeed"
	FnPlayerSubtitle     NativeFunction = "playerSetSubtitleStream"
	FnPlayerAudio        NativeFunction = "playerSetAudioStream"
	FnPlayerAudioDelay   NativeFunction = "playerSetSubtitleDelay"
	FnSaveServerURL      NativeFunction = "saveServerUrl"
	FnSetFullscreen      NativeFunction = "setFullscreen"
	FnLoadServer         NativeFunction = "loadServer"
	FnNotifyMetadata     NativeFunction = "notifyMetadata"
	FnNotifyPosition     NativeFunction = "notifyPosition"
	FnNotifySeek         NativeFunction = "notifySeek"
	FnNotifyPlaybackState NativeFunction = "notifyPlaybackState"
	FnNotifyArtwork      NativeFunction = "notifyArtwork"
	FnNotifyQueueChange  NativeFunction = "notifyQueueChange"
	FnNotifyRateChange   NativeFunction = "notifyRateChange"
)

// AllNativeFunctions is the fixed set installed on window.jmpNative at
// OnContextCreated, the Go-side source of truth for the JS shim
// generator in shim.go.
var AllNativeFunctions = []NativeFunction{
	FnPlayerLoad, FnPlayerStop, FnPlayerPause, FnPlayerPlay, FnPlayerSeek,
	FnPlayerSetVolume, FnPlayerSetMuted, FnPlayerSetSpeed,
	FnPlayerSubtitle, FnPlayerAudio, FnPlayerAudioDelay,
	FnSaveServerURL, FnSetFullscreen, FnLoadServer,
	FnNotifyMetadata, FnNotifyPosition, FnNotifySeek, FnNotifyPlaybackState,
	FnNotifyArtwork, FnNotifyQueueChange, FnNotifyRateChange,
}

// IPCMessage is the browser-process-side decode of one CefProcessMessage
// sent from NativeV8Handler::Execute: a function name plus the V8
// arguments already unwrapped to Go values in CEF argument order.
type IPCMessage struct {
	Function NativeFunction
	String0  string
	Int0     int64
	Double0  float64
	Bool0    bool
	Bool1    bool
}

// SettingsWriter is the subset of the settings layer IPC can reach
// (spec section 4.H: "forward to the player bridge or the settings
// layer").
type SettingsWriter interface {
	SetServerURL(url string) error
}

// IPCRouter decodes a renderer IPCMessage into a player.Command (or a
// settings write) and enqueues it, the Go-side equivalent of
// cef_client.cpp's on_player_msg_ callback.
type IPCRouter struct {
	commands *player.CommandQueue
	settings SettingsWriter
	log      *slog.Logger
}

// NewIPCRouter creates a router enqueuing onto commands and persisting
// server URLs via settings.
func NewIPCRouter(commands *player.CommandQueue, settings SettingsWriter) *IPCRouter {
	return &IPCRouter{commands: commands, settings: settings, log: slog.With("component", "webengine.ipc")}
}

// Route decodes msg and either enqueues a player.Command or performs the
// settings write directly, matching cef_client.cpp's dispatch table one
// function name at a time.
func (r *IPCRouter) Route(msg IPCMessage) error {
	switch msg.Function {
	case FnPlayerLoad:
		// playerLoad carries only url and start position: no initial track
		// is forced and no metadata is attached.
		r.commands.Enqueue(player.Command{Kind: player.CmdLoad, URL: msg.String0, IntArg: msg.Int0, AudioIndex: -1, SubtitleIndex: -1})
	case FnPlayerStop:
		r.commands.Enqueue(player.Command{Kind: player.CmdStop})
	case FnPlayerPause:
		r.commands.Enqueue(player.Command{Kind: player.CmdPause})
	case FnPlayerPlay:
		r.commands.Enqueue(player.Command{Kind: player.CmdPlay})
	case FnPlayerSeek:
		r.commands.Enqueue(player.Command{Kind: player.CmdSeek, IntArg: msg.Int0})
	case FnPlayerSetVolume:
		r.commands.Enqueue(player.Command{Kind: player.CmdVolume, IntArg: msg.Int0})
	case FnPlayerSetMuted:
		r.commands.Enqueue(player.Command{Kind: player.CmdMute, BoolArg: msg.Bool0})
	case FnPlayerSetSpeed:
		// the renderer sends rate*1000 as an int, matching
		// mpv_player_vk.cpp's setSpeed(double) fixed-point convention.
		r.commands.Enqueue(player.Command{Kind: player.CmdSpeed, DoubleArg: float64(msg.Int0) / 1000})
	case FnPlayerSubtitle:
		r.commands.Enqueue(player.Command{Kind: player.CmdSubtitle, IntArg: msg.Int0})
	case FnPlayerAudio:
		r.commands.Enqueue(player.Command{Kind: player.CmdAudio, IntArg: msg.Int0})
	case FnPlayerAudioDelay:
		r.commands.Enqueue(player.Command{Kind: player.CmdAudioDelay, DoubleArg: msg.Double0})
	case FnSaveServerURL:
		r.commands.Enqueue(player.Command{Kind: player.CmdSaveServerURL, URL: msg.String0})
		if r.settings != nil {
			if err := r.settings.SetServerURL(msg.String0); err != nil {
				r.log.Warn("persist server url failed", "err", err)
				return err
			}
		}
	case FnSetFullscreen:
		r.commands.Enqueue(player.Command{Kind: player.CmdSetFullscreen, BoolArg: msg.Bool0})
	case FnLoadServer:
		// accepted and dropped: nothing is enqueued, and the only caller
		// (cef.go's process-message callback) does not forward it to the
		// overlay state machine. The overlay learns a server through
		// saveServerUrl (CmdSaveServerURL).
	case FnNotifyMetadata:
		r.commands.Enqueue(player.Command{Kind: player.CmdNotify, URL: "media_metadata", MetadataJSON: msg.String0})
	case FnNotifyPosition:
		r.commands.Enqueue(player.Command{Kind: player.CmdNotify, URL: "media_position", IntArg: msg.Int0})
	case FnNotifySeek:
		r.commands.Enqueue(player.Command{Kind: player.CmdNotify, URL: "media_seeked", IntArg: msg.Int0})
	case FnNotifyPlaybackState:
		r.commands.Enqueue(player.Command{Kind: player.CmdNotify, URL: "media_state", MetadataJSON: msg.String0})
	case FnNotifyArtwork:
		r.commands.Enqueue(player.Command{Kind: player.CmdNotify, URL: "media_artwork", MetadataJSON: msg.String0})
	case FnNotifyQueueChange:
		flags := int64(0)
		if msg.Bool0 {
			flags |= 1
		}
		if msg.Bool1 {
			flags |= 2
		}
		r.commands.Enqueue(player.Command{Kind: player.CmdNotify, URL: "media_queue", IntArg: flags})
	case FnNotifyRateChange:
		r.commands.Enqueue(player.Command{Kind: player.CmdNotify, URL: "media_notify_rate", DoubleArg: msg.Double0})
	default:
		return fmt.Errorf("webengine: unknown IPC function %q", msg.Function)
	}
	return nil
}
