// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// shim.go builds the JavaScript injected into the main web client's
// context at OnContextCreated (original_source/src/cef_app.cpp), giving
// the page a window.api.player facade and a window.NativeShell plugin
// the Jellyfin web client already knows how to drive, backed by the
// window.jmpNative functions the cgo host glue attaches to V8.
package webengine

import (
	"fmt"
	"strings"
)

// nativeShimSource is the body of the injected script. Each
// window.jmpNative.<fn> call is forwarded synchronously to the browser
// process as a CefProcessMessage (see IPCMessage); nothing here runs
// native code directly. Position/duration/state updates arrive the
// other way, as script that playerui.go evaluates in the page through
// Engine.ExecuteJavaScript.
const nativeShimSource = `(function () {
  if (window.api && window.api.player) { return; }

  const native = window.jmpNative;
  window.api = window.api || {};
  window.api.player = {
    load(url, startPositionTicks, audioIndex, subtitleIndex) {
      native.playerLoad(url, Math.round((startPositionTicks || 0) / 10000));
    },
    stop() { native.playerStop(); },
    play() { native.playerPlay(); },
    pause() { native.playerPause(); },
    seekTo(ms) { native.playerSeek(Math.round(ms)); },
    setVolume(percent) { native.playerSetVolume(Math.round(percent)); },
    setMuted(muted) { native.playerSetMuted(!!muted); },
    setPlaybackRate(rateX1000) { native.playerSetSpeed(Math.round(rateX1000)); },
    setSubtitleStream(index) { native.playerSetSubtitleStream(index); },
    setSubtitleDelay(ms) { native.playerSetSubtitleDelay(ms); },
    setAudioStream(index) { native.playerSetAudioStream(index); },
    getPosition(cb) { cb(window.api.player._lastPositionMs || 0); },
    _lastPositionMs: 0,
    // positionUpdate/updateDuration are called directly from the browser
    // process (package webengine's playerui.go), not through _signal:
    // they fire every frame and a dynamic lookup would be wasted work.
    positionUpdate(ms) {
      window.api.player._lastPositionMs = ms;
      window.dispatchEvent(new CustomEvent('jmp-position', { detail: ms }));
    },
    updateDuration(ms) {
      window.dispatchEvent(new CustomEvent('jmp-duration', { detail: ms }));
    },
    // onPlaying/onPaused/onEnded/onCanceled/onError/onBufferedRangesChanged
    // arrive through _signal so playerui.go's templates stay a single
    // notifyDispatch call regardless of argument count.
    onPlaying() { window.dispatchEvent(new CustomEvent('jmp-playing')); },
    onPaused() { window.dispatchEvent(new CustomEvent('jmp-paused')); },
    onEnded() { window.dispatchEvent(new CustomEvent('jmp-ended')); },
    onCanceled() { window.dispatchEvent(new CustomEvent('jmp-canceled')); },
    onError(message) { window.dispatchEvent(new CustomEvent('jmp-error', { detail: message })); },
    onBufferedRangesChanged(ranges) { window.dispatchEvent(new CustomEvent('jmp-buffered', { detail: ranges })); },
    _signal(name, ...args) {
      const handler = window.api.player[name];
      if (typeof handler === 'function') { handler(...args); }
    },
  };

  window.api.system = window.api.system || {
    openExternalUrl(url) { native.loadServer(url); },
    exit() { native.setFullscreen(false); },
  };

  window.NativeShell = window.NativeShell || {};
  window.NativeShell.AppHost = {
    getDefaultLayout() { return 'tv'; },
    supports(feature) { return ['fullscreen', 'exit', 'remotecontrol'].includes(feature); },
    exit() { window.api.system.exit(); },
  };

  window.saveServerUrl = (url) => native.saveServerUrl(url);
  window.setFullscreen = (on) => native.setFullscreen(!!on);
})();`

// overlayShimSource is injected into the overlay engine instead: the
// settings/server-picker surface only needs saveServerUrl and
// setFullscreen, never the full player facade (spec section 4.H: the
// overlay and main client serve distinct embedded resource sets).
const overlayShimSource = `(function () {
  const native = window.jmpNative;
  window.saveServerUrl = (url) => native.saveServerUrl(url);
  window.setFullscreen = (on) => native.setFullscreen(!!on);
  window.loadServer = (url) => native.loadServer(url);
})();`

// InjectedScript returns the JS shim appropriate for role, run once at
// OnContextCreated before the page's own scripts execute.
func InjectedScript(role Role) string {
	if role == RoleOverlay {
		return overlayShimSource
	}
	return nativeShimSource
}

// notifyDispatch returns the JS statement that forwards a browser-process
// notification into the page's window.api.player signal handler, the
// mirror image of cef_app.cpp's inline "call the named signal with these
// args" helper. payloadJS must already be a valid JS expression (a
// string literal or number).
func notifyDispatch(signal string, payloadJS string) string {
	return fmt.Sprintf("window.api && window.api.player && window.api.player._signal(%q, %s);", signal, payloadJS)
}

// jsStringLiteral quotes s as a JS double-quoted string literal,
// escaping the characters that would otherwise break out of it.
func jsStringLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
