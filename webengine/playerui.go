// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// playerui.go adapts an *Engine into player.UI, the callback surface
// package player's Bridge drives in response to filtered engine events
// (spec section 4.E). Each method evaluates a small fixed JavaScript
// template against window.api.player, mirroring cef_app.cpp's
// window.api.player.positionUpdate(ms)/updateDuration(ms) calls and the
// generic "call the named signal" dispatch the rest of that file's
// mpvVideoPlayer class uses for play/pause/finish/cancel/error events.
package webengine

import (
	"encoding/json"
	"strconv"

	"github.com/jellyfin/jellyfin-desktop-go/player"
)

// jsExecutor is the slice of *Engine this file needs, split out as an
// interface so PlayerUI's dispatch logic is testable without a real CEF
// browser instance.
type jsExecutor interface {
	ExecuteJavaScript(code string)
}

// PlayerUI wraps the main-role Engine as a player.UI implementation.
type PlayerUI struct {
	engine jsExecutor
}

// NewPlayerUI returns a player.UI backed by engine, which must be the
// main client's (RoleMain) Engine.
func NewPlayerUI(engine *Engine) *PlayerUI {
	return &PlayerUI{engine: engine}
}

var _ player.UI = (*PlayerUI)(nil)

func (p *PlayerUI) OnPosition(ms float64) {
	p.engine.ExecuteJavaScript("window.api.player.positionUpdate(" + formatMs(ms) + ");")
}

func (p *PlayerUI) OnDuration(ms float64) {
	p.engine.ExecuteJavaScript("window.api.player.updateDuration(" + formatMs(ms) + ");")
}

func (p *PlayerUI) OnPlaying() {
	p.engine.ExecuteJavaScript(notifyDispatch("onPlaying", "null"))
}

func (p *PlayerUI) OnPaused() {
	p.engine.ExecuteJavaScript(notifyDispatch("onPaused", "null"))
}

func (p *PlayerUI) OnFinished() {
	p.engine.ExecuteJavaScript(notifyDispatch("onEnded", "null"))
}

func (p *PlayerUI) OnCanceled() {
	p.engine.ExecuteJavaScript(notifyDispatch("onCanceled", "null"))
}

func (p *PlayerUI) OnError(message string) {
	p.engine.ExecuteJavaScript(notifyDispatch("onError", jsStringLiteral(message)))
}

func (p *PlayerUI) OnBufferedRanges(ranges []player.BufferedRange) {
	encoded, err := json.Marshal(ranges)
	if err != nil {
		return
	}
	p.engine.ExecuteJavaScript(notifyDispatch("onBufferedRangesChanged", string(encoded)))
}

func formatMs(ms float64) string {
	return strconv.FormatFloat(ms, 'f', 0, 64)
}
