// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package overlay implements the onboarding-overlay state machine from
// spec section 3: {Showing, Waiting, Fading, Hidden}, the fade timing
// constants, and the pure alpha(t) function from spec section 9.
package overlay

import "time"

// State is one of the four overlay lifecycle states.
type State int

const (
	Showing State = iota
	Waiting
	Fading
	Hidden
)

func (s State) String() string {
	switch s {
	case Showing:
		return "showing"
	case Waiting:
		return "waiting"
	case Fading:
		return "fading"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

const (
	// FadeDelay is the time from main-UI load start until the overlay
	// begins fading (spec section 3).
	FadeDelay = 1000 * time.Millisecond
	// FadeDuration is the linear alpha 1->0 ramp length.
	FadeDuration = 250 * time.Millisecond
)

// ClearShowing and ClearFaded are the window clear colours for the
// Showing/Waiting and Fading/Hidden states respectively (spec section 3).
var (
	ClearShowing = [4]float32{0x10 / 255.0, 0x10 / 255.0, 0x10 / 255.0, 1}
	ClearFaded   = [4]float32{0, 0, 0, 1}
)

// Machine tracks overlay lifecycle and the fade animation clock. It does
// not own a timer: the frame loop calls Tick once per iteration with the
// current time, matching spec section 9's "no tween engine" design note.
type Machine struct {
	state     State
	fadeStart time.Time
	alpha     float64 // 1 while Showing/Waiting, ramps during Fading, 0 at Hidden
}

// New returns a Machine in Showing if no server URL is persisted, or
// Waiting otherwise (spec section 3).
func New(hasSavedServerURL bool) *Machine {
	m := &Machine{alpha: 1}
	if hasSavedServerURL {
		m.state = Waiting
	} else {
		m.state = Showing
	}
	return m
}

// State returns the current lifecycle state.
func (m *Machine) State() State { return m.state }

// Alpha returns the overlay's current blend alpha, in [0,1].
func (m *Machine) Alpha() float64 { return m.alpha }

// ReportServerURL transitions Showing -> Waiting when the overlay UI
// reports a server URL (spec section 3). A no-op in any other state.
func (m *Machine) ReportServerURL(now time.Time) {
	if m.state == Showing {
		m.state = Waiting
		m.fadeStart = now.Add(FadeDelay)
	}
}

// StartMainLoad records the moment the main UI began loading, the origin
// for the Waiting -> Fading transition timer. Call this once, when the
// main engine's LoadURL is issued (cold start with a saved server URL
// loads immediately, so this should be called right after New in that
// case; see frameloop for the call site).
func (m *Machine) StartMainLoad(now time.Time) {
	if m.state == Waiting && m.fadeStart.IsZero() {
		m.fadeStart = now.Add(FadeDelay)
	}
}

// Transition is returned by Tick to tell the frame loop to pop the
// overlay input layer and push the main UI layer (spec section 4.G step 5).
type Transition struct {
	EnteredFading bool // pop overlay layer, push main UI layer
	EnteredHidden bool // overlay compositor becomes invisible
}

// Tick advances the state machine for the given wall-clock time and
// returns any layer-focus transition that just occurred. alpha(t) is the
// pure function from spec section 9:
//
//	alpha(t) = clamp01(1 - (t - fade_start)/FADE_DURATION)
func (m *Machine) Tick(now time.Time) Transition {
	var tr Transition
	switch m.state {
	case Showing:
		m.alpha = 1
	case Waiting:
		m.alpha = 1
		if !m.fadeStart.IsZero() && !now.Before(m.fadeStart) {
			m.state = Fading
			tr.EnteredFading = true
		}
	case Fading:
		elapsed := now.Sub(m.fadeStart)
		a := 1 - float64(elapsed)/float64(FadeDuration)
		m.alpha = clamp01(a)
		if elapsed >= FadeDuration {
			m.state = Hidden
			m.alpha = 0
			tr.EnteredHidden = true
		}
	case Hidden:
		m.alpha = 0
	}
	return tr
}

// ClearColor returns the window clear colour appropriate to the current
// state (spec section 3: #101010 during Showing/Waiting, black once
// fading begins).
func (m *Machine) ClearColor() [4]float32 {
	if m.state == Showing || m.state == Waiting {
		return ClearShowing
	}
	return ClearFaded
}

// IsOverlayFocused reports whether the overlay is the focused input layer
// (true during Showing and Waiting; focus transfers to the main UI the
// instant Fading begins).
func (m *Machine) IsOverlayFocused() bool {
	return m.state == Showing || m.state == Waiting
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
