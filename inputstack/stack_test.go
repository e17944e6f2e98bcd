// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package inputstack

import "testing"

type recordingLayer struct {
	name      string
	consume   bool
	received  []Event
}

func (r *recordingLayer) HandleInput(ev Event) bool {
	r.received = append(r.received, ev)
	return r.consume
}

// TestRouteStopsAtFirstConsumer checks testable property 10: the top
// layer is consulted first; an event is forwarded to the next layer iff
// the current layer's handler returns false.
func TestRouteStopsAtFirstConsumer(t *testing.T) {
	var s Stack
	bottom := &recordingLayer{name: "bottom", consume: true}
	top := &recordingLayer{name: "top", consume: false}
	s.Push(bottom)
	s.Push(top)

	consumed := s.Route(Event{Kind: PointerDown})
	if !consumed {
		t.Fatal("expected event to be consumed")
	}
	if len(top.received) != 1 {
		t.Fatalf("top received %d events, want 1", len(top.received))
	}
	if len(bottom.received) != 1 {
		t.Fatalf("bottom received %d events, want 1 (top forwarded since it returned false)", len(bottom.received))
	}
}

func TestRouteStopsWhenTopConsumes(t *testing.T) {
	var s Stack
	bottom := &recordingLayer{name: "bottom", consume: true}
	top := &recordingLayer{name: "top", consume: true}
	s.Push(bottom)
	s.Push(top)

	s.Route(Event{Kind: PointerDown})
	if len(bottom.received) != 0 {
		t.Fatalf("bottom should not have been reached, got %d events", len(bottom.received))
	}
}

func TestReplaceSwapsTopLayer(t *testing.T) {
	var s Stack
	overlay := &recordingLayer{name: "overlay", consume: true}
	main := &recordingLayer{name: "main", consume: true}
	s.Push(overlay)

	s.Replace(overlay, main)
	s.Route(Event{Kind: PointerDown})
	if len(main.received) != 1 {
		t.Fatalf("main received %d events, want 1", len(main.received))
	}
	if len(overlay.received) != 0 {
		t.Fatalf("overlay should have been removed, got %d events", len(overlay.received))
	}
}
