// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package player

import "sync"

// EventKind identifies one of the engine-observed state changes from spec
// section 4.E's event table.
type EventKind int

const (
	EvPosition EventKind = iota
	EvDuration
	EvPauseChanged
	EvSeekingChanged
	EvBuffering
	EvFileLoaded // first frame of a newly loaded file is playing
	EvFinished   // EOF / natural end
	EvCanceled   // user-initiated stop
	EvError
	EvBufferedRanges
)

// BufferedRange is one contiguous demuxer-cached interval, in
// microseconds, from the cache-state property (spec section 4.E).
type BufferedRange struct {
	StartUs int64
	EndUs   int64
}

// Event is a single engine-observed change, pushed onto an EventQueue by
// the Engine implementation's callback thread and drained on the main
// thread (spec section 9, "Cyclic object graphs": callbacks push events
// rather than invoking methods directly, removing back-references from
// the engine to the bridge).
type Event struct {
	Kind EventKind

	PositionMs float64
	DurationMs float64
	Paused     bool
	Seeking    bool
	Buffering  bool
	Err        string
	Ranges     []BufferedRange
}

// EventQueue is the engine-to-bridge counterpart of CommandQueue.
type EventQueue struct {
	mu      sync.Mutex
	pending []Event
}

// Push appends ev. Called from the engine's own callback/redraw thread.
func (q *EventQueue) Push(ev Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// Drain returns and clears all events pushed so far, in push order.
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	drained := q.pending
	q.pending = nil
	return drained
}
