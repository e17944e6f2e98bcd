// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package wayland

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// displayObjectID is wl_display's fixed, well-known object id.
const displayObjectID ObjectID = 1

// wl_display event opcodes.
const (
	displayEventError     Opcode = 0
	displayEventDeleteID  Opcode = 1
)

// wl_display request opcodes.
const (
	displaySync      Opcode = 0
	displayGetRegistry Opcode = 1
)

// dispatcher is implemented by every bound protocol object that wants to
// receive events targeted at its id.
type dispatcher interface {
	dispatch(msg *Message) error
}

// Display owns the Unix domain socket connection to the compositor and
// routes incoming events to the object that owns each id.
type Display struct {
	conn net.Conn

	nextID atomic.Uint32

	mu      sync.Mutex
	objects map[ObjectID]dispatcher

	log *slog.Logger

	readErr atomic.Value // error
}

// Connect dials the Wayland socket named by $WAYLAND_DISPLAY (default
// "wayland-0") under $XDG_RUNTIME_DIR, and starts the background event
// dispatch loop.
func Connect() (*Display, error) {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return nil, fmt.Errorf("wayland: XDG_RUNTIME_DIR not set")
	}
	name := os.Getenv("WAYLAND_DISPLAY")
	if name == "" {
		name = "wayland-0"
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(runtimeDir, name)
	}

	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("wayland: dial %s: %w", path, err)
	}

	d := &Display{
		conn:    conn,
		objects: make(map[ObjectID]dispatcher),
		log:     slog.With("component", "wayland"),
	}
	d.nextID.Store(uint32(displayObjectID))
	go d.readLoop()
	return d, nil
}

// AllocID reserves the next client-side object id.
func (d *Display) AllocID() ObjectID {
	return ObjectID(d.nextID.Add(1))
}

// register associates an object id with the dispatcher that should
// receive its events.
func (d *Display) register(id ObjectID, disp dispatcher) {
	d.mu.Lock()
	d.objects[id] = disp
	d.mu.Unlock()
}

// unregister drops an id, called once the server confirms deletion via
// wl_display.delete_id or the client destroys the object locally.
func (d *Display) unregister(id ObjectID) {
	d.mu.Lock()
	delete(d.objects, id)
	d.mu.Unlock()
}

// SendMessage writes a request to the wire.
func (d *Display) SendMessage(msg *Message) error {
	_, err := d.conn.Write(msg.encode())
	return err
}

// GetRegistry binds a new Registry object.
func (d *Display) GetRegistry() (*Registry, error) {
	id := d.AllocID()
	b := NewMessageBuilder()
	b.PutNewID(id)
	if err := d.SendMessage(b.BuildMessage(displayObjectID, displayGetRegistry)); err != nil {
		return nil, err
	}
	r := newRegistry(d, id)
	d.register(id, r)
	return r, nil
}

// Sync performs a round trip: the returned channel receives once the
// server has processed every request sent before this call.
func (d *Display) Sync() <-chan struct{} {
	id := d.AllocID()
	done := make(chan struct{}, 1)
	cb := &syncCallback{done: done}
	d.register(id, cb)

	b := NewMessageBuilder()
	b.PutNewID(id)
	if err := d.SendMessage(b.BuildMessage(displayObjectID, displaySync)); err != nil {
		close(done)
	}
	return done
}

// Err returns the error that stopped the read loop, if any.
func (d *Display) Err() error {
	v := d.readErr.Load()
	if v == nil {
		return nil
	}
	return v.(error)
}

// Close closes the underlying socket.
func (d *Display) Close() error { return d.conn.Close() }

func (d *Display) readLoop() {
	header := make([]byte, headerSize)
	for {
		if _, err := readFull(d.conn, header); err != nil {
			d.readErr.Store(err)
			return
		}
		sender, opcode, size := decodeHeader(header)
		args := make([]byte, size-headerSize)
		if len(args) > 0 {
			if _, err := readFull(d.conn, args); err != nil {
				d.readErr.Store(err)
				return
			}
		}
		msg := &Message{Sender: sender, Opcode: opcode, Args: args}

		if sender == displayObjectID {
			d.handleDisplayEvent(msg)
			continue
		}

		d.mu.Lock()
		disp := d.objects[sender]
		d.mu.Unlock()
		if disp == nil {
			continue
		}
		if err := disp.dispatch(msg); err != nil {
			d.log.Warn("dispatch error", "sender", sender, "err", err)
		}
	}
}

func (d *Display) handleDisplayEvent(msg *Message) {
	switch msg.Opcode {
	case displayEventError:
		dec := NewDecoder(msg.Args)
		obj, _ := dec.Object()
		code, _ := dec.Uint32()
		reason, _ := dec.String()
		d.log.Error("wl_display error", "object", obj, "code", code, "reason", reason)
	case displayEventDeleteID:
		dec := NewDecoder(msg.Args)
		id, err := dec.Uint32()
		if err == nil {
			d.unregister(ObjectID(id))
		}
	}
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// callbackEventDone is wl_callback's single event opcode.
const callbackEventDone Opcode = 0

// syncCallback is the minimal wl_callback used by Display.Sync.
type syncCallback struct {
	done chan struct{}
}

func (c *syncCallback) dispatch(msg *Message) error {
	if msg.Opcode == callbackEventDone {
		select {
		case c.done <- struct{}{}:
		default:
		}
		close(c.done)
	}
	return nil
}
