// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

// Package wayland is a pure-Go Wayland wire-protocol client: just enough
// of wl_display/wl_registry/wl_compositor/wl_subcompositor/wl_surface/
// wl_subsurface (plus a color-management surface extension) for package
// videosurface to host the video engine's subsurface, without linking
// libwayland-client via cgo. Grounded on the pack's
// gogpu/internal/platform/wayland compositor protocol encoder
// (wl_compositor/wl_surface opcodes, MessageBuilder/Decoder shape,
// per-object dispatch), extended here with the connection, registry and
// subsurface/color-management pieces that single file didn't include.
package wayland

import "encoding/binary"

// ObjectID identifies a wire protocol object; 0 is never a valid object.
type ObjectID uint32

// Opcode is a per-interface request or event index.
type Opcode uint16

// Message is one decoded wire message: the object it targets (requests)
// or originates from (events), its opcode, and its raw argument words.
type Message struct {
	Sender ObjectID
	Opcode Opcode
	Args   []byte
}

// header is the 8-byte wire message header: object id, then opcode in
// the low 16 bits and total message size (header included) in the high
// 16 bits of the second word.
const headerSize = 8

func decodeHeader(b []byte) (sender ObjectID, opcode Opcode, size int) {
	sender = ObjectID(binary.LittleEndian.Uint32(b[0:4]))
	second := binary.LittleEndian.Uint32(b[4:8])
	opcode = Opcode(second & 0xffff)
	size = int(second >> 16)
	return
}

// MessageBuilder accumulates request arguments in wire order.
type MessageBuilder struct {
	buf []byte
	fds []int
}

// NewMessageBuilder returns an empty builder.
func NewMessageBuilder() *MessageBuilder { return &MessageBuilder{} }

func (b *MessageBuilder) putUint32(v uint32) {
	var w [4]byte
	binary.LittleEndian.PutUint32(w[:], v)
	b.buf = append(b.buf, w[:]...)
}

// PutInt32 appends a signed 32-bit argument.
func (b *MessageBuilder) PutInt32(v int32) { b.putUint32(uint32(v)) }

// PutUint32 appends an unsigned 32-bit argument.
func (b *MessageBuilder) PutUint32(v uint32) { b.putUint32(v) }

// PutFixed appends a Wayland fixed-point (24.8) argument.
func (b *MessageBuilder) PutFixed(v float64) { b.putUint32(uint32(int32(v * 256))) }

// PutObject appends an existing object id argument (0 means "null").
func (b *MessageBuilder) PutObject(id ObjectID) { b.putUint32(uint32(id)) }

// PutNewID appends a new_id argument: the client-allocated id for an
// object the server is about to create on this request.
func (b *MessageBuilder) PutNewID(id ObjectID) { b.putUint32(uint32(id)) }

// PutString appends a length-prefixed, NUL-terminated, 4-byte-padded
// string argument.
func (b *MessageBuilder) PutString(s string) {
	n := uint32(len(s) + 1)
	b.putUint32(n)
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, 0)
	for len(b.buf)%4 != 0 {
		b.buf = append(b.buf, 0)
	}
}

// PutFD queues a file descriptor to be sent as SCM_RIGHTS ancillary data
// alongside this message; FDs are not encoded inline in the byte stream.
func (b *MessageBuilder) PutFD(fd int) { b.fds = append(b.fds, fd) }

// BuildMessage frames the accumulated arguments as a full wire message
// targeting object id with the given opcode.
func (b *MessageBuilder) BuildMessage(id ObjectID, opcode Opcode) *Message {
	return &Message{Sender: id, Opcode: opcode, Args: b.buf}
}

// FDs returns the file descriptors queued for this builder's message.
func (b *MessageBuilder) FDs() []int { return b.fds }

// encode serializes msg into the wire byte stream (header + args).
func (msg *Message) encode() []byte {
	size := headerSize + len(msg.Args)
	out := make([]byte, size)
	binary.LittleEndian.PutUint32(out[0:4], uint32(msg.Sender))
	binary.LittleEndian.PutUint32(out[4:8], uint32(size)<<16|uint32(msg.Opcode))
	copy(out[headerSize:], msg.Args)
	return out
}

// Decoder reads arguments out of an event's Args in wire order.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps args for sequential decoding.
func NewDecoder(args []byte) *Decoder { return &Decoder{buf: args} }

func (d *Decoder) uint32() (uint32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, errShortMessage
	}
	v := binary.LittleEndian.Uint32(d.buf[d.pos : d.pos+4])
	d.pos += 4
	return v, nil
}

// Uint32 decodes an unsigned 32-bit argument.
func (d *Decoder) Uint32() (uint32, error) { return d.uint32() }

// Int32 decodes a signed 32-bit argument.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.uint32()
	return int32(v), err
}

// Object decodes an object-id argument.
func (d *Decoder) Object() (ObjectID, error) {
	v, err := d.uint32()
	return ObjectID(v), err
}

// String decodes a length-prefixed, NUL-terminated, padded string.
func (d *Decoder) String() (string, error) {
	n, err := d.uint32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	length := int(n) - 1 // exclude the trailing NUL
	if d.pos+length > len(d.buf) {
		return "", errShortMessage
	}
	s := string(d.buf[d.pos : d.pos+length])
	d.pos += length + 1
	for d.pos%4 != 0 {
		d.pos++
	}
	return s, nil
}

type wireError string

func (e wireError) Error() string { return string(e) }

const errShortMessage = wireError("wayland: short message")
