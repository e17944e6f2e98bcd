// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package menu implements the software-rendered native context menu from
// spec section 4.D: font discovery, on-demand glyph rasterization, and
// the pixel buffer the UI compositor later alpha-blends onto its output.
package menu

import (
	"log/slog"
)

// Layout constants grounded on original_source/src/ui/menu_overlay.cpp.
const (
	FontSize   = 14
	PadX       = 10
	PadY       = 6
	ItemHeight = 26
	MinWidth   = 120
)

// Item is one selectable menu entry.
type Item struct {
	CommandID int
	Label     string
	Enabled   bool
}

// Rasterizer renders text into an 8-bit alpha glyph bitmap; implemented
// by font.go on top of golang.org/x/image/font/sfnt.
type Rasterizer interface {
	// MeasureWidth returns the pixel width of label at FontSize.
	MeasureWidth(label string) int
	// DrawLabel renders label's glyphs into buf (a w*h*4 BGRA8 buffer,
	// row-major) with its baseline at (x, baselineY), using color c.
	DrawLabel(buf []byte, w, h int, x, baselineY int, label string, c [4]byte)
	Ascent() int
}

// Menu owns the native context menu state machine from spec section 3.
type Menu struct {
	open         bool
	x, y         int
	items        []Item
	hoverIndex   int
	ignoreNextUp bool
	pixels       []byte // BGRA8, width*height*4
	width        int
	height       int

	raster Rasterizer
	log    *slog.Logger
}

// New returns a closed Menu bound to the given glyph rasterizer. If
// raster is nil (no TTF font could be located, spec section 7) the menu
// is permanently disabled and Open is a no-op, matching "right-click
// falls through to engine's default (no-op)".
func New(raster Rasterizer) *Menu {
	return &Menu{raster: raster, log: slog.With("component", "menu")}
}

// Disabled reports whether the menu cannot be used because no font was found.
func (m *Menu) Disabled() bool { return m.raster == nil }

// Open positions and rasterizes the menu so the cursor at (cursorX,
// cursorY) lands inside it (origin offset by -PadX, -PadY per spec
// section 4.D), and marks it the topmost input layer.
func (m *Menu) Open(cursorX, cursorY int, items []Item) {
	if m.Disabled() {
		return
	}
	m.items = items
	m.x = cursorX - PadX
	m.y = cursorY - PadY
	m.hoverIndex = -1
	m.open = true
	m.ignoreNextUp = true
	m.render()
	m.log.Debug("opened", "x", m.x, "y", m.y, "items", len(items))
}

// IsOpen reports whether the menu is currently shown.
func (m *Menu) IsOpen() bool { return m.open }

// Position returns the menu's top-left window coordinate.
func (m *Menu) Position() (x, y int) { return m.x, m.y }

// PixelBuffer returns the current BGRA8 pixel buffer and its dimensions,
// for package compositor to alpha-composite (spec section 4.D: "The
// rasterised pixel buffer is composited by (C) — not by the menu itself").
func (m *Menu) PixelBuffer() (buf []byte, w, h int) { return m.pixels, m.width, m.height }

// HitTest returns the item index under window-coordinate (x, y) and
// whether that point falls inside the menu's bounds at all.
func (m *Menu) HitTest(x, y int) (itemIndex int, inside bool) {
	if !m.open {
		return -1, false
	}
	rx, ry := x-m.x, y-m.y
	if rx < 0 || ry < 0 || rx >= m.width || ry >= m.height {
		return -1, false
	}
	idx := ry / ItemHeight
	if idx < 0 || idx >= len(m.items) {
		return -1, false
	}
	return idx, true
}

// SetHover updates the hovered item and re-rasterizes if it changed.
func (m *Menu) SetHover(idx int) {
	if idx == m.hoverIndex {
		return
	}
	m.hoverIndex = idx
	m.render()
}

// SelectHovered returns the command id of the hovered item if it is
// enabled, clearing and closing the menu.
func (m *Menu) SelectHovered() (commandID int, ok bool) {
	if m.hoverIndex < 0 || m.hoverIndex >= len(m.items) {
		m.Close()
		return 0, false
	}
	item := m.items[m.hoverIndex]
	if !item.Enabled {
		m.Close()
		return 0, false
	}
	m.SelectMenuItem(item.CommandID)
	return item.CommandID, true
}

// SelectMenuItem closes the menu after a selection (spec section 3:
// closed "by selecting an item").
func (m *Menu) SelectMenuItem(commandID int) {
	m.close()
}

// CancelMenu closes the menu without a selection (ESC, click outside,
// loss of focus — spec section 3).
func (m *Menu) CancelMenu() { m.close() }

// Close is an alias for CancelMenu, kept for readability at call sites
// that aren't implementing the MenuCommandSink interface.
func (m *Menu) Close() { m.close() }

func (m *Menu) close() {
	if !m.open {
		return
	}
	m.open = false
	m.items = nil
	m.pixels = nil
	m.ignoreNextUp = false
	m.log.Debug("closed")
}

// render rasterizes the menu into its pixel buffer at its current size.
func (m *Menu) render() {
	maxWidth := 0
	for _, it := range m.items {
		if w := m.raster.MeasureWidth(it.Label); w > maxWidth {
			maxWidth = w
		}
	}
	w := maxWidth + 2*PadX
	if w < MinWidth {
		w = MinWidth
	}
	h := len(m.items) * ItemHeight
	if w != m.width || h != m.height {
		m.pixels = make([]byte, w*h*4)
		m.width, m.height = w, h
	} else {
		for i := range m.pixels {
			m.pixels[i] = 0
		}
	}

	bg := [4]byte{0x28, 0x28, 0x28, 0xE6}    // dark translucent background
	hoverBg := [4]byte{0x3a, 0x6e, 0xa5, 0xE6}
	fg := [4]byte{0xe8, 0xe8, 0xe8, 0xff}
	fgDisabled := [4]byte{0x80, 0x80, 0x80, 0xff}

	for row := 0; row < h; row++ {
		idx := row / ItemHeight
		fill := bg
		if idx == m.hoverIndex && idx < len(m.items) && m.items[idx].Enabled {
			fill = hoverBg
		}
		for col := 0; col < w; col++ {
			o := (row*w + col) * 4
			m.pixels[o+0] = fill[2] // B
			m.pixels[o+1] = fill[1] // G
			m.pixels[o+2] = fill[0] // R
			m.pixels[o+3] = fill[3] // A
		}
	}

	for i, it := range m.items {
		color := fg
		if !it.Enabled {
			color = fgDisabled
		}
		baselineY := i*ItemHeight + (ItemHeight+m.raster.Ascent())/2
		m.raster.DrawLabel(m.pixels, w, h, PadX, baselineY, it.Label, color)
	}
}
