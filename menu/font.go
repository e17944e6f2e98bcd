// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package menu

import (
	"image"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// fontPaths are tried in order until one loads, grounded on
// original_source/src/ui/menu_overlay.cpp's FONT_PATHS table, extended
// with reasonable macOS/Windows defaults since the original only shipped
// a Linux search list.
var fontPaths = []string{
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/Hack-Regular.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/usr/share/fonts/TTF/Roboto-Regular.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\segoeui.ttf`,
	`C:\Windows\Fonts\arial.ttf`,
}

// sfntRasterizer implements Rasterizer on top of golang.org/x/image/font/sfnt
// and golang.org/x/image/vector, caching rasterized glyphs since the menu
// redraws on every hover change.
type sfntRasterizer struct {
	face   *sfnt.Font
	ascent int
	scale  fixed.Int26_6

	glyphs map[rune]*glyphBitmap
}

type glyphBitmap struct {
	w, h     int
	advance  int
	bearingX int
	bearingY int
	alpha    []byte // w*h, 0-255 coverage
}

// LoadFont tries each of fontPaths in turn and returns a Rasterizer for
// the first one that parses, or nil if none was found (spec section 7:
// "Font not found -> Menu disabled").
func LoadFont() Rasterizer {
	log := slog.With("component", "menu.font")
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed, err := sfnt.Parse(data)
		if err != nil {
			continue
		}
		r, err := newSfntRasterizer(parsed)
		if err != nil {
			log.Warn("font parsed but metrics failed", "path", path, "err", err)
			continue
		}
		log.Info("loaded menu font", "path", path)
		return r
	}
	log.Warn("no menu font found in any search path")
	return nil
}

func newSfntRasterizer(f *sfnt.Font) (*sfntRasterizer, error) {
	var buf sfnt.Buffer
	size := fixed.I(FontSize)
	metrics, err := f.Metrics(&buf, size, font.HintingNone)
	if err != nil {
		return nil, err
	}
	return &sfntRasterizer{
		face:   f,
		ascent: metrics.Ascent.Ceil(),
		scale:  size,
		glyphs: map[rune]*glyphBitmap{},
	}, nil
}

func (r *sfntRasterizer) Ascent() int { return r.ascent }

// glyph returns the rasterized bitmap for ch, rasterizing and caching it
// on first use (spec section 4.D: "glyphs are rasterised on demand").
func (r *sfntRasterizer) glyph(ch rune) *glyphBitmap {
	if g, ok := r.glyphs[ch]; ok {
		return g
	}
	g := r.rasterize(ch)
	r.glyphs[ch] = g
	return g
}

func (r *sfntRasterizer) rasterize(ch rune) *glyphBitmap {
	var buf sfnt.Buffer
	idx, err := r.face.GlyphIndex(&buf, ch)
	if err != nil || idx == 0 {
		return &glyphBitmap{}
	}
	adv, err := r.face.GlyphAdvance(&buf, idx, r.scale, font.HintingNone)
	advance := 0
	if err == nil {
		advance = adv.Ceil()
	}
	segments, err := r.face.LoadGlyph(&buf, idx, r.scale, nil)
	if err != nil || len(segments) == 0 {
		return &glyphBitmap{advance: advance}
	}

	var minX, minY, maxX, maxY fixed.Int26_6
	minX, minY = fixed.I(1<<20), fixed.I(1<<20)
	maxX, maxY = -fixed.I(1<<20), -fixed.I(1<<20)
	for _, seg := range segments {
		for _, p := range seg.Args {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if maxX <= minX || maxY <= minY {
		return &glyphBitmap{advance: advance}
	}

	w := (maxX - minX).Ceil() + 1
	h := (maxY - minY).Ceil() + 1
	if w <= 0 || h <= 0 || w > 512 || h > 512 {
		return &glyphBitmap{advance: advance}
	}

	// sfnt segments and vector.Rasterizer agree on a Y-down convention
	// (ascenders are negative Y relative to the baseline), so no flip is
	// needed: row 0 of the rasterized bitmap is the glyph's top.
	ras := vector.NewRasterizer(w, h)
	toPt := func(p fixed.Point26_6) (float32, float32) {
		x := float32(p.X-minX) / 64
		y := float32(p.Y-minY) / 64
		return x, y
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := toPt(seg.Args[0])
			ras.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := toPt(seg.Args[0])
			ras.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			x1, y1 := toPt(seg.Args[0])
			x2, y2 := toPt(seg.Args[1])
			ras.QuadTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := toPt(seg.Args[0])
			x2, y2 := toPt(seg.Args[1])
			x3, y3 := toPt(seg.Args[2])
			ras.CubeTo(x1, y1, x2, y2, x3, y3)
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return &glyphBitmap{
		w:        w,
		h:        h,
		advance:  advance,
		bearingX: minX.Ceil(),
		bearingY: minY.Ceil(),
		alpha:    dst.Pix,
	}
}

// MeasureWidth sums glyph advances for label at FontSize.
func (r *sfntRasterizer) MeasureWidth(label string) int {
	total := 0
	for _, ch := range label {
		total += r.glyph(ch).advance
	}
	return total
}

// DrawLabel rasterizes label's glyphs into buf at (x, baselineY) with colour c.
func (r *sfntRasterizer) DrawLabel(buf []byte, bufW, bufH int, x, baselineY int, label string, c [4]byte) {
	pen := x
	for _, ch := range label {
		g := r.glyph(ch)
		if g.w > 0 && g.h > 0 {
			drawGlyph(buf, bufW, bufH, pen+g.bearingX, baselineY+g.bearingY, g, c)
		}
		pen += g.advance
	}
}

func drawGlyph(buf []byte, bufW, bufH int, originX, originY int, g *glyphBitmap, c [4]byte) {
	for gy := 0; gy < g.h; gy++ {
		dy := originY + gy
		if dy < 0 || dy >= bufH {
			continue
		}
		for gx := 0; gx < g.w; gx++ {
			dx := originX + gx
			if dx < 0 || dx >= bufW {
				continue
			}
			a := g.alpha[gy*g.w+gx]
			if a == 0 {
				continue
			}
			o := (dy*bufW + dx) * 4
			blendPixel(buf[o:o+4], c, a)
		}
	}
}

// blendPixel does straight (non-premultiplied) alpha-over onto a BGRA8
// pixel, scaling the source colour's own alpha by the glyph coverage.
func blendPixel(dst []byte, c [4]byte, coverage byte) {
	srcA := uint32(c[3]) * uint32(coverage) / 255
	if srcA == 0 {
		return
	}
	inv := 255 - srcA
	dst[0] = byte((uint32(c[2])*srcA + uint32(dst[0])*inv) / 255) // B
	dst[1] = byte((uint32(c[1])*srcA + uint32(dst[1])*inv) / 255) // G
	dst[2] = byte((uint32(c[0])*srcA + uint32(dst[2])*inv) / 255) // R
	dst[3] = byte(srcA + uint32(dst[3])*inv/255)                  // A
}
