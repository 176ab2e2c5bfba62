package screen

import (
	"image/color"

	"github.com/catsanzsh/ultraland/common"
)

// Shade is an index into the four-entry palette, ordered light to dark.
type Shade uint8

const (
	Lightest Shade = iota
	Light
	Dark
	Darkest
)

// Palette maps the four shades to display colors, indexed by Shade.
type Palette [4]color.RGBA

var palettes = map[string]Palette{
	// Classic DMG green.
	"green": {
		{R: 155, G: 188, B: 15, A: 255},
		{R: 139, G: 172, B: 15, A: 255},
		{R: 48, G: 98, B: 48, A: 255},
		{R: 15, G: 56, B: 15, A: 255},
	},
	"gray": {
		{R: 255, G: 255, B: 255, A: 255},
		{R: 170, G: 170, B: 170, A: 255},
		{R: 85, G: 85, B: 85, A: 255},
		{R: 0, G: 0, B: 0, A: 255},
	},
	"pocket": {
		{R: 196, G: 207, B: 161, A: 255},
		{R: 139, G: 149, B: 109, A: 255},
		{R: 77, G: 83, B: 60, A: 255},
		{R: 31, G: 31, B: 31, A: 255},
	},
}

// PaletteByName returns a named palette. Unknown names fall back to the
// classic green palette.
func PaletteByName(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["green"]
}

// Framebuffer is the fixed 160x144 indexed-color render target. Entities
// draw into it each frame and the presentation layer expands it to RGBA.
type Framebuffer struct {
	pix     []Shade
	palette Palette
}

func NewFramebuffer() *Framebuffer {
	return &Framebuffer{
		pix:     make([]Shade, common.ScreenWidth*common.ScreenHeight),
		palette: PaletteByName("green"),
	}
}

func (f *Framebuffer) SetPalette(p Palette) {
	f.palette = p
}

// Set writes one pixel. Out-of-bounds writes are dropped; that is the
// clipping policy, sprites partially off screen rely on it.
func (f *Framebuffer) Set(x, y int, s Shade) {
	if x < 0 || x >= common.ScreenWidth || y < 0 || y >= common.ScreenHeight {
		return
	}
	f.pix[y*common.ScreenWidth+x] = s
}

// At returns the shade at x,y. Out-of-bounds reads return Lightest.
func (f *Framebuffer) At(x, y int) Shade {
	if x < 0 || x >= common.ScreenWidth || y < 0 || y >= common.ScreenHeight {
		return Lightest
	}
	return f.pix[y*common.ScreenWidth+x]
}

// Clear resets every pixel to the lightest shade, the sky color.
func (f *Framebuffer) Clear() {
	for i := range f.pix {
		f.pix[i] = Lightest
	}
}

// RGBA expands the indexed buffer into dst as RGBA bytes, row-major,
// suitable for (*ebiten.Image).WritePixels. dst must hold
// ScreenWidth*ScreenHeight*4 bytes.
func (f *Framebuffer) RGBA(dst []byte) {
	for i, s := range f.pix {
		c := f.palette[s]
		dst[i*4+0] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = c.A
	}
}
