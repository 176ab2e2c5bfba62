package screen

import (
	"testing"

	"github.com/catsanzsh/ultraland/common"
)

func TestFramebufferSetAt(t *testing.T) {
	fb := NewFramebuffer()

	fb.Set(0, 0, Darkest)
	fb.Set(common.ScreenWidth-1, common.ScreenHeight-1, Dark)

	if got := fb.At(0, 0); got != Darkest {
		t.Fatalf("At(0,0) = %v, want Darkest", got)
	}
	if got := fb.At(common.ScreenWidth-1, common.ScreenHeight-1); got != Dark {
		t.Fatalf("bottom-right = %v, want Dark", got)
	}
}

func TestFramebufferClipsOutOfBounds(t *testing.T) {
	fb := NewFramebuffer()

	// None of these may panic or disturb in-bounds pixels.
	cases := []struct{ x, y int }{
		{-1, 0}, {0, -1},
		{common.ScreenWidth, 0}, {0, common.ScreenHeight},
		{-100, -100}, {10000, 10000},
	}
	for _, c := range cases {
		fb.Set(c.x, c.y, Darkest)
		if got := fb.At(c.x, c.y); got != Lightest {
			t.Fatalf("At(%d,%d) = %v, want Lightest", c.x, c.y, got)
		}
	}

	for y := 0; y < common.ScreenHeight; y++ {
		for x := 0; x < common.ScreenWidth; x++ {
			if fb.At(x, y) != Lightest {
				t.Fatalf("pixel (%d,%d) disturbed by clipped write", x, y)
			}
		}
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer()
	fb.Set(10, 10, Darkest)
	fb.Clear()
	if fb.At(10, 10) != Lightest {
		t.Fatal("Clear did not reset pixel")
	}
}

func TestFramebufferRGBA(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetPalette(PaletteByName("gray"))
	fb.Set(1, 0, Darkest)

	dst := make([]byte, common.ScreenWidth*common.ScreenHeight*4)
	fb.RGBA(dst)

	// pixel (0,0) is Lightest -> white in the gray palette
	if dst[0] != 255 || dst[1] != 255 || dst[2] != 255 || dst[3] != 255 {
		t.Fatalf("pixel (0,0) = %v, want white", dst[:4])
	}
	// pixel (1,0) is Darkest -> black
	if dst[4] != 0 || dst[5] != 0 || dst[6] != 0 || dst[7] != 255 {
		t.Fatalf("pixel (1,0) = %v, want black", dst[4:8])
	}
}

func TestPaletteByNameFallback(t *testing.T) {
	if PaletteByName("no-such-palette") != PaletteByName("green") {
		t.Fatal("unknown palette name should fall back to green")
	}
}
