package screen

import "testing"

func TestDrawTextPlacesGlyphPixels(t *testing.T) {
	fb := NewFramebuffer()
	DrawText(fb, "I", 10, 10, Darkest)

	// top row of 'I' is fully lit
	for x := 0; x < 3; x++ {
		if fb.At(10+x, 10) != Darkest {
			t.Fatalf("expected lit pixel at (%d,10)", 10+x)
		}
	}
	// middle column only on row 1
	if fb.At(10, 11) != Lightest || fb.At(11, 11) != Darkest {
		t.Fatal("glyph body mismatch for 'I'")
	}
}

func TestDrawTextLowercaseAndUnknown(t *testing.T) {
	fb := NewFramebuffer()
	DrawText(fb, "a", 0, 0, Dark)
	lit := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			if fb.At(x, y) == Dark {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("lowercase input should render via uppercase glyph")
	}

	fb.Clear()
	DrawText(fb, "?", 0, 0, Dark)
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			if fb.At(x, y) != Lightest {
				t.Fatal("unknown character should render nothing")
			}
		}
	}
}

func TestDrawTextClipsAtEdges(t *testing.T) {
	fb := NewFramebuffer()
	// partially and fully off screen; must not panic
	DrawText(fb, "EDGE", -5, -2, Darkest)
	DrawText(fb, "EDGE", 158, 142, Darkest)
}

func TestTextWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"A", 3},
		{"AB", 7},
		{"SELECT LEVEL", 47},
	}
	for _, c := range cases {
		if got := TextWidth(c.in); got != c.want {
			t.Fatalf("TextWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
