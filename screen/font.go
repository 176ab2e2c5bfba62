package screen

import "unicode"

// glyphs is a 3x4 pixel font covering the characters the HUD and the
// menu screens use. Lowercase input is uppercased before lookup; unknown
// characters render as blanks.
var glyphs = map[rune][4][3]uint8{
	'A': {{1, 1, 1}, {1, 0, 1}, {1, 1, 1}, {1, 0, 1}},
	'B': {{1, 1, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1}},
	'C': {{1, 1, 1}, {1, 0, 0}, {1, 0, 0}, {1, 1, 1}},
	'D': {{1, 1, 0}, {1, 0, 1}, {1, 0, 1}, {1, 1, 0}},
	'E': {{1, 1, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	'F': {{1, 1, 1}, {1, 0, 0}, {1, 1, 0}, {1, 0, 0}},
	'G': {{1, 1, 1}, {1, 0, 0}, {1, 0, 1}, {1, 1, 1}},
	'H': {{1, 0, 1}, {1, 0, 1}, {1, 1, 1}, {1, 0, 1}},
	'I': {{1, 1, 1}, {0, 1, 0}, {0, 1, 0}, {1, 1, 1}},
	'J': {{0, 0, 1}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	'K': {{1, 0, 1}, {1, 1, 0}, {1, 1, 0}, {1, 0, 1}},
	'L': {{1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 1, 1}},
	'M': {{1, 0, 1}, {1, 1, 1}, {1, 0, 1}, {1, 0, 1}},
	'N': {{1, 0, 1}, {1, 1, 1}, {1, 1, 1}, {1, 0, 1}},
	'O': {{1, 1, 1}, {1, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	'P': {{1, 1, 1}, {1, 0, 1}, {1, 1, 1}, {1, 0, 0}},
	'Q': {{1, 1, 0}, {1, 0, 1}, {1, 1, 0}, {0, 0, 1}},
	'R': {{1, 1, 0}, {1, 0, 1}, {1, 1, 0}, {1, 0, 1}},
	'S': {{1, 1, 1}, {1, 0, 0}, {0, 1, 0}, {1, 1, 1}},
	'T': {{1, 1, 1}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
	'U': {{1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	'V': {{1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {0, 1, 0}},
	'W': {{1, 0, 1}, {1, 0, 1}, {1, 1, 1}, {1, 0, 1}},
	'X': {{1, 0, 1}, {0, 1, 0}, {0, 1, 0}, {1, 0, 1}},
	'Y': {{1, 0, 1}, {1, 0, 1}, {0, 1, 0}, {0, 1, 0}},
	'Z': {{1, 1, 1}, {0, 0, 1}, {0, 1, 0}, {1, 1, 1}},
	'0': {{1, 1, 1}, {1, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	'1': {{0, 1, 0}, {1, 1, 0}, {0, 1, 0}, {1, 1, 1}},
	'2': {{1, 1, 1}, {0, 0, 1}, {0, 1, 0}, {1, 1, 1}},
	'3': {{1, 1, 1}, {0, 0, 1}, {0, 1, 1}, {1, 1, 1}},
	'4': {{1, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 0, 1}},
	'5': {{1, 1, 1}, {1, 0, 0}, {0, 1, 1}, {1, 1, 0}},
	'6': {{1, 1, 1}, {1, 0, 0}, {1, 1, 1}, {1, 1, 1}},
	'7': {{1, 1, 1}, {0, 0, 1}, {0, 1, 0}, {0, 1, 0}},
	'8': {{1, 1, 1}, {1, 1, 1}, {1, 0, 1}, {1, 1, 1}},
	'9': {{1, 1, 1}, {1, 0, 1}, {1, 1, 1}, {0, 0, 1}},
	' ': {{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	':': {{0, 1, 0}, {0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
	'!': {{0, 1, 0}, {0, 1, 0}, {0, 0, 0}, {0, 1, 0}},
}

// GlyphAdvance is the horizontal spacing between characters.
const GlyphAdvance = 4

// DrawText renders text at x,y in the given shade. Pixels landing outside
// the framebuffer are clipped by Set.
func DrawText(fb *Framebuffer, text string, x, y int, shade Shade) {
	for i, ch := range text {
		g, ok := glyphs[unicode.ToUpper(ch)]
		if !ok {
			continue
		}
		for gy := 0; gy < 4; gy++ {
			for gx := 0; gx < 3; gx++ {
				if g[gy][gx] == 1 {
					fb.Set(x+i*GlyphAdvance+gx, y+gy, shade)
				}
			}
		}
	}
}

// TextWidth returns the pixel width of text as DrawText lays it out.
func TextWidth(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return n*GlyphAdvance - 1
}
