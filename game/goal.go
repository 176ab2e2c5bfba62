package game

import (
	"math"

	"github.com/catsanzsh/ultraland/common"
	"github.com/catsanzsh/ultraland/screen"
	"github.com/catsanzsh/ultraland/sprites"
)

const (
	goalWidth  = 16
	goalHeight = 32
)

// Goal is the level-end flag pole. Touching it wins the level; it is
// never removed.
type Goal struct {
	X, Y  float64
	phase float64
}

func (g *Goal) Bounds() common.Rect {
	return common.Rect{X: g.X, Y: g.Y, Width: goalWidth, Height: goalHeight}
}

// Update advances the flag wave.
func (g *Goal) Update() {
	g.phase += 0.1
}

func (g *Goal) Draw(fb *screen.Framebuffer, scrollX float64) {
	x := int(g.X - scrollX)
	y := int(g.Y)

	// pole
	for py := 0; py < goalHeight; py++ {
		fb.Set(x+7, y+py, screen.Darkest)
		fb.Set(x+8, y+py, screen.Darkest)
	}

	// banner, rippling more toward the free edge
	wave := math.Sin(g.phase) * 2
	for fy := 0; fy < 5; fy++ {
		for fx := 0; fx < 8; fx++ {
			if sprites.GoalFlag[fy][fx] == 1 {
				px := x + fx + 9 + int(wave*(1-float64(fy)/5))
				fb.Set(px, y+fy+5, screen.Dark)
			}
		}
	}
}
