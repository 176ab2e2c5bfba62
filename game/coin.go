package game

import (
	"github.com/catsanzsh/ultraland/common"
	"github.com/catsanzsh/ultraland/screen"
	"github.com/catsanzsh/ultraland/sprites"
)

const coinSize = 8

// Coin is a collectible. Created at level construction, removed from the
// level's coin slice the frame the player overlaps it.
type Coin struct {
	X, Y  float64
	phase float64
}

func (c *Coin) Bounds() common.Rect {
	return common.Rect{X: c.X, Y: c.Y, Width: coinSize, Height: coinSize}
}

// Update advances the spin phase. A full spin is four phase steps of ten
// frames each: face-on, edge-on, face-on, edge-on.
func (c *Coin) Update() {
	c.phase += 0.1
	if c.phase >= 4 {
		c.phase = 0
	}
}

func (c *Coin) Draw(fb *screen.Framebuffer, scrollX float64) {
	x := int(c.X - scrollX)
	y := int(c.Y)

	frame := 0
	if int(c.phase)%2 == 1 {
		frame = 1
	}

	for py := 0; py < coinSize; py++ {
		for px := 0; px < coinSize; px++ {
			if sprites.CoinFrames[frame][py][px] == 1 {
				fb.Set(x+px, y+py, screen.Darkest)
			}
		}
	}
}
