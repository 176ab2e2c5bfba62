package game

import (
	"github.com/catsanzsh/ultraland/common"
	"github.com/catsanzsh/ultraland/screen"
	"github.com/catsanzsh/ultraland/sprites"
)

// Platform is a static solid. Immutable after level construction.
type Platform struct {
	X, Y          float64
	Width, Height float64
}

func (p *Platform) Bounds() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Draw tiles the block pattern across the platform's extent.
func (p *Platform) Draw(fb *screen.Framebuffer, scrollX float64) {
	x := int(p.X - scrollX)
	y := int(p.Y)

	for ty := 0; ty < int(p.Height); ty += common.TileSize {
		for tx := 0; tx < int(p.Width); tx += common.TileSize {
			drawTile(fb, x+tx, y+ty)
		}
	}
}

func drawTile(fb *screen.Framebuffer, x, y int) {
	for ty := 0; ty < common.TileSize; ty++ {
		for tx := 0; tx < common.TileSize; tx++ {
			shade := screen.Light
			if sprites.PlatformTile[ty][tx] == 1 {
				shade = screen.Dark
			}
			fb.Set(x+tx, y+ty, shade)
		}
	}
}
