package game

import "github.com/catsanzsh/ultraland/common"

// Camera tracks a horizontal scroll offset with a dead zone: the player
// moves freely in the central band and only pushes the view when within
// a third of the screen of either edge.
type Camera struct {
	scroll     float64
	levelWidth float64
}

func NewCamera(levelWidth float64) *Camera {
	return &Camera{levelWidth: levelWidth}
}

// Scroll returns the current offset in world pixels.
func (c *Camera) Scroll() float64 { return c.scroll }

// Update recomputes the offset after the player has moved.
func (c *Camera) Update(playerX float64) {
	if playerX-c.scroll > common.ScreenWidth-common.ScrollThreshold {
		c.scroll = playerX - (common.ScreenWidth - common.ScrollThreshold)
	}
	if playerX-c.scroll < common.ScrollThreshold {
		c.scroll = playerX - common.ScrollThreshold
	}
	c.scroll = common.Clamp(c.scroll, 0, c.levelWidth-common.ScreenWidth)
}
