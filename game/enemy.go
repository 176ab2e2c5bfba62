package game

import (
	"github.com/catsanzsh/ultraland/common"
	"github.com/catsanzsh/ultraland/screen"
	"github.com/catsanzsh/ultraland/sprites"
)

// EnemyType selects sprite and speed. The set is closed; draw dispatch is
// a switch, not a subclass hook.
type EnemyType int

const (
	EnemyGround EnemyType = iota
	EnemyFlying
)

const enemySize = 8

// Enemy patrols horizontally and flips at platform edges. Stomped enemies
// stay in the level's slice with Active=false; they are skipped everywhere.
type Enemy struct {
	X, Y      float64
	Type      EnemyType
	Direction float64 // +1 or -1
	Speed     float64
	Active    bool
	phase     float64
}

func NewEnemy(x, y float64, typ EnemyType) *Enemy {
	return &Enemy{
		X:         x,
		Y:         y,
		Type:      typ,
		Direction: -1,
		Speed:     0.5 + float64(typ)*0.2,
		Active:    true,
	}
}

func (e *Enemy) Bounds() common.Rect {
	return common.Rect{X: e.X, Y: e.Y, Width: enemySize, Height: enemySize}
}

// Update advances the patrol one tick. An enemy is "on" a platform when
// its horizontal extent overlaps it and its feet are within 2px of the
// platform top. Walking past either edge of a supporting platform flips
// direction, and so does standing on no platform at all. An enemy
// straddling two platforms can flip twice in one tick and oscillate;
// that quirk is load-bearing and kept.
func (e *Enemy) Update(platforms []*Platform) {
	if !e.Active {
		return
	}

	e.X += e.Direction * e.Speed
	e.phase += 0.1
	if e.phase >= 2 {
		e.phase = 0
	}

	onPlatform := false
	for _, p := range platforms {
		if e.X+enemySize > p.X && e.X < p.X+p.Width &&
			abs((e.Y+enemySize)-p.Y) < 2 {
			onPlatform = true

			if (e.Direction < 0 && e.X <= p.X) ||
				(e.Direction > 0 && e.X+enemySize >= p.X+p.Width) {
				e.Direction *= -1
			}
		}
	}

	if !onPlatform {
		e.Direction *= -1
	}
}

func (e *Enemy) Draw(fb *screen.Framebuffer, scrollX float64) {
	if !e.Active {
		return
	}

	x := int(e.X - scrollX)
	y := int(e.Y)

	frame := int(e.phase) % 2
	var pix *[8][8]uint8
	switch e.Type {
	case EnemyFlying:
		pix = &sprites.FlyingEnemyFrames[frame]
	default:
		pix = &sprites.GroundEnemyFrames[frame]
	}

	for py := 0; py < enemySize; py++ {
		for px := 0; px < enemySize; px++ {
			if pix[py][px] == 1 {
				fb.Set(x+px, y+py, screen.Dark)
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
