package game

import (
	"math"
	"math/rand"

	"github.com/catsanzsh/ultraland/common"
	"github.com/catsanzsh/ultraland/screen"
	"github.com/catsanzsh/ultraland/sprites"
)

const (
	playerSize       = 8
	startingLives    = 3
	invincibleFrames = 60
	deathAnimFrames  = 60
	// power-up multipliers, earned every tenth coin
	powerSpeedMult = 1.5
	powerJumpMult  = 1.2
	// fraction of jump strength returned as stomp bounce
	stompBounce = 0.6
)

// Player is the controllable entity. Active=false means no further
// updates; while Dying it ignores input and runs the death animation.
type Player struct {
	X, Y      float64
	VelY      float64
	Direction float64 // facing, +1 right / -1 left
	Jumping   bool
	Active    bool
	Dying     bool
	Lives     int
	Coins     int
	PowerUp   bool

	deathTimer int
	invincible int
	phase      float64

	speaker Speaker
}

func NewPlayer(x, y float64, speaker Speaker) *Player {
	if speaker == nil {
		speaker = NopSpeaker{}
	}
	return &Player{
		X:         x,
		Y:         y,
		Direction: 1,
		Active:    true,
		Lives:     startingLives,
		speaker:   speaker,
	}
}

func (p *Player) Bounds() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: playerSize, Height: playerSize}
}

// Invincible reports the remaining damage-immunity frames.
func (p *Player) Invincible() int { return p.invincible }

// Jump starts a jump if the player is grounded and alive.
func (p *Player) Jump() {
	if p.Jumping || p.Dying {
		return
	}
	mult := 1.0
	if p.PowerUp {
		mult = powerJumpMult
	}
	p.VelY = -common.JumpStrength * mult
	p.Jumping = true
	p.speaker.Play(CueJump)
}

// Update runs one physics tick: horizontal move and resolution, gravity,
// vertical resolution, enemy contact, coin pickup, bounds check. dx is the
// signed horizontal speed for this frame, 0 when no key is held.
//
// Platform resolution is axis-ordered and last-write-wins across the
// platform slice; with the small entity sizes here a second pass never
// changes the result.
func (p *Player) Update(dx float64, lvl *Level) {
	if !p.Active {
		return
	}

	if p.Dying {
		p.deathTimer++
		p.VelY += common.Gravity * 0.5
		p.Y += p.VelY
		p.phase += 0.5

		if p.deathTimer > deathAnimFrames || p.Y > common.ScreenHeight+20 {
			p.Active = false
		}
		return
	}

	if p.invincible > 0 {
		p.invincible--
	}

	speedMult := 1.0
	if p.PowerUp {
		speedMult = powerSpeedMult
	}
	p.X += dx * speedMult
	if dx != 0 {
		if dx > 0 {
			p.Direction = 1
		} else {
			p.Direction = -1
		}
		p.phase += 0.2
		if p.phase >= 2 {
			p.phase = 0
		}
	}

	for _, plat := range lvl.Platforms {
		if p.Bounds().Intersects(plat.Bounds()) {
			if dx > 0 {
				p.X = plat.X - playerSize
			} else {
				p.X = plat.X + plat.Width
			}
		}
	}

	p.VelY += common.Gravity
	p.Y += p.VelY

	for _, plat := range lvl.Platforms {
		if p.Bounds().Intersects(plat.Bounds()) {
			if p.VelY > 0 { // falling: land on top
				p.Y = plat.Y - playerSize
				p.VelY = 0
				p.Jumping = false
			} else if p.VelY < 0 { // rising: bonk the underside
				p.Y = plat.Y + plat.Height
				p.VelY = 0
			}
		}
	}

	for _, e := range lvl.Enemies {
		if !e.Active || !p.Bounds().Intersects(e.Bounds()) {
			continue
		}
		if p.VelY > 0 && p.Y < e.Y {
			// stomp
			e.Active = false
			p.VelY = -common.JumpStrength * stompBounce
			p.Coins++
			p.speaker.Play(CueStomp)
		} else if p.invincible <= 0 {
			p.invincible = invincibleFrames
			p.Lives--
			p.speaker.Play(CueDamage)
			if p.Lives <= 0 {
				p.startDying(true)
			}
		}
	}

	// mark-and-compact so removal never skips an entry mid-scan
	kept := lvl.Coins[:0]
	for _, c := range lvl.Coins {
		if p.Bounds().Intersects(c.Bounds()) {
			p.Coins++
			p.speaker.Play(CueCoin)
			if p.Coins%10 == 0 {
				p.PowerUp = true
			}
			continue
		}
		kept = append(kept, c)
	}
	lvl.Coins = kept

	if p.Y > common.ScreenHeight && !p.Dying {
		p.startDying(false)
	}
}

// startDying begins the death animation. A lethal hit gets a small upward
// hop; falling out of the world keeps the current velocity.
func (p *Player) startDying(hop bool) {
	p.Dying = true
	if hop {
		p.VelY = -common.JumpStrength * 0.5
	}
	p.speaker.Play(CueGameOver)
}

func (p *Player) Draw(fb *screen.Framebuffer, scrollX float64) {
	if !p.Active && !p.Dying {
		return
	}

	// blink while invincible: hidden 3 of every 6 frames
	if p.invincible > 0 && !p.Dying && p.invincible%6 < 3 {
		return
	}

	x := int(p.X - scrollX)
	y := int(p.Y)

	if p.Dying {
		// upside-down pose swaying as it falls
		angle := float64((p.deathTimer * 10) % 360)
		sway := int(math.Sin(angle*0.1) * 2)
		for py := 0; py < playerSize; py++ {
			for px := 0; px < playerSize; px++ {
				v := sprites.PlayerDeath[py][px]
				if v == 0 {
					continue
				}
				shade := screen.Dark
				if v == 2 {
					shade = screen.Darkest
				}
				fb.Set(x+px+sway, y+py, shade)
			}
		}
		return
	}

	// airborne uses frame 0, walking alternates by phase
	frame := 0
	if math.Abs(p.VelY) < 0.1 {
		frame = int(p.phase)
	}
	pix := &sprites.PlayerFrames[frame]

	for py := 0; py < playerSize; py++ {
		for px := 0; px < playerSize; px++ {
			sx := px
			if p.Direction < 0 {
				sx = playerSize - 1 - px
			}
			v := pix[py][sx]
			if v == 0 {
				continue
			}
			shade := screen.Dark
			if v == 2 || p.PowerUp {
				shade = screen.Darkest
			}
			fb.Set(x+px, y+py, shade)
		}
	}

	if p.PowerUp && rand.Float64() < 0.3 {
		fb.Set(x+rand.Intn(12)-2, y+rand.Intn(12)-2, screen.Light)
	}
}
