package game

import (
	"fmt"
	"math"

	"github.com/catsanzsh/ultraland/common"
	"github.com/catsanzsh/ultraland/screen"
	"github.com/catsanzsh/ultraland/sprites"
)

// State is the top-level game mode.
type State int

const (
	StateMenu State = iota
	StateLevelSelect
	StatePlaying
	StateGameOver
	StateVictory
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateLevelSelect:
		return "level_select"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	}
	return "unknown"
}

// Machine owns the active level and player and drives the per-frame
// update-then-render sequence for every state.
type Machine struct {
	state    State
	current  int // 1-based level index
	player   *Player
	level    *Level
	camera   *Camera
	unlocked [common.LevelCount]bool
	frame    int
	speaker  Speaker
}

func NewMachine(speaker Speaker) *Machine {
	if speaker == nil {
		speaker = NopSpeaker{}
	}
	m := &Machine{speaker: speaker}
	m.unlocked[0] = true
	return m
}

func (m *Machine) State() State      { return m.state }
func (m *Machine) Player() *Player   { return m.player }
func (m *Machine) Level() *Level     { return m.level }
func (m *Machine) CurrentLevel() int { return m.current }

// Unlocked reports whether the 1-based level index is playable.
func (m *Machine) Unlocked(n int) bool {
	return n >= 1 && n <= common.LevelCount && m.unlocked[n-1]
}

// UnlockAll opens every level.
func (m *Machine) UnlockAll() {
	for i := range m.unlocked {
		m.unlocked[i] = true
	}
}

// StartLevel builds the level and player and enters playing. Locked or
// out-of-range indices are ignored with no state change.
func (m *Machine) StartLevel(n int) {
	if !m.Unlocked(n) {
		return
	}
	m.current = n
	m.level = NewLevel(n)
	m.player = NewPlayer(m.level.SpawnX, m.level.SpawnY, m.speaker)
	m.camera = NewCamera(m.level.Width)
	m.state = StatePlaying
	m.speaker.Play(CueSelect)
}

// Update advances one frame with the given input.
func (m *Machine) Update(in Input) {
	m.frame++

	switch m.state {
	case StateMenu:
		if in.Confirm {
			m.state = StateLevelSelect
			m.speaker.Play(CueSelect)
		}
	case StateLevelSelect:
		if in.SelectLevel != 0 {
			m.StartLevel(in.SelectLevel)
		}
	case StatePlaying:
		m.updatePlaying(in)
	case StateGameOver, StateVictory:
		if in.Confirm {
			m.state = StateLevelSelect
			m.speaker.Play(CueSelect)
		}
	}
}

func (m *Machine) updatePlaying(in Input) {
	if in.Cancel {
		m.state = StateMenu
		return
	}

	var dx float64
	if in.Left {
		dx = -common.PlayerSpeed
	}
	if in.Right {
		dx = common.PlayerSpeed
	}
	if in.Jump {
		m.player.Jump()
	}

	m.player.Update(dx, m.level)
	for _, e := range m.level.Enemies {
		e.Update(m.level.Platforms)
	}
	for _, c := range m.level.Coins {
		c.Update()
	}
	m.level.Goal.Update()
	m.camera.Update(m.player.X)

	if m.player.Bounds().Intersects(m.level.Goal.Bounds()) {
		m.unlocked[m.current-1] = true
		if m.current < common.LevelCount {
			m.unlocked[m.current] = true
		}
		m.state = StateVictory
		m.speaker.Play(CueVictory)
		return
	}

	// game over only once the dying animation has finished
	if !m.player.Active {
		m.state = StateGameOver
	}
}

// Draw renders the current state into the framebuffer.
func (m *Machine) Draw(fb *screen.Framebuffer) {
	fb.Clear()

	switch m.state {
	case StateMenu:
		m.drawMenu(fb)
	case StateLevelSelect:
		m.drawLevelSelect(fb)
	case StatePlaying:
		m.drawGame(fb)
	case StateGameOver:
		m.drawGame(fb)
		m.drawGameOver(fb)
	case StateVictory:
		m.drawGame(fb)
		m.drawVictory(fb)
	}
}

func (m *Machine) drawGame(fb *screen.Framebuffer) {
	scroll := m.camera.Scroll()

	for _, p := range m.level.Platforms {
		p.Draw(fb, scroll)
	}
	for _, c := range m.level.Coins {
		c.Draw(fb, scroll)
	}
	for _, e := range m.level.Enemies {
		e.Draw(fb, scroll)
	}
	m.level.Goal.Draw(fb, scroll)
	m.player.Draw(fb, scroll)

	screen.DrawText(fb, fmt.Sprintf("L:%d", m.player.Lives), 5, 5, screen.Darkest)
	screen.DrawText(fb, fmt.Sprintf("C:%d", m.player.Coins), 35, 5, screen.Darkest)
	screen.DrawText(fb, fmt.Sprintf("LV:%d", m.current), 70, 5, screen.Darkest)
	if m.player.PowerUp {
		screen.DrawText(fb, "POWER!", 100, 5, screen.Darkest)
	}
}

func (m *Machine) drawMenu(fb *screen.Framebuffer) {
	wave := math.Sin(float64(m.frame)*0.05) * 5

	screen.DrawText(fb, "ULTRA!", 50, 20+int(wave), screen.Darkest)
	screen.DrawText(fb, "ULTRA LAND", 35, 35, screen.Darkest)
	screen.DrawText(fb, "60FPS TECH DEMO", 25, 50, screen.Dark)

	if math.Abs(math.Sin(float64(m.frame)*0.03)) > 0.5 {
		screen.DrawText(fb, "PRESS ENTER", 38, 90, screen.Darkest)
	}

	// bobbing mascot
	heroY := 100 + int(math.Sin(float64(m.frame)*0.1)*3)
	for py := 0; py < 8; py++ {
		for px := 0; px < 8; px++ {
			v := sprites.PlayerFrames[0][py][px]
			if v == 0 {
				continue
			}
			shade := screen.Dark
			if v == 2 {
				shade = screen.Darkest
			}
			fb.Set(76+px, heroY+py, shade)
		}
	}

	screen.DrawText(fb, "F1: TOGGLE FPS", 30, 125, screen.Dark)
}

func (m *Machine) drawLevelSelect(fb *screen.Framebuffer) {
	screen.DrawText(fb, "SELECT LEVEL", 35, 10, screen.Darkest)

	for i := 0; i < common.LevelCount; i++ {
		y := 30 + i*20
		if !m.unlocked[i] {
			screen.DrawText(fb, "LOCKED", 45, y, screen.Light)
			continue
		}
		shade := screen.Dark
		if (m.frame/10)%common.LevelCount == i {
			shade = screen.Darkest
		}
		screen.DrawText(fb, fmt.Sprintf("LEVEL %d", i+1), 45, y, shade)
		screen.DrawText(fb, fmt.Sprintf("PRESS %d", i+1), 45, y+8, screen.Dark)
	}
}

func (m *Machine) drawGameOver(fb *screen.Framebuffer) {
	// checkerboard dim over the final frame
	for y := 0; y < common.ScreenHeight; y++ {
		for x := 0; x < common.ScreenWidth; x++ {
			if (x+y)%2 == 0 {
				fb.Set(x, y, screen.Dark)
			}
		}
	}

	screen.DrawText(fb, "GAME OVER", 45, 60, screen.Darkest)
	screen.DrawText(fb, "PRESS ENTER", 40, 80, screen.Darkest)
}

func (m *Machine) drawVictory(fb *screen.Framebuffer) {
	// scrolling diagonal stripes
	for y := 0; y < common.ScreenHeight; y++ {
		for x := 0; x < common.ScreenWidth; x++ {
			if (x+y+m.frame/2)%3 == 0 {
				fb.Set(x, y, screen.Light)
			}
		}
	}

	screen.DrawText(fb, "LEVEL CLEAR!", 40, 50, screen.Darkest)
	screen.DrawText(fb, fmt.Sprintf("COINS: %d", m.player.Coins), 45, 70, screen.Darkest)

	if m.current == common.LevelCount {
		screen.DrawText(fb, "GAME COMPLETE!", 35, 90, screen.Darkest)
		screen.DrawText(fb, "AMAZING!", 50, 100, screen.Darkest)
	} else {
		screen.DrawText(fb, "PRESS ENTER", 40, 90, screen.Darkest)
	}
}
