package game

import (
	"testing"

	"github.com/catsanzsh/ultraland/common"
)

func TestMachineStartsAtMenu(t *testing.T) {
	m := NewMachine(nil)
	if m.State() != StateMenu {
		t.Fatalf("state = %v, want menu", m.State())
	}
	if !m.Unlocked(1) {
		t.Fatal("level 1 starts unlocked")
	}
	for n := 2; n <= common.LevelCount; n++ {
		if m.Unlocked(n) {
			t.Fatalf("level %d should start locked", n)
		}
	}
}

func TestMachineMenuFlow(t *testing.T) {
	spk := &recordSpeaker{}
	m := NewMachine(spk)

	m.Update(Input{Confirm: true})
	if m.State() != StateLevelSelect {
		t.Fatalf("state = %v, want level_select after confirm", m.State())
	}
	if !spk.has(CueSelect) {
		t.Fatal("expected select cue")
	}

	// locked and out-of-range picks are ignored
	m.Update(Input{SelectLevel: 2})
	if m.State() != StateLevelSelect {
		t.Fatal("locked level pick must not change state")
	}
	m.Update(Input{SelectLevel: 99})
	if m.State() != StateLevelSelect {
		t.Fatal("out-of-range pick must not change state")
	}

	m.Update(Input{SelectLevel: 1})
	if m.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", m.State())
	}
	if m.Player() == nil || m.Level() == nil {
		t.Fatal("starting a level must build player and level")
	}
	if m.Player().X != m.Level().SpawnX || m.Player().Y != m.Level().SpawnY {
		t.Fatal("player should spawn at the level spawn point")
	}
}

func TestMachineCancelReturnsToMenu(t *testing.T) {
	m := NewMachine(nil)
	m.Update(Input{Confirm: true})
	m.Update(Input{SelectLevel: 1})

	m.Update(Input{Cancel: true})
	if m.State() != StateMenu {
		t.Fatalf("state = %v, want menu after cancel", m.State())
	}
}

func TestMachineVictoryUnlocksNextLevel(t *testing.T) {
	spk := &recordSpeaker{}
	m := NewMachine(spk)
	m.StartLevel(1)

	// walk the last stretch into the goal
	lvl := m.Level()
	p := m.Player()
	p.X = lvl.Width - 60
	p.Y = 110
	for i := 0; i < 120 && m.State() == StatePlaying; i++ {
		m.Update(Input{Right: true})
	}

	if m.State() != StateVictory {
		t.Fatalf("state = %v, want victory", m.State())
	}
	if !m.Unlocked(1) || !m.Unlocked(2) {
		t.Fatal("victory should unlock the current and next level")
	}
	if m.Unlocked(3) {
		t.Fatal("victory must not unlock beyond the next level")
	}
	if !spk.has(CueVictory) {
		t.Fatal("expected victory cue")
	}

	m.Update(Input{Confirm: true})
	if m.State() != StateLevelSelect {
		t.Fatal("confirm on victory should return to level select")
	}
}

func TestMachineFinalLevelVictory(t *testing.T) {
	m := NewMachine(nil)
	m.UnlockAll()
	m.StartLevel(common.LevelCount)

	m.Player().X = m.Level().Goal.X
	m.Player().Y = m.Level().Goal.Y + 10
	m.Update(Input{})

	if m.State() != StateVictory {
		t.Fatalf("state = %v, want victory", m.State())
	}
	// no level beyond the last; Unlocked must stay in range
	if m.Unlocked(common.LevelCount + 1) {
		t.Fatal("out-of-range unlock query should be false")
	}
}

func TestMachineGameOverAfterDyingAnimation(t *testing.T) {
	m := NewMachine(nil)
	m.StartLevel(1)
	p := m.Player()
	p.Lives = 1

	// drop onto the first enemy's platform so the landing kills the fall
	// velocity and the overlap counts as contact damage, not a stomp
	e := m.Level().Enemies[0]
	e.Speed = 0
	p.X = e.X
	p.Y = e.Y - 0.2

	m.Update(Input{})
	if !p.Dying {
		t.Fatal("lethal contact should start the dying animation")
	}
	if p.Lives != 0 {
		t.Fatalf("lives = %d, want 0", p.Lives)
	}
	if m.State() != StatePlaying {
		t.Fatal("game over must wait for the dying animation")
	}

	for i := 0; i < deathAnimFrames+5 && m.State() == StatePlaying; i++ {
		m.Update(Input{})
	}
	if m.State() != StateGameOver {
		t.Fatalf("state = %v, want game_over after the animation", m.State())
	}

	m.Update(Input{Confirm: true})
	if m.State() != StateLevelSelect {
		t.Fatal("confirm on game over should return to level select")
	}
}

func TestMachineJumpOnlyWhilePlaying(t *testing.T) {
	m := NewMachine(nil)
	// no crash updating menus with arbitrary input
	m.Update(Input{Left: true, Right: true, Jump: true})
	if m.State() != StateMenu {
		t.Fatal("gameplay input must not affect the menu")
	}
}

func TestMachineScrollStartsAtZero(t *testing.T) {
	m := NewMachine(nil)
	m.StartLevel(1)
	if m.camera.Scroll() != 0 {
		t.Fatalf("scroll = %v, want 0 at level start", m.camera.Scroll())
	}
}
