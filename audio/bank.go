package audio

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/catsanzsh/ultraland/game"
)

// renderCues builds the PCM for every cue. Frequencies and durations are
// fixed phrases: rising thirds for the jump, a C-major fanfare for the
// victory, descending notes for damage and game over.
func renderCues() map[game.Cue][]byte {
	return map[game.Cue][]byte{
		game.CueJump: PCM(
			Square(200, 0.05, 0.3),
			Square(400, 0.05, 0.3),
			Square(600, 0.05, 0.3),
		),
		game.CueCoin: PCM(
			Square(800, 0.1, 0.3),
			Square(1000, 0.1, 0.3),
		),
		game.CueStomp: PCM(
			Square(100, 0.1, 0.3),
			Noise(0.05, 0.2),
		),
		game.CueDamage: PCM(
			Square(400, 0.1, 0.3),
			Square(300, 0.1, 0.3),
			Square(200, 0.1, 0.3),
		),
		game.CueVictory: PCM(
			Square(523, 0.15, 0.3), // C
			Square(659, 0.15, 0.3), // E
			Square(784, 0.15, 0.3), // G
			Square(1047, 0.3, 0.3), // high C
		),
		game.CueGameOver: PCM(
			Square(300, 0.2, 0.3),
			Square(250, 0.2, 0.3),
			Square(200, 0.2, 0.3),
			Square(150, 0.4, 0.3),
		),
		game.CueSelect: PCM(
			Square(600, 0.05, 0.3),
		),
	}
}

// Bank owns one audio player per cue and implements game.Speaker.
// Playback is fire-and-forget; triggering a cue restarts it.
type Bank struct {
	players map[game.Cue]*audio.Player
	volume  float64
	muted   bool
}

func NewBank(ctx *audio.Context) (*Bank, error) {
	b := &Bank{
		players: make(map[game.Cue]*audio.Player),
		volume:  1,
	}
	for cue, pcm := range renderCues() {
		p, err := ctx.NewPlayer(bytes.NewReader(pcm))
		if err != nil {
			return nil, fmt.Errorf("audio: render %q: %w", cue, err)
		}
		b.players[cue] = p
	}
	return b, nil
}

func (b *Bank) Play(cue game.Cue) {
	if b.muted {
		return
	}
	p := b.players[cue]
	if p == nil {
		return
	}
	p.SetVolume(b.volume)
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

func (b *Bank) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	b.volume = v
}

func (b *Bank) SetMuted(m bool) { b.muted = m }
func (b *Bank) Muted() bool     { return b.muted }
