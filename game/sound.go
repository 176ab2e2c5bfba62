package game

// Cue names a sound effect. Cues are fire-and-forget: the game never waits
// on playback.
type Cue string

const (
	CueJump     Cue = "jump"
	CueCoin     Cue = "coin"
	CueStomp    Cue = "stomp"
	CueDamage   Cue = "damage"
	CueVictory  Cue = "victory"
	CueGameOver Cue = "gameover"
	CueSelect   Cue = "select"
)

// Speaker plays cues. The audio package provides the real implementation;
// tests use NopSpeaker.
type Speaker interface {
	Play(Cue)
}

// NopSpeaker discards every cue.
type NopSpeaker struct{}

func (NopSpeaker) Play(Cue) {}
