// Package audio synthesizes the sound effects at startup and plays them
// through Ebitengine. No audio assets exist; every cue is a short
// square-wave phrase in the classic 8-bit style.
package audio

import (
	"math"
	"math/rand"
)

// SampleRate is the PCM rate every cue is rendered at and the rate the
// audio context must be created with.
const SampleRate = 44100

// Square renders dur seconds of a square wave at freq. The final 10ms
// fade linearly to zero so back-to-back notes don't click.
func Square(freq, dur, vol float64) []int16 {
	frames := int(dur * SampleRate)
	samplesPerCycle := SampleRate / freq

	out := make([]int16, frames)
	amp := vol * math.MaxInt16
	for i := 0; i < frames; i++ {
		if math.Mod(float64(i), samplesPerCycle) < samplesPerCycle/2 {
			out[i] = int16(amp)
		} else {
			out[i] = int16(-amp)
		}
	}

	fade := int(0.01 * SampleRate)
	if fade > frames {
		fade = frames
	}
	for i := 0; i < fade; i++ {
		idx := frames - 1 - i
		out[idx] = int16(float64(out[idx]) * float64(i) / float64(fade))
	}
	return out
}

// Noise renders dur seconds of white noise under an exponential decay
// envelope, for impact effects.
func Noise(dur, vol float64) []int16 {
	frames := int(dur * SampleRate)
	out := make([]int16, frames)
	for i := 0; i < frames; i++ {
		s := rand.NormFloat64() * vol
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		env := math.Exp(-5 * float64(i) / float64(frames))
		out[i] = int16(s * env * math.MaxInt16)
	}
	return out
}

// PCM concatenates the mono phrases and interleaves them into 16-bit
// little-endian stereo, the format the Ebitengine audio context expects.
func PCM(phrases ...[]int16) []byte {
	n := 0
	for _, p := range phrases {
		n += len(p)
	}
	out := make([]byte, 0, n*4)
	for _, p := range phrases {
		for _, s := range p {
			lo, hi := byte(s), byte(s>>8)
			out = append(out, lo, hi, lo, hi)
		}
	}
	return out
}
