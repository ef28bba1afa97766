// Package sound plays the short UI click tones.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

// Player plays click tones. A disabled Player is silent.
type Player struct {
	enabled bool
	sr      beep.SampleRate
	hz      float64
	dur     time.Duration
	volume  float64
}

// New initializes the speaker. On failure it returns a silent Player along
// with the error, so callers can carry on without sound.
func New(c config.SoundConfig) (*Player, error) {
	p := &Player{
		sr:     beep.SampleRate(c.SampleRate),
		hz:     c.ClickHz,
		dur:    config.Millis(c.ClickMS),
		volume: c.Volume,
	}
	if !c.Enabled {
		return p, nil
	}
	if p.sr <= 0 {
		p.sr = 44100
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
		return p, fmt.Errorf("initializing speaker: %w", err)
	}
	p.enabled = true
	return p, nil
}

// Enabled reports whether clicks are audible.
func (p *Player) Enabled() bool { return p != nil && p.enabled }

// Click plays one tone without blocking.
func (p *Player) Click() {
	if !p.Enabled() {
		return
	}
	speaker.Play(Tone(p.sr, p.hz, p.dur, p.volume))
}

// Tone returns a sine burst of the given length that decays linearly to
// silence, so it ends without a pop.
func Tone(sr beep.SampleRate, hz float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * hz / float64(sr)
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 0.0
			if total > 0 {
				env = 1 - float64(pos)/float64(total)
			}
			v := volume * env * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	}))
}
