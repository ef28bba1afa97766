package effects

import (
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

type typePhase int

const (
	phaseTyping typePhase = iota
	phaseHolding
	phaseDeleting
	phaseDone
)

// Typewriter types each string one character at a time, holds it, deletes
// it and moves on to the next, looping when configured to.
type Typewriter struct {
	strings   [][]rune
	typeSpeed time.Duration
	backSpeed time.Duration
	backDelay time.Duration
	blink     time.Duration
	loop      bool
	cursor    string

	idx     int
	shown   int
	phase   typePhase
	acc     time.Duration
	elapsed time.Duration
}

// NewTypewriter builds a typewriter from configuration.
func NewTypewriter(c config.TypewriterConfig) *Typewriter {
	tw := &Typewriter{
		typeSpeed: atLeast(config.Millis(c.TypeSpeedMS), time.Millisecond),
		backSpeed: atLeast(config.Millis(c.BackSpeedMS), time.Millisecond),
		backDelay: atLeast(config.Millis(c.BackDelayMS), time.Millisecond),
		blink:     atLeast(config.Millis(c.CursorBlinkMS), 2*time.Millisecond),
		loop:      c.Loop,
		cursor:    c.Cursor,
	}
	for _, s := range c.Strings {
		tw.strings = append(tw.strings, []rune(s))
	}
	if len(tw.strings) == 0 {
		tw.phase = phaseDone
	}
	return tw
}

// Advance moves the animation forward by dt.
func (tw *Typewriter) Advance(dt time.Duration) {
	tw.elapsed += dt
	if tw.phase == phaseDone {
		return
	}
	tw.acc += dt

	for {
		cur := tw.strings[tw.idx]
		switch tw.phase {
		case phaseTyping:
			if tw.shown >= len(cur) {
				if !tw.loop && tw.idx == len(tw.strings)-1 {
					tw.phase = phaseDone
					tw.acc = 0
					return
				}
				tw.phase = phaseHolding
				continue
			}
			if tw.acc < tw.typeSpeed {
				return
			}
			tw.acc -= tw.typeSpeed
			tw.shown++
		case phaseHolding:
			if tw.acc < tw.backDelay {
				return
			}
			tw.acc -= tw.backDelay
			tw.phase = phaseDeleting
		case phaseDeleting:
			if tw.shown == 0 {
				tw.idx = (tw.idx + 1) % len(tw.strings)
				tw.phase = phaseTyping
				continue
			}
			if tw.acc < tw.backSpeed {
				return
			}
			tw.acc -= tw.backSpeed
			tw.shown--
		default:
			return
		}
	}
}

// Text returns the characters currently on screen.
func (tw *Typewriter) Text() string {
	if len(tw.strings) == 0 {
		return ""
	}
	return string(tw.strings[tw.idx][:tw.shown])
}

// Index returns the position of the string being typed.
func (tw *Typewriter) Index() int { return tw.idx }

// CursorVisible reports the blink state. The cursor stays solid while
// characters are being added or removed.
func (tw *Typewriter) CursorVisible() bool {
	if tw.phase == phaseTyping || tw.phase == phaseDeleting {
		return true
	}
	return tw.elapsed%tw.blink < tw.blink/2
}

// Display returns the text with the cursor appended when visible.
func (tw *Typewriter) Display() string {
	if tw.CursorVisible() {
		return tw.Text() + tw.cursor
	}
	return tw.Text()
}

func atLeast(d, floor time.Duration) time.Duration {
	if d < floor {
		return floor
	}
	return d
}
