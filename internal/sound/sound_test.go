package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

func TestToneLengthAndLevel(t *testing.T) {
	sr := beep.SampleRate(44100)
	s := Tone(sr, 880, 40*time.Millisecond, 0.4)

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] != smp[1] {
				t.Fatal("tone is not mono")
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}

	if want := sr.N(40 * time.Millisecond); total != want {
		t.Errorf("samples: got %d, want %d", total, want)
	}
	if peak > 0.4 || peak < 0.2 {
		t.Errorf("peak %v outside expected range", peak)
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p, err := New(config.SoundConfig{Enabled: false, SampleRate: 44100})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if p.Enabled() {
		t.Error("disabled player reports enabled")
	}
	p.Click()

	var nilPlayer *Player
	nilPlayer.Click()
}
