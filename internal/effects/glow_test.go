package effects

import (
	"image/color"
	"testing"
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

func TestGlowCycles(t *testing.T) {
	timers := &Timers{}
	g := NewGlow(config.GlowConfig{IntervalMS: 50, Step: 1}, timers)

	timers.Advance(500 * time.Millisecond)
	if g.Hue() != 10 {
		t.Errorf("Hue after 500ms: got %d, want 10", g.Hue())
	}
	timers.Advance(350 * 50 * time.Millisecond)
	if g.Hue() != 0 {
		t.Errorf("Hue after full turn: got %d, want 0", g.Hue())
	}
}

func TestGlowStopsWithTimers(t *testing.T) {
	timers := &Timers{}
	glows := []*Glow{
		NewGlow(config.GlowConfig{IntervalMS: 50}, timers),
		NewGlow(config.GlowConfig{IntervalMS: 50}, timers),
	}
	timers.Advance(100 * time.Millisecond)
	timers.StopAll()
	timers.Advance(time.Second)

	for i, g := range glows {
		if g.Running() {
			t.Errorf("glow %d still running", i)
		}
		if g.Hue() != 2 {
			t.Errorf("glow %d hue %d, want 2", i, g.Hue())
		}
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h    float64
		want color.RGBA
	}{
		{0, color.RGBA{255, 0, 0, 255}},
		{120, color.RGBA{0, 255, 0, 255}},
		{240, color.RGBA{0, 0, 255, 255}},
		{360, color.RGBA{255, 0, 0, 255}},
		{-120, color.RGBA{0, 0, 255, 255}},
		{60, color.RGBA{255, 255, 0, 255}},
	}
	for _, tt := range tests {
		if got := HSV(tt.h, 1, 1); got != tt.want {
			t.Errorf("HSV(%v,1,1) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestEaseOutCubicClamps(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.t); got != tt.want {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
