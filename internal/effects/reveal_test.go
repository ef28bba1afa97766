package effects

import (
	"testing"
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

func testRevealConfig() config.RevealConfig {
	return config.RevealConfig{
		Threshold:    0.1,
		BottomMargin: 50,
		Offset:       30,
		StaggerMS:    200,
		TransitionMS: 600,
	}
}

func TestRevealRatio(t *testing.T) {
	r := NewReveal(testRevealConfig(), &Timers{})
	el := &Element{Top: 1000, Height: 200}

	tests := []struct {
		scrollY, viewH, want float64
	}{
		{0, 800, 0},      // below the fold
		{0, 1070, 0.1},   // 1020 visible bottom -> 20px of 200
		{300, 800, 0.25}, // bottom edge at 1050 -> 50px
		{900, 800, 1},    // fully inside
		{1300, 800, 0},   // scrolled past
	}
	for _, tt := range tests {
		got := r.Ratio(el, tt.scrollY, tt.viewH)
		if d := got - tt.want; d > 1e-9 || d < -1e-9 {
			t.Errorf("Ratio(scroll=%v, view=%v) = %v, want %v", tt.scrollY, tt.viewH, got, tt.want)
		}
	}
}

func TestRevealTriggersAtThreshold(t *testing.T) {
	r := NewReveal(testRevealConfig(), &Timers{})
	el := &Element{ID: "about", Top: 1000, Height: 200}
	r.Observe(el)

	r.Update(0, 1069, 0) // 19px visible
	if el.Revealed() {
		t.Fatal("revealed below threshold")
	}
	r.Update(0, 1070, 0)
	if !el.Revealed() {
		t.Fatal("not revealed at threshold")
	}
	if r.Pending() != 0 {
		t.Errorf("Pending: got %d, want 0", r.Pending())
	}

	// Reveal is one-way.
	r.Update(0, 100, 0)
	if !el.Revealed() {
		t.Error("element hidden again after scrolling away")
	}
}

func TestRevealTransition(t *testing.T) {
	r := NewReveal(testRevealConfig(), &Timers{})
	el := &Element{Top: 0, Height: 100}
	r.Observe(el)

	r.Update(0, 800, 0)
	if r.Opacity(el) != 0 || r.OffsetY(el) != 30 {
		t.Fatalf("start pose: opacity %v offset %v", r.Opacity(el), r.OffsetY(el))
	}
	r.Update(0, 800, 300*time.Millisecond)
	if o := r.Opacity(el); o <= 0.5 || o >= 1 {
		t.Errorf("mid opacity %v, want in (0.5,1) for ease-out", o)
	}
	r.Update(0, 800, 300*time.Millisecond)
	if r.Opacity(el) != 1 || r.OffsetY(el) != 0 {
		t.Errorf("end pose: opacity %v offset %v", r.Opacity(el), r.OffsetY(el))
	}
}

func TestRevealStaggersItems(t *testing.T) {
	timers := &Timers{}
	r := NewReveal(testRevealConfig(), timers)
	items := []*Element{
		{ID: "a", Top: 5000, Height: 10},
		{ID: "b", Top: 5000, Height: 10},
		{ID: "c", Top: 5000, Height: 10},
	}
	section := &Element{ID: "skills", Top: 0, Height: 400, Items: items}
	r.Observe(section)

	r.Update(0, 800, 0)
	if !section.Revealed() {
		t.Fatal("section not revealed")
	}

	want := [][3]bool{
		{true, false, false}, // t=0
		{true, false, false}, // t=199
		{true, true, false},  // t=200
		{true, true, true},   // t=400
	}
	advances := []time.Duration{0, 199 * time.Millisecond, time.Millisecond, 200 * time.Millisecond}
	for step, dt := range advances {
		timers.Advance(dt)
		for i, it := range items {
			if it.Revealed() != want[step][i] {
				t.Errorf("step %d item %s revealed=%v, want %v", step, it.ID, it.Revealed(), want[step][i])
			}
		}
	}
}

func TestRevealItemObservedDirectly(t *testing.T) {
	r := NewReveal(testRevealConfig(), &Timers{})
	item := &Element{ID: "item", Top: 0, Height: 50}
	section := &Element{ID: "section", Top: 0, Height: 100000, Items: []*Element{item}}
	r.Observe(section)

	r.Update(0, 800, 0)
	if section.Revealed() {
		t.Fatal("tall section should stay below threshold")
	}
	if !item.Revealed() {
		t.Error("visible item not revealed on its own")
	}
}
