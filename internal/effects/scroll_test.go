package effects

import "testing"

func TestScrollerSettlesOnTarget(t *testing.T) {
	s := NewScroller(60, 6, 1)
	s.SetLimit(2000)
	s.ScrollTo(800)

	for i := 0; i < 600 && !s.Settled(); i++ {
		s.Update()
		if s.Pos() > 800.5 {
			t.Fatalf("critically damped spring overshot: %v", s.Pos())
		}
	}
	if !s.Settled() || s.Pos() != 800 {
		t.Errorf("not settled: pos=%v", s.Pos())
	}
}

func TestScrollerClamps(t *testing.T) {
	s := NewScroller(60, 6, 1)
	s.SetLimit(500)

	s.ScrollTo(900)
	if s.Target() != 500 {
		t.Errorf("target %v, want 500", s.Target())
	}
	s.ScrollBy(-2000)
	if s.Target() != 0 {
		t.Errorf("target %v, want 0", s.Target())
	}
	s.ScrollTo(400)
	s.SetLimit(100)
	if s.Target() != 100 {
		t.Errorf("target after shrinking limit %v, want 100", s.Target())
	}
}
