package effects

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

func testHover() *Hover {
	return NewHover(config.HoverConfig{Scale: 1.02, RotateDeg: 5, DurationMS: 300})
}

func TestHoverEnterLeave(t *testing.T) {
	h := testHover()
	if h.Scale() != 1 || h.RotateX() != 0 {
		t.Fatalf("rest pose: %v %v", h.Scale(), h.RotateX())
	}

	h.SetHovered(true)
	h.Advance(150 * time.Millisecond)
	if s := h.Scale(); s <= 1.01 || s >= 1.02 {
		t.Errorf("mid-tween scale %v, want in (1.01, 1.02)", s)
	}
	h.Advance(150 * time.Millisecond)
	if math.Abs(h.Scale()-1.02) > 1e-12 || math.Abs(h.RotateX()-5) > 1e-12 {
		t.Errorf("hovered pose: %v %v", h.Scale(), h.RotateX())
	}

	h.SetHovered(false)
	h.Advance(time.Second)
	if h.Scale() != 1 || h.RotateX() != 0 {
		t.Errorf("after leave: %v %v", h.Scale(), h.RotateX())
	}
}

func TestHoverReversesFromCurrentPose(t *testing.T) {
	h := testHover()
	h.SetHovered(true)
	h.Advance(100 * time.Millisecond)
	mid := h.Scale()

	h.SetHovered(false)
	h.Advance(time.Millisecond)
	if s := h.Scale(); s > mid || s < 1 {
		t.Errorf("reverse tween jumped: %v (was %v)", s, mid)
	}
}

func TestHoverRepeatedStateIgnored(t *testing.T) {
	h := testHover()
	h.SetHovered(true)
	h.Advance(300 * time.Millisecond)
	h.SetHovered(true)
	h.Advance(10 * time.Millisecond)
	if math.Abs(h.Scale()-1.02) > 1e-12 {
		t.Errorf("scale %v after redundant enter", h.Scale())
	}
}
