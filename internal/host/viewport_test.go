package host

import "testing"

func TestViewportNotifiesOnChange(t *testing.T) {
	v := NewViewport(800, 600)
	calls := 0
	var gotW, gotH float64
	unsubscribe := v.OnResize(func(w, h float64) {
		calls++
		gotW, gotH = w, h
	})

	if v.Set(800, 600) {
		t.Error("Set with the same size reported a change")
	}
	if !v.Set(1024, 768) {
		t.Error("Set with a new size reported no change")
	}
	if calls != 1 || gotW != 1024 || gotH != 768 {
		t.Errorf("listener: calls=%d size=%vx%v", calls, gotW, gotH)
	}

	unsubscribe()
	v.Set(10, 10)
	if calls != 1 {
		t.Errorf("listener called after unsubscribe")
	}
	if w, h := v.Size(); w != 10 || h != 10 {
		t.Errorf("Size: got %vx%v", w, h)
	}
}
