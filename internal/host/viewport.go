package host

// Viewport is the host view size, in surface units.
type Viewport struct {
	w, h      float64
	next      int
	listeners map[int]func(w, h float64)
}

// NewViewport creates a viewport of the given size.
func NewViewport(w, h float64) *Viewport {
	return &Viewport{w: w, h: h, listeners: map[int]func(w, h float64){}}
}

// Size returns the current size.
func (v *Viewport) Size() (float64, float64) { return v.w, v.h }

// OnResize registers fn and returns a function removing it.
func (v *Viewport) OnResize(fn func(w, h float64)) func() {
	id := v.next
	v.next++
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

// Set records a new size and notifies listeners when it changed.
func (v *Viewport) Set(w, h float64) bool {
	if w == v.w && h == v.h {
		return false
	}
	v.w, v.h = w, h
	for _, fn := range v.listeners {
		fn(w, h)
	}
	return true
}
