// Package host holds the pieces every animator host shares: a frame queue
// pumped by the host loop and a viewport that reports size changes.
package host

// FrameQueue collects callbacks requested for the next repaint. The host
// loop runs them once per frame, in request order.
type FrameQueue struct {
	next    uint64
	pending []frameRequest
	running []frameRequest
}

type frameRequest struct {
	id uint64
	fn func()
}

// RequestFrame queues fn for the next Run.
func (q *FrameQueue) RequestFrame(fn func()) func() {
	q.next++
	id := q.next
	q.pending = append(q.pending, frameRequest{id: id, fn: fn})
	return func() { q.cancel(id) }
}

func (q *FrameQueue) cancel(id uint64) {
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Run executes the callbacks queued so far and returns how many ran.
// Requests made while running are kept for the following frame.
func (q *FrameQueue) Run() int {
	q.running, q.pending = q.pending, nil
	n := 0
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			fn()
			n++
		}
	}
	q.running = nil
	return n
}

// Len returns the number of queued callbacks.
func (q *FrameQueue) Len() int { return len(q.pending) }
