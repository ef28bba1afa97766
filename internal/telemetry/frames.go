// Package telemetry tracks frame timing and writes it out as CSV.
package telemetry

import "time"

// FrameStats summarizes the frames in the rolling window.
type FrameStats struct {
	Frames int
	Avg    time.Duration
	Min    time.Duration
	Max    time.Duration
	FPS    float64
}

// Collector keeps the last N frame durations.
type Collector struct {
	samples []time.Duration
	next    int
	count   int
}

// NewCollector creates a collector averaging over window frames.
func NewCollector(window int) *Collector {
	if window < 1 {
		window = 60
	}
	return &Collector{samples: make([]time.Duration, window)}
}

// Record adds one frame duration.
func (c *Collector) Record(d time.Duration) {
	c.samples[c.next] = d
	c.next = (c.next + 1) % len(c.samples)
	if c.count < len(c.samples) {
		c.count++
	}
}

// Full reports whether a whole window has been recorded since the last Reset.
func (c *Collector) Full() bool { return c.count == len(c.samples) }

// Reset drops all samples.
func (c *Collector) Reset() {
	c.next, c.count = 0, 0
}

// Stats returns the window summary.
func (c *Collector) Stats() FrameStats {
	if c.count == 0 {
		return FrameStats{}
	}
	s := FrameStats{Frames: c.count, Min: c.samples[0], Max: c.samples[0]}
	var total time.Duration
	for _, d := range c.samples[:c.count] {
		total += d
		s.Min = min(s.Min, d)
		s.Max = max(s.Max, d)
	}
	s.Avg = total / time.Duration(c.count)
	if s.Avg > 0 {
		s.FPS = float64(time.Second) / float64(s.Avg)
	}
	return s
}
