package telemetry

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// Record is one row of the frame timing CSV.
type Record struct {
	Frame     uint64  `csv:"frame"`
	AvgUS     int64   `csv:"avg_frame_us"`
	MinUS     int64   `csv:"min_frame_us"`
	MaxUS     int64   `csv:"max_frame_us"`
	FPS       float64 `csv:"fps"`
	Particles int     `csv:"particles"`
}

// NewRecord converts window stats into a CSV row.
func NewRecord(frame uint64, s FrameStats, particles int) Record {
	return Record{
		Frame:     frame,
		AvgUS:     s.Avg.Microseconds(),
		MinUS:     s.Min.Microseconds(),
		MaxUS:     s.Max.Microseconds(),
		FPS:       s.FPS,
		Particles: particles,
	}
}

// CSVWriter appends Records, writing the header once.
type CSVWriter struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewCSVWriter writes records to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// CreateCSV creates path and returns a writer for it.
// Returns nil if path is empty (output disabled).
func CreateCSV(path string) (*CSVWriter, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &CSVWriter{w: f, closer: f}, nil
}

// Write appends one record. A nil writer discards it.
func (cw *CSVWriter) Write(r Record) error {
	if cw == nil {
		return nil
	}
	records := []Record{r}
	if !cw.headerWritten {
		if err := gocsv.Marshal(records, cw.w); err != nil {
			return fmt.Errorf("writing frame stats: %w", err)
		}
		cw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, cw.w); err != nil {
		return fmt.Errorf("writing frame stats: %w", err)
	}
	return nil
}

// Close closes the underlying file, if any.
func (cw *CSVWriter) Close() error {
	if cw == nil || cw.closer == nil {
		return nil
	}
	return cw.closer.Close()
}

// Clock measures frame durations.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock returns a clock reading the wall time.
func NewClock() *Clock { return &Clock{now: time.Now} }

// Tick returns the time since the previous Tick, or 0 on the first call.
func (c *Clock) Tick() time.Duration {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	return d
}
