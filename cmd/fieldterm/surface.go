package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Each terminal cell stands for a block of surface units, so the field keeps
// its pixel-scale speeds and link distance.
const (
	cellW = 8.0
	cellH = 16.0
)

// cellSurface draws the particle field with characters.
type cellSurface struct {
	screen tcell.Screen
	w, h   float64
	dots   map[[2]int]bool
}

func newCellSurface(s tcell.Screen) *cellSurface {
	return &cellSurface{screen: s, dots: map[[2]int]bool{}}
}

func (s *cellSurface) Size() (float64, float64) { return s.w, s.h }
func (s *cellSurface) SetSize(w, h float64)     { s.w, s.h = w, h }

func (s *cellSurface) Clear() {
	s.screen.Clear()
	clear(s.dots)
}

func (s *cellSurface) FillCircle(x, y, r float64, c color.Color) {
	cx, cy := cell(x, y)
	if !s.inside(cx, cy) {
		return
	}
	glyph := '•'
	switch {
	case r < 1.5:
		glyph = '·'
	case r >= 2.5:
		glyph = '●'
	}
	s.dots[[2]int{cx, cy}] = true
	s.screen.SetContent(cx, cy, glyph, nil, style(c))
}

// StrokeLine rasterizes the segment over cells, leaving particle cells alone.
func (s *cellSurface) StrokeLine(x1, y1, x2, y2 float64, c color.Color) {
	st := style(c)
	x0, y0 := cell(x1, y1)
	xe, ye := cell(x2, y2)
	dx, dy := abs(xe-x0), -abs(ye-y0)
	sx, sy := sign(xe-x0), sign(ye-y0)
	e := dx + dy
	for {
		if s.inside(x0, y0) && !s.dots[[2]int{x0, y0}] {
			s.screen.SetContent(x0, y0, '.', nil, st)
		}
		if x0 == xe && y0 == ye {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (s *cellSurface) inside(cx, cy int) bool {
	cols, rows := s.screen.Size()
	return cx >= 0 && cy >= 0 && cx < cols && cy < rows
}

// cell floors so that slightly negative positions land off screen.
func cell(x, y float64) (int, int) {
	return int(math.Floor(x / cellW)), int(math.Floor(y / cellH))
}

// style blends c over a black terminal background.
func style(c color.Color) tcell.Style {
	r, g, b, _ := c.RGBA()
	fg := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
