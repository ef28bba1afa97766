package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageSurface is an offscreen ebiten image the particle field draws into.
// The image is (re)allocated lazily on the first write after a size change.
type imageSurface struct {
	w, h float64
	img  *ebiten.Image
}

func (s *imageSurface) Size() (float64, float64) { return s.w, s.h }

func (s *imageSurface) SetSize(w, h float64) {
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

func (s *imageSurface) image() *ebiten.Image {
	if s.img == nil {
		s.img = ebiten.NewImage(max(1, int(s.w)), max(1, int(s.h)))
	}
	return s.img
}

func (s *imageSurface) Clear() { s.image().Clear() }

func (s *imageSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.image(), float32(x), float32(y), float32(r), c, true)
}

func (s *imageSurface) StrokeLine(x1, y1, x2, y2 float64, c color.Color) {
	vector.StrokeLine(s.image(), float32(x1), float32(y1), float32(x2), float32(y2), 1, c, true)
}

// Image returns the current frame, or nil before anything was drawn.
func (s *imageSurface) Image() *ebiten.Image { return s.img }
