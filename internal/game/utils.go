package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/effects"
)

// fade scales a colour's opacity by a in [0,1]. color.RGBA is
// premultiplied, so every channel is scaled.
func fade(c color.RGBA, a float64) color.RGBA {
	a = effects.Clamp01(a) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(255*a + 0.5),
	}
}

// formatDuration renders page uptime as MM:SS, or H:MM:SS past the hour.
func formatDuration(d time.Duration) string {
	s := int(max(d, 0) / time.Second)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
