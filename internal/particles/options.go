package particles

import (
	"math/rand"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

// FromConfig builds Options from the particles section of the configuration.
func FromConfig(c config.ParticlesConfig, rng *rand.Rand) (Options, error) {
	accent, err := config.ParseColor(c.Accent)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Count:        c.Count,
		MaxSpeed:     c.MaxSpeed,
		MinRadius:    c.MinRadius,
		MaxRadius:    c.MaxRadius,
		MinOpacity:   c.MinOpacity,
		MaxOpacity:   c.MaxOpacity,
		LinkDistance: c.LinkDistance,
		LinkAlpha:    c.LinkAlpha,
		Accent:       accent,
		Rand:         rng,
	}, nil
}
