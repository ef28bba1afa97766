// Command skillchart writes the skills chart to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iburimskiy/portfolio-visual/internal/config"
	"github.com/iburimskiy/portfolio-visual/internal/skills"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	out := flag.String("o", "skills.png", "Output PNG path")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 500, "Image height in pixels")
	flag.Parse()

	if err := run(*configPath, *out, *width, *height); err != nil {
		slog.Error("failed to export skills chart", "error", err)
		os.Exit(1)
	}
	slog.Info("skills_chart_written", "path", *out, "width", *width, "height", *height)
}

func run(configPath, out string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	accent, err := config.ParseColor(cfg.Particles.Accent)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := skills.New(cfg.Skills).ExportPNG(f, width, height, accent); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
