package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.png")
	if err := run("", out, 600, 360); err != nil {
		t.Fatalf("run error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("not a PNG: %v", err)
	}
	if cfg.Width != 600 || cfg.Height != 360 {
		t.Errorf("size: got %dx%d, want 600x360", cfg.Width, cfg.Height)
	}
}

func TestRunRejectsBadSize(t *testing.T) {
	if err := run("", filepath.Join(t.TempDir(), "x.png"), 0, 100); err == nil {
		t.Error("expected error for zero width")
	}
}
