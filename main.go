package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/iburimskiy/portfolio-visual/internal/config"
	"github.com/iburimskiy/portfolio-visual/internal/contact"
	"github.com/iburimskiy/portfolio-visual/internal/game"
	"github.com/iburimskiy/portfolio-visual/internal/sound"
	"github.com/iburimskiy/portfolio-visual/internal/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed for the particle field (0 = time-based)")
	perfCSV := flag.String("perf-csv", "", "Write frame timing rows to this CSV file")
	logJSON := flag.Bool("log-json", false, "Log as JSON instead of text")
	noSound := flag.Bool("no-sound", false, "Disable UI click sounds")
	flag.Parse()

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if *logJSON {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *noSound {
		cfg.Sound.Enabled = false
	}
	player, err := sound.New(cfg.Sound)
	if err != nil {
		slog.Warn("sound_disabled", "error", err)
	}

	// Drafts fall back to memory when there is no writable data dir.
	var drafts *contact.DraftStore
	dataManager, err := gdata.Open(gdata.Config{AppName: config.AppName})
	if err != nil {
		slog.Warn("draft_storage_unavailable", "error", err)
		drafts = contact.NewDraftStore(nil)
	} else {
		drafts = contact.NewDraftStore(dataManager)
	}

	perf, err := telemetry.CreateCSV(*perfCSV)
	if err != nil {
		slog.Error("failed to create perf csv", "error", err)
		os.Exit(1)
	}

	g, err := game.New(cfg, game.Deps{
		Rand:    rand.New(rand.NewSource(rngSeed)),
		Sound:   player,
		Dialogs: contact.ZenityDialogs{},
		Drafts:  drafts,
		Perf:    perf,
	})
	if err != nil {
		slog.Error("failed to build page", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.TPS)

	slog.Info("starting", "seed", rngSeed, "width", cfg.Window.Width, "height", cfg.Window.Height, "sound", player.Enabled())

	go func() {
		<-ctx.Done()
		// Interrupts end the run like Esc does.
		g.RequestQuit()
	}()

	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		slog.Warn("failed to close page", "error", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		slog.Error("game exited", "error", runErr)
		os.Exit(1)
	}
}
