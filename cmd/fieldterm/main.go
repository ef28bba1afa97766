// Command fieldterm runs the particle background in a terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/portfolio-visual/internal/config"
	"github.com/iburimskiy/portfolio-visual/internal/host"
	"github.com/iburimskiy/portfolio-visual/internal/particles"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	fps := flag.Int("fps", 30, "Frames per second")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	opts, err := particles.FromConfig(cfg.Particles, rand.New(rand.NewSource(rngSeed)))
	if err != nil {
		slog.Error("invalid particle settings", "error", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("failed to create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		slog.Error("failed to init screen", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	frames := run(screen, opts, max(*fps, 1))
	screen.Fini()

	// Logging waits until the terminal is restored.
	slog.Info("fieldterm_done", "seed", rngSeed, "frames", frames, "elapsed", time.Since(start).Round(time.Millisecond))
}

// run animates until a quit key and returns the number of frames drawn.
func run(screen tcell.Screen, opts particles.Options, fps int) uint64 {
	cols, rows := screen.Size()
	view := host.NewViewport(float64(cols)*cellW, float64(rows)*cellH)
	var queue host.FrameQueue

	field := particles.New(newCellSurface(screen), view, &queue, opts)
	field.Start()
	defer field.Stop()

	// Resize and key events reach the render loop through the channel, so
	// the animator is only touched from this goroutine.
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return field.Frames()
				}
			case *tcell.EventResize:
				cols, rows := ev.Size()
				view.Set(float64(cols)*cellW, float64(rows)*cellH)
				screen.Sync()
			}

		case <-ticker.C:
			if queue.Run() == 0 {
				continue
			}
			drawStatus(screen, fmt.Sprintf(" %d particles | frame %d | q to quit ", len(field.Particles()), field.Frames()))
			screen.Show()
		}
	}
}

func drawStatus(screen tcell.Screen, s string) {
	st := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	_, rows := screen.Size()
	for i, r := range []rune(s) {
		screen.SetContent(i, rows-1, r, nil, st)
	}
}
