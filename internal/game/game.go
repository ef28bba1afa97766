// Package game hosts the portfolio page in an ebiten window: it adapts the
// window to the particle animator's host contracts and composes the page's
// effects around it.
package game

import (
	"context"
	"errors"
	"image/color"
	"log/slog"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/portfolio-visual/internal/config"
	"github.com/iburimskiy/portfolio-visual/internal/contact"
	"github.com/iburimskiy/portfolio-visual/internal/effects"
	"github.com/iburimskiy/portfolio-visual/internal/host"
	"github.com/iburimskiy/portfolio-visual/internal/nav"
	"github.com/iburimskiy/portfolio-visual/internal/particles"
	"github.com/iburimskiy/portfolio-visual/internal/skills"
	"github.com/iburimskiy/portfolio-visual/internal/sound"
	"github.com/iburimskiy/portfolio-visual/internal/telemetry"
)

// TPS is the update rate; every effect advances by one tick per Update.
const TPS = 60

const tick = time.Second / TPS

// Deps are the optional collaborators of a Game. Nil fields disable the
// matching feature.
type Deps struct {
	Rand    *rand.Rand
	Sound   *sound.Player
	Dialogs contact.Dialogs
	Drafts  *contact.DraftStore
	Perf    *telemetry.CSVWriter
}

// Game is the ebiten game hosting the page.
type Game struct {
	cfg *config.Config

	// host side of the animator
	frames  host.FrameQueue
	view    *host.Viewport
	surface *imageSurface
	field   *particles.Animator

	// page
	timers  effects.Timers
	page    *page
	typer   *effects.Typewriter
	reveal  *effects.Reveal
	radar   *skills.Radar
	loader  *effects.Loader
	glow    *effects.Glow
	scroll  *effects.Scroller
	menu    *nav.Menu
	brand   string
	accent  color.RGBA
	bg      color.RGBA
	face    text.Face
	white   *ebiten.Image
	sound   *sound.Player
	radarOn bool

	// contact form, run off the game goroutine
	form       *contact.Form
	formDone   chan error
	formBusy   bool
	formCancel context.CancelFunc

	// telemetry
	clock *telemetry.Clock
	perf  *telemetry.Collector
	csv   *telemetry.CSVWriter

	// input edge detection
	prevKey map[ebiten.Key]bool
	pressed target

	ticks   uint64
	quit    atomic.Bool
	closed  bool
	lastErr error
}

// New builds the page for a window of the configured size and starts the
// particle field.
func New(cfg *config.Config, deps Deps) (*Game, error) {
	accent, err := config.ParseColor(cfg.Particles.Accent)
	if err != nil {
		return nil, err
	}
	bg, err := config.ParseColor(cfg.Window.Background)
	if err != nil {
		return nil, err
	}
	opts, err := particles.FromConfig(cfg.Particles, deps.Rand)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		view:     host.NewViewport(float64(cfg.Window.Width), float64(cfg.Window.Height)),
		surface:  &imageSurface{},
		page:     newPage(len(cfg.Skills.Axes), cfg.Hover),
		typer:    effects.NewTypewriter(cfg.Typewriter),
		radar:    skills.New(cfg.Skills),
		scroll:   effects.NewScroller(TPS, cfg.Scroll.Frequency, cfg.Scroll.Damping),
		menu:     nav.NewMenu(cfg.Nav.Links),
		accent:   accent,
		bg:       bg,
		face:     text.NewGoXFace(basicfont.Face7x13),
		sound:    deps.Sound,
		formDone: make(chan error, 1),
		clock:    telemetry.NewClock(),
		perf:     telemetry.NewCollector(cfg.Telemetry.WindowFrames),
		csv:      deps.Perf,
		prevKey:  map[ebiten.Key]bool{},
	}
	g.brand, _, _ = strings.Cut(cfg.Window.Title, " - ")
	g.reveal = effects.NewReveal(cfg.Reveal, &g.timers)
	g.loader = effects.NewLoader(cfg.Loader, &g.timers)
	g.glow = effects.NewGlow(cfg.Glow, &g.timers)
	if deps.Dialogs != nil {
		g.form = contact.NewForm(deps.Dialogs, deps.Drafts)
	}

	for _, s := range g.page.sections {
		g.reveal.Observe(s.el)
	}
	g.relayout()

	g.field = particles.New(g.surface, g.view, &g.frames, opts)
	g.field.Start()
	slog.Info("animator_started", "count", len(g.field.Particles()), "state", g.field.State())
	return g, nil
}

// Close tears the page down: the particle loop and every page timer stop,
// and a running contact form is cancelled. Safe to call more than once.
func (g *Game) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.field.Stop()
	g.timers.StopAll()
	if g.formCancel != nil {
		g.formCancel()
	}
	slog.Info("page_teardown", "frames", g.field.Frames(), "uptime", formatDuration(g.uptime()))
	return g.csv.Close()
}

// RequestQuit ends the game at the next Update. It may be called from any
// goroutine.
func (g *Game) RequestQuit() { g.quit.Store(true) }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) || g.quit.Load() {
		return ebiten.Termination
	}

	g.ticks++
	g.timers.Advance(tick)
	g.loader.Advance(tick)
	g.typer.Advance(tick)

	_, vh := g.view.Size()
	if !g.loader.Visible() {
		g.handlePointer()

		if _, dy := ebiten.Wheel(); dy != 0 {
			g.scroll.ScrollBy(-dy * g.cfg.Scroll.WheelStep)
		}
		switch {
		case justPressed(ebiten.KeyPageDown), justPressed(ebiten.KeySpace):
			g.scroll.ScrollBy(vh * 0.9)
		case justPressed(ebiten.KeyPageUp):
			g.scroll.ScrollBy(-vh * 0.9)
		case justPressed(ebiten.KeyHome):
			g.scroll.ScrollTo(0)
		case justPressed(ebiten.KeyEnd):
			g.scroll.ScrollTo(g.page.height)
		}
	}

	g.scroll.Update()
	g.reveal.Update(g.scroll.Pos(), vh, tick)
	if g.page.skills.el.Revealed() {
		if !g.radarOn {
			g.radarOn = true
			g.radar.Restart()
		}
		g.radar.Advance(tick)
	}
	for _, c := range g.page.cards {
		c.hover.Advance(tick)
	}

	g.pollContact()
	g.recordFrame()
	return nil
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	py := y + g.scroll.Pos()

	for _, c := range g.page.cards {
		c.hover.SetHovered(y >= navHeight && c.rect().contains(x, py))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.page.hitTest(g.menu, x, y, g.scroll.Pos(), g.mobile())
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		t := g.page.hitTest(g.menu, x, y, g.scroll.Pos(), g.mobile())
		if t == g.pressed {
			g.activate(t)
		}
		g.pressed = target{}
	}
}

func (g *Game) activate(t target) {
	switch t.kind {
	case toggleTarget:
		g.menu.Toggle()
		g.sound.Click()
		slog.Debug("menu_toggled", "open", g.menu.Open())
	case linkTarget:
		g.follow(t.href)
	case sendTarget:
		g.startContact()
	}
}

// follow scrolls to the section a link points at. Links to unknown targets
// are ignored.
func (g *Game) follow(href string) {
	id, ok := nav.Resolve(href)
	s := g.page.section(id)
	if !ok || s == nil {
		slog.Debug("nav_target_unknown", "href", href)
		return
	}
	g.menu.Close()
	g.sound.Click()
	g.scroll.ScrollTo(scrollTarget(s))
}

func (g *Game) startContact() {
	if g.form == nil || g.formBusy {
		return
	}
	g.sound.Click()
	ctx, cancel := context.WithCancel(context.Background())
	g.formCancel = cancel
	g.formBusy = true
	go func() {
		_, err := g.form.Run(ctx)
		g.formDone <- err
	}()
}

func (g *Game) pollContact() {
	select {
	case err := <-g.formDone:
		g.formBusy = false
		g.formCancel()
		g.formCancel = nil
		switch {
		case err == nil:
			g.lastErr = nil
		case errors.Is(err, contact.ErrCanceled), errors.Is(err, context.Canceled):
			slog.Info("contact_form_canceled")
		default:
			g.lastErr = err
			slog.Warn("contact_form_failed", "error", err)
		}
	default:
	}
}

func (g *Game) recordFrame() {
	g.perf.Record(g.clock.Tick())
	if !g.perf.Full() {
		return
	}
	stats := g.perf.Stats()
	g.perf.Reset()
	slog.Debug("frame_stats", "avg", stats.Avg, "max", stats.Max, "fps", stats.FPS)
	if err := g.csv.Write(telemetry.NewRecord(g.field.Frames(), stats, len(g.field.Particles()))); err != nil {
		g.lastErr = err
	}
}

// Layout follows the window size so the page reflows on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if g.view.Set(float64(w), float64(h)) {
		g.relayout()
	}
	return w, h
}

func (g *Game) relayout() {
	w, h := g.view.Size()
	g.page.layout(w, h, g.mobile())
	g.scroll.SetLimit(g.page.height - h)
	if !g.mobile() {
		g.menu.Close()
	}
}

func (g *Game) mobile() bool {
	w, _ := g.view.Size()
	return nav.ShowToggle(int(w), g.cfg.Nav.Breakpoint)
}

func (g *Game) uptime() time.Duration { return time.Duration(g.ticks) * tick }
