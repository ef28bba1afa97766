package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-visual/internal/effects"
	"github.com/iburimskiy/portfolio-visual/internal/skills"
)

var (
	white    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	muted    = color.RGBA{R: 156, G: 163, B: 175, A: 255}
	panelBg  = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	border   = color.RGBA{R: 55, G: 65, B: 81, A: 255}
	barBg    = color.RGBA{A: 230}
	cardGlow = 0.6
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	// The particle field repaints inside the frame callbacks.
	g.frames.Run()
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}

	g.drawHome(screen)
	g.drawAbout(screen)
	g.drawSkills(screen)
	g.drawProjects(screen)
	g.drawContact(screen)
	g.drawNav(screen)
	g.drawLoader(screen)

	// Draw status
	status := fmt.Sprintf("FPS %.0f | %s", ebiten.ActualFPS(), formatDuration(g.uptime()))
	if g.formBusy {
		status += " | Contact form open"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	_, h := g.view.Size()
	ebitenutil.DebugPrintAt(screen, status, 12, int(h)-20)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(effects.Clamp01(alpha)))
	text.Draw(dst, s, g.face, op)
}

func (g *Game) textWidth(s string, scale float64) float64 {
	return text.Advance(s, g.face) * scale
}

// screenY converts a page coordinate for an element, applying its reveal
// offset.
func (g *Game) screenY(el *effects.Element, y float64) float64 {
	return y - g.scroll.Pos() + g.reveal.OffsetY(el)
}

func (g *Game) visible(top, height float64) bool {
	_, vh := g.view.Size()
	y := top - g.scroll.Pos()
	return y+height >= 0 && y <= vh
}

func (g *Game) drawHeader(screen *ebiten.Image, s *section) {
	a := g.reveal.Opacity(s.el)
	y := g.screenY(s.el, s.el.Top+margin)
	g.drawText(screen, s.title, margin, y, 3, white, a)
	vector.DrawFilledRect(screen, float32(margin), float32(y+48), 64, 3, fade(g.accent, a), true)
}

func (g *Game) drawHome(screen *ebiten.Image) {
	s := g.page.home
	if !g.visible(s.el.Top, s.el.Height) {
		return
	}
	w, _ := g.view.Size()
	a := g.reveal.Opacity(s.el)
	top := g.screenY(s.el, s.el.Top)
	mid := top + s.el.Height*0.32

	scale := 5.0
	if g.mobile() {
		scale = 3
	}
	hello := "Hi, I'm"
	g.drawText(screen, hello, margin, mid-40, 2, muted, a)

	// Glow: a hue-cycled copy behind the name.
	glow := g.glow.Color()
	for _, d := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
		g.drawText(screen, g.brand, margin+d[0], mid+d[1], scale, glow, 0.35*a)
	}
	g.drawText(screen, g.brand, margin, mid, scale, white, a)

	line := g.typer.Display()
	g.drawText(screen, line, margin, mid+scale*13+24, 2, g.accent, a)

	r := g.page.cta
	y := g.screenY(s.el, r.y)
	vector.DrawFilledRect(screen, float32(r.x), float32(y), float32(r.w), float32(r.h), fade(g.accent, a), true)
	label := "View Projects"
	g.drawText(screen, label, r.x+(r.w-g.textWidth(label, 1))/2, y+(r.h-13)/2, 1, color.Black, a)

	hint := "scroll or use PgDn"
	g.drawText(screen, hint, (w-g.textWidth(hint, 1))/2, top+s.el.Height-margin, 1, muted, a*0.8)
}

func (g *Game) drawAbout(screen *ebiten.Image) {
	s := g.page.about
	if !g.visible(s.el.Top, s.el.Height) {
		return
	}
	g.drawHeader(screen, s)
	a := g.reveal.Opacity(s.el)
	y := g.screenY(s.el, s.el.Top+headerHeight+margin/2)
	for i, l := range aboutText {
		g.drawText(screen, l, margin, y+float64(i)*lineHeight*1.4, 1.4, muted, a)
	}
}

func (g *Game) drawSkills(screen *ebiten.Image) {
	s := g.page.skills
	if !g.visible(s.el.Top, s.el.Height) {
		return
	}
	g.drawHeader(screen, s)
	a := g.reveal.Opacity(s.el)

	r := g.page.radar
	cx, cy := r.center()
	cy = g.screenY(s.el, cy)
	g.drawRadar(screen, cx, cy, r.w/2-32, a)

	for i, it := range g.page.skillItems {
		axis := g.radar.Axes[i]
		ia := g.reveal.Opacity(it.el)
		y := g.screenY(it.el, it.el.Top)
		g.drawText(screen, axis.Name, it.x, y, 1, white, ia)
		pct := fmt.Sprintf("%.0f%%", axis.Value)
		g.drawText(screen, pct, it.x+it.w-g.textWidth(pct, 1), y, 1, muted, ia)
		bar := y + 20
		vector.DrawFilledRect(screen, float32(it.x), float32(bar), float32(it.w), 6, fade(border, ia), true)
		fill := it.w * axis.Value / g.radar.Max * it.el.Progress()
		vector.DrawFilledRect(screen, float32(it.x), float32(bar), float32(fill), 6, fade(g.accent, ia), true)
	}
}

func (g *Game) drawRadar(screen *ebiten.Image, cx, cy, radius, alpha float64) {
	if radius <= 0 || len(g.radar.Axes) < 3 {
		return
	}
	grid := fade(border, alpha)
	for k := 1; k <= g.radar.Splits; k++ {
		strokePolygon(screen, g.radar.Ring(k, cx, cy, radius), 1, grid)
	}
	for i, ax := range g.radar.Axes {
		p := g.radar.Spoke(i, cx, cy, radius)
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(p.X), float32(p.Y), 1, grid, true)

		l := g.radar.Spoke(i, cx, cy, radius+18)
		tw := g.textWidth(ax.Name, 1)
		g.drawText(screen, ax.Name, l.X-tw/2, l.Y-6, 1, muted, alpha)
	}

	poly := g.radar.Polygon(cx, cy, radius)
	g.fillPolygon(screen, poly, fade(g.accent, 0.3*alpha))
	strokePolygon(screen, poly, 2, fade(g.accent, alpha))
	for _, p := range poly {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 3, fade(g.accent, alpha), true)
	}
}

func strokePolygon(dst *ebiten.Image, pts []skills.Point, width float32, clr color.Color) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), width, clr, true)
	}
}

func (g *Game) fillPolygon(dst *ebiten.Image, pts []skills.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(vs, is, g.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawProjects(screen *ebiten.Image) {
	s := g.page.projects
	if !g.visible(s.el.Top, s.el.Height) {
		return
	}
	g.drawHeader(screen, s)

	for _, c := range g.page.cards {
		a := g.reveal.Opacity(c.el)
		r := c.rect()
		cx, cy := r.center()
		cy = g.screenY(c.el, cy)

		// Tilt around the horizontal axis shows as vertical foreshortening.
		sc := c.hover.Scale()
		tilt := math.Cos(c.hover.RotateX() * math.Pi / 180)
		w, h := r.w*sc, r.h*sc*tilt
		x, y := cx-w/2, cy-h/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fade(panelBg, a), true)
		edge := fade(border, a)
		if c.hover.Hovered() {
			edge = fade(g.accent, a*cardGlow)
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, edge, true)

		pad := 20.0
		g.drawText(screen, c.title, x+pad, y+pad, 1.4, white, a)
		g.drawText(screen, c.summary, x+pad, y+pad+32, 1, muted, a)
		g.drawText(screen, c.tags, x+pad, y+h-pad-13, 1, g.accent, a)
	}
}

func (g *Game) drawContact(screen *ebiten.Image) {
	s := g.page.contact
	if !g.visible(s.el.Top, s.el.Height) {
		return
	}
	g.drawHeader(screen, s)
	a := g.reveal.Opacity(s.el)
	y := g.screenY(s.el, s.el.Top+headerHeight)
	g.drawText(screen, "Have a project in mind? Let's talk.", margin, y, 1.4, muted, a)

	r := g.page.send
	by := g.screenY(s.el, r.y)
	fill := g.accent
	label := "Send Message"
	switch {
	case g.form == nil:
		fill, label = border, "Dialogs unavailable"
	case g.formBusy:
		fill, label = border, "Waiting for dialog..."
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(by), float32(r.w), float32(r.h), fade(fill, a), true)
	g.drawText(screen, label, r.x+(r.w-g.textWidth(label, 1))/2, by+(r.h-13)/2, 1, color.Black, a)
}

func (g *Game) drawNav(screen *ebiten.Image) {
	w, _ := g.view.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), navHeight, barBg, false)
	vector.StrokeLine(screen, 0, navHeight, float32(w), navHeight, 1, border, false)
	g.drawText(screen, g.brand, margin, (navHeight-26)/2, 2, g.accent, 1)

	if !g.mobile() {
		mx, my := ebiten.CursorPosition()
		for _, it := range desktopNav(g.menu.Links(), w) {
			clr := white
			if it.r.contains(float64(mx), float64(my)) {
				clr = g.accent
			}
			g.drawText(screen, it.link.Label, it.r.x+8, it.r.y+(it.r.h-13)/2, 1, clr, 1)
		}
		return
	}

	t := toggleRect(w)
	for i := 0; i < 3; i++ {
		y := t.y + 9 + float64(i)*7
		vector.StrokeLine(screen, float32(t.x+6), float32(y), float32(t.x+t.w-6), float32(y), 2, white, true)
	}

	if !g.menu.Open() {
		return
	}
	items := mobilePanel(g.menu.Panel().Links, w)
	last := items[len(items)-1].r
	vector.DrawFilledRect(screen, 0, navHeight, float32(w), float32(last.y+last.h-navHeight+16), color.RGBA{A: 242}, false)
	for _, it := range items {
		g.drawText(screen, it.link.Label, margin/2, it.r.y+(it.r.h-13)/2, 1, white, 1)
	}
}

func (g *Game) drawLoader(screen *ebiten.Image) {
	if !g.loader.Visible() {
		return
	}
	w, h := g.view.Size()
	a := g.loader.Alpha()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: uint8(255 * effects.Clamp01(a))}, false)

	// Text and spinner fade with the overlay.
	k := 1.0
	if g.cfg.Loader.Alpha > 0 {
		k = a / g.cfg.Loader.Alpha
	}
	cx, cy := w/2, h/2-16
	spin := float64(g.ticks) * 2 * math.Pi / TPS
	for i := 0; i < 24; i++ {
		// last quarter of the ring is left open
		if i >= 18 {
			continue
		}
		a0 := spin + float64(i)*2*math.Pi/24
		a1 := a0 + 2*math.Pi/24
		vector.StrokeLine(screen,
			float32(cx+28*math.Cos(a0)), float32(cy+28*math.Sin(a0)),
			float32(cx+28*math.Cos(a1)), float32(cy+28*math.Sin(a1)),
			4, fade(g.accent, k), true)
	}
	msg := g.loader.Text
	g.drawText(screen, msg, cx-g.textWidth(msg, 1.4)/2, cy+48, 1.4, white, k)
}
