package game

import (
	"math"

	"github.com/iburimskiy/portfolio-visual/internal/config"
	"github.com/iburimskiy/portfolio-visual/internal/effects"
	"github.com/iburimskiy/portfolio-visual/internal/nav"
)

const (
	navHeight     = 56.0
	margin        = 48.0
	gutter        = 24.0
	headerHeight  = 110.0
	charWidth     = 7.0 // basicfont.Face7x13 advance
	lineHeight    = 18.0
	skillRow      = 44.0
	panelRow      = 40.0
	toggleSize    = 32.0
	maxRadarSize  = 400.0
	wideCardH     = 220.0
	narrowCardH   = 170.0
	buttonW       = 180.0
	buttonH       = 44.0
	aboutHeight   = 360.0
	contactHeight = 340.0
)

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(px, py float64) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

func (r rect) center() (float64, float64) { return r.x + r.w/2, r.y + r.h/2 }

type project struct {
	title   string
	summary string
	tags    string
}

var projects = []project{
	{"Modular Fixture System", "Reconfigurable jig for small-batch CNC work.", "CAD / Manufacturing"},
	{"Plant Energy Audit", "Sensor survey cutting compressed-air losses.", "Analysis / Environmental"},
	{"Line Scheduler", "Constraint-based planner for a shared paint line.", "Programming / Leadership"},
}

var aboutText = []string{
	"Mechanical engineer working where design meets the shop floor.",
	"I build tools, fixtures and software that make production calmer,",
	"cleaner and easier to reason about.",
}

type section struct {
	id    string
	title string
	el    *effects.Element
}

// card is a hoverable project tile. Its element carries the page position.
type card struct {
	project
	x, w  float64
	el    *effects.Element
	hover *effects.Hover
}

func (c *card) rect() rect { return rect{c.x, c.el.Top, c.w, c.el.Height} }

// skillItem is one row of the skills list next to the radar.
type skillItem struct {
	x, w float64
	el   *effects.Element
}

// page is the scrolling document. All rects are in page coordinates.
type page struct {
	home, about, skills, projects, contact *section
	sections                               []*section

	skillItems []*skillItem
	cards      []*card

	radar  rect
	cta    rect
	send   rect
	width  float64
	height float64
}

func newPage(axes int, hover config.HoverConfig) *page {
	newSection := func(id, title string) *section {
		return &section{id: id, title: title, el: &effects.Element{ID: id}}
	}
	p := &page{
		home:     newSection("home", ""),
		about:    newSection("about", "About"),
		skills:   newSection("skills", "Skills"),
		projects: newSection("projects", "Projects"),
		contact:  newSection("contact", "Contact"),
	}
	p.sections = []*section{p.home, p.about, p.skills, p.projects, p.contact}

	for i := 0; i < axes; i++ {
		it := &skillItem{el: &effects.Element{ID: "skill"}}
		p.skillItems = append(p.skillItems, it)
		p.skills.el.Items = append(p.skills.el.Items, it.el)
	}
	for _, pr := range projects {
		c := &card{project: pr, el: &effects.Element{ID: "card"}, hover: effects.NewHover(hover)}
		p.cards = append(p.cards, c)
		p.projects.el.Items = append(p.projects.el.Items, c.el)
	}
	return p
}

// section returns the section with the given id, or nil.
func (p *page) section(id string) *section {
	for _, s := range p.sections {
		if s.id == id {
			return s
		}
	}
	return nil
}

// layout positions every block for a w×h window. narrow selects the
// single-column arrangement.
func (p *page) layout(w, h float64, narrow bool) {
	p.width = w
	inner := math.Max(w-2*margin, 1)
	y := 0.0

	place := func(s *section, height float64) {
		s.el.Top, s.el.Height = y, height
		y += height
	}

	place(p.home, math.Max(h, 420))
	p.cta = rect{margin, p.home.el.Top + p.home.el.Height*0.62, buttonW, buttonH}

	place(p.about, aboutHeight)

	skillsTop := y + headerHeight
	size := math.Min(inner, maxRadarSize)
	listH := float64(len(p.skillItems)) * skillRow
	if narrow {
		p.radar = rect{margin + (inner-size)/2, skillsTop, size, size}
		listTop := skillsTop + size + gutter
		for i, it := range p.skillItems {
			it.x, it.w = margin, inner
			it.el.Top, it.el.Height = listTop+float64(i)*skillRow, skillRow-8
		}
		place(p.skills, headerHeight+size+gutter+listH+margin)
	} else {
		half := (inner - gutter) / 2
		size = math.Min(half, maxRadarSize)
		p.radar = rect{margin + (half-size)/2, skillsTop, size, size}
		listTop := skillsTop + math.Max(0, (size-listH)/2)
		for i, it := range p.skillItems {
			it.x, it.w = margin+half+gutter, half
			it.el.Top, it.el.Height = listTop+float64(i)*skillRow, skillRow-8
		}
		place(p.skills, headerHeight+math.Max(size, listH)+margin)
	}

	cardsTop := y + headerHeight
	if narrow {
		for i, c := range p.cards {
			c.x, c.w = margin, inner
			c.el.Top, c.el.Height = cardsTop+float64(i)*(narrowCardH+gutter), narrowCardH
		}
		place(p.projects, headerHeight+float64(len(p.cards))*(narrowCardH+gutter)+margin)
	} else {
		n := float64(len(p.cards))
		cw := (inner - (n-1)*gutter) / n
		for i, c := range p.cards {
			c.x, c.w = margin+float64(i)*(cw+gutter), cw
			c.el.Top, c.el.Height = cardsTop, wideCardH
		}
		place(p.projects, headerHeight+wideCardH+margin)
	}

	place(p.contact, contactHeight)
	p.send = rect{margin, p.contact.el.Top + headerHeight + 3*lineHeight, buttonW, buttonH}

	p.height = y
}

// navItem is a clickable navigation entry in window coordinates.
type navItem struct {
	r    rect
	link nav.Link
}

// desktopNav lays the links out right-aligned in the top bar.
func desktopNav(links []nav.Link, w float64) []navItem {
	items := make([]navItem, len(links))
	x := w - margin
	for i := len(links) - 1; i >= 0; i-- {
		lw := float64(len(links[i].Label))*charWidth + 16
		x -= lw
		items[i] = navItem{r: rect{x, (navHeight - 28) / 2, lw, 28}, link: links[i]}
		x -= 8
	}
	return items
}

// mobilePanel lays the panel links out as full-width rows under the bar.
func mobilePanel(links []nav.Link, w float64) []navItem {
	items := make([]navItem, len(links))
	for i, l := range links {
		items[i] = navItem{r: rect{0, navHeight + float64(i)*panelRow, w, panelRow}, link: l}
	}
	return items
}

func toggleRect(w float64) rect {
	return rect{w - margin/2 - toggleSize, (navHeight - toggleSize) / 2, toggleSize, toggleSize}
}

type targetKind int

const (
	noTarget targetKind = iota
	linkTarget
	toggleTarget
	sendTarget
)

// target is what a pointer press landed on.
type target struct {
	kind targetKind
	href string
}

// hitTest resolves a window position. Fixed chrome (bar, open panel) sits
// above the scrolling page.
func (p *page) hitTest(m *nav.Menu, x, y, scrollY float64, mobile bool) target {
	if y < navHeight {
		if mobile {
			if toggleRect(p.width).contains(x, y) {
				return target{kind: toggleTarget}
			}
			return target{}
		}
		for _, it := range desktopNav(m.Links(), p.width) {
			if it.r.contains(x, y) {
				return target{kind: linkTarget, href: it.link.Href}
			}
		}
		return target{}
	}
	if mobile && m.Open() {
		items := mobilePanel(m.Panel().Links, p.width)
		for _, it := range items {
			if it.r.contains(x, y) {
				return target{kind: linkTarget, href: it.link.Href}
			}
		}
	}

	py := y + scrollY
	switch {
	case p.cta.contains(x, py):
		return target{kind: linkTarget, href: "#projects"}
	case p.send.contains(x, py):
		return target{kind: sendTarget}
	}
	return target{}
}

// scrollTarget returns the scroll offset that brings s just under the bar.
func scrollTarget(s *section) float64 {
	if s.el.Top == 0 {
		return 0
	}
	return math.Max(0, s.el.Top-navHeight)
}
