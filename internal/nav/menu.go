// Package nav holds the navigation menu and link resolution.
package nav

import (
	"path"
	"strings"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

// Link is a navigation entry.
type Link struct {
	Label string
	Href  string
}

// Panel is the collapsible mobile menu.
type Panel struct {
	Links  []Link
	Hidden bool
}

// Menu is the mobile navigation toggle. Its panel is only built on the
// first Toggle.
type Menu struct {
	template []Link
	panel    *Panel
}

// NewMenu creates a menu offering links once opened.
func NewMenu(links []config.NavLink) *Menu {
	m := &Menu{}
	for _, l := range links {
		m.template = append(m.template, Link{Label: l.Label, Href: l.Href})
	}
	return m
}

// Toggle opens or closes the panel, building it on first use.
func (m *Menu) Toggle() {
	if m.panel == nil {
		m.panel = &Panel{
			Links:  append([]Link(nil), m.template...),
			Hidden: true,
		}
	}
	m.panel.Hidden = !m.panel.Hidden
}

// Close hides the panel if it is open.
func (m *Menu) Close() {
	if m.panel != nil {
		m.panel.Hidden = true
	}
}

// Open reports whether the panel is showing.
func (m *Menu) Open() bool { return m.panel != nil && !m.panel.Hidden }

// Panel returns the built panel, or nil before the first Toggle.
func (m *Menu) Panel() *Panel { return m.panel }

// Links returns the desktop navigation entries.
func (m *Menu) Links() []Link { return m.template }

// ShowToggle reports whether a window of the given width uses the mobile menu.
func ShowToggle(width, breakpoint int) bool { return width < breakpoint }

// IsAnchor reports whether href points inside the current page.
func IsAnchor(href string) bool { return strings.HasPrefix(href, "#") }

// Resolve maps a link target to a page section id: "#home" is "home" and
// "about.html" is "about". Anything else does not resolve.
func Resolve(href string) (string, bool) {
	if IsAnchor(href) {
		id := strings.TrimPrefix(href, "#")
		return id, id != ""
	}
	if strings.Contains(href, "://") {
		return "", false
	}
	base := path.Base(href)
	if ext := path.Ext(base); ext == ".html" || ext == ".htm" {
		id := strings.TrimSuffix(base, ext)
		if id == "index" {
			return "home", true
		}
		return id, id != ""
	}
	return "", false
}
