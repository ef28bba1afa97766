package nav

import (
	"testing"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

func TestMenuBuiltLazily(t *testing.T) {
	m := NewMenu(config.Default().Nav.Links)
	if m.Panel() != nil {
		t.Fatal("panel built before first toggle")
	}
	if m.Open() {
		t.Fatal("menu open before first toggle")
	}

	m.Toggle()
	p := m.Panel()
	if p == nil || !m.Open() {
		t.Fatal("first toggle should build and open the panel")
	}
	want := []Link{
		{"Home", "#home"},
		{"About", "about.html"},
		{"Projects", "projects.html"},
		{"Contact", "contact.html"},
	}
	if len(p.Links) != len(want) {
		t.Fatalf("links: got %v, want %v", p.Links, want)
	}
	for i := range want {
		if p.Links[i] != want[i] {
			t.Errorf("link %d: got %v, want %v", i, p.Links[i], want[i])
		}
	}

	m.Toggle()
	if m.Open() {
		t.Error("second toggle should close")
	}
	if m.Panel() != p {
		t.Error("panel rebuilt on second toggle")
	}
	m.Toggle()
	if !m.Open() || m.Panel() != p {
		t.Error("third toggle should reopen the same panel")
	}
	m.Close()
	if m.Open() {
		t.Error("Close left the panel open")
	}
}

func TestShowToggle(t *testing.T) {
	if !ShowToggle(600, 768) {
		t.Error("600px should use the mobile menu")
	}
	if ShowToggle(768, 768) {
		t.Error("768px should use the desktop menu")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		href string
		id   string
		ok   bool
	}{
		{"#home", "home", true},
		{"#", "", false},
		{"about.html", "about", true},
		{"/pages/projects.html", "projects", true},
		{"index.html", "home", true},
		{"https://example.com/contact.html", "", false},
		{"resume.pdf", "", false},
	}
	for _, tt := range tests {
		id, ok := Resolve(tt.href)
		if id != tt.id || ok != tt.ok {
			t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.href, id, ok, tt.id, tt.ok)
		}
	}
}
