// Package icon maps symbolic icon names to renderers. Lookups never fail:
// unknown names resolve to an inert renderer that draws nothing.
package icon

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer draws an icon as terminal text.
type Renderer func() string

// Empty is the inert fallback renderer.
func Empty() string { return "" }

// Registry holds installed icons keyed by case-insensitive name.
type Registry struct {
	icons map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{icons: map[string]Renderer{}}
}

// Defaults returns a registry with the built-in glyph set installed.
func Defaults() *Registry {
	r := NewRegistry()
	for name, glyph := range builtinGlyphs {
		r.Install(name, Glyph(glyph, defaultIconStyle))
	}
	return r
}

// Install registers renderer under name, replacing any earlier one. A nil
// renderer removes the icon.
func (r *Registry) Install(name string, renderer Renderer) {
	key := normalize(name)
	if key == "" {
		return
	}
	if renderer == nil {
		delete(r.icons, key)
		return
	}
	r.icons[key] = renderer
}

// Get returns the renderer for name, or Empty.
func (r *Registry) Get(name string) Renderer {
	if r == nil {
		return Empty
	}
	if renderer, ok := r.icons[normalize(name)]; ok {
		return renderer
	}
	return Empty
}

// Has reports whether name is installed.
func (r *Registry) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.icons[normalize(name)]
	return ok
}

// Names lists installed icon names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.icons))
	for name := range r.icons {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Glyph builds a renderer that draws glyph with style.
func Glyph(glyph string, style lipgloss.Style) Renderer {
	return func() string { return style.Render(glyph) }
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var defaultIconStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

var builtinGlyphs = map[string]string{
	"settings":  "⚙",
	"fit":       "⤢",
	"ruler":     "📏",
	"filter":    "⏷",
	"quality":   "◈",
	"grid":      "▦",
	"clip":      "✂",
	"note":      "✎",
	"reset":     "↺",
	"cube":      "▣",
	"navigate":  "✥",
	"visible":   "◉",
	"invisible": "○",
}
