// Package render resolves commands to UI elements through an ordered chain
// of resolvers. Resolvers are sorted by ascending priority and the first one
// that produces an element wins. The catch-all button resolver is registered
// at FallbackPriority so it is reached only when nothing more specific
// matched, whatever the registration order.
//
// A command that no resolver accepts is an integration bug: Resolve returns
// ErrUnresolved (or ErrEmptyRegistry) and MustResolve panics.
package render

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
)

// FallbackPriority is reserved for the catch-all resolver.
const FallbackPriority = math.MaxInt

var (
	ErrEmptyRegistry = errors.New("renderer registry is empty")
	ErrUnresolved    = errors.New("no renderer matched command")
)

// Placement hints where an element will be shown.
type Placement int

const (
	PlacementToolbar Placement = iota
	PlacementMenu
)

func (p Placement) String() string {
	switch p {
	case PlacementToolbar:
		return "toolbar"
	case PlacementMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// ParsePlacement maps a config value onto a Placement.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "", "toolbar":
		return PlacementToolbar, nil
	case "menu":
		return PlacementMenu, nil
	default:
		return PlacementToolbar, fmt.Errorf("unknown placement %q", s)
	}
}

// Element is the resolved representation of a command.
type Element struct {
	Key      string
	Widget   string
	Command  command.Command
	Text     string
	Tooltip  string
	Depth    int
	Children []Element
}

// Empty reports whether e carries no widget.
func (e Element) Empty() bool { return e.Widget == "" }

// Resolver produces an element for c or reports false.
type Resolver func(c command.Command, p Placement) (Element, bool)

// Predicate selects the commands a factory handles.
type Predicate func(c command.Command, p Placement) bool

// Factory builds the element for a matched command.
type Factory func(c command.Command, p Placement) Element

type entry struct {
	priority int
	name     string
	seq      int
	resolve  Resolver
}

// Registry is the ordered resolver chain.
type Registry struct {
	entries []entry
	seq     int
}

func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterResolver adds resolve at priority. Entries with equal priority keep
// their registration order.
func (r *Registry) RegisterResolver(priority int, name string, resolve Resolver) {
	if resolve == nil {
		return
	}
	r.seq++
	r.entries = append(r.entries, entry{priority: priority, name: name, seq: r.seq, resolve: resolve})
	sort.SliceStable(r.entries, func(i, j int) bool {
		if r.entries[i].priority != r.entries[j].priority {
			return r.entries[i].priority < r.entries[j].priority
		}
		return r.entries[i].seq < r.entries[j].seq
	})
}

// Register adds a resolver that builds with build whenever match accepts the
// command.
func (r *Registry) Register(priority int, name string, match Predicate, build Factory) {
	if match == nil || build == nil {
		return
	}
	r.RegisterResolver(priority, name, func(c command.Command, p Placement) (Element, bool) {
		if !match(c, p) {
			return Element{}, false
		}
		return build(c, p), true
	})
}

// RegisterFallback adds a catch-all resolver at FallbackPriority.
func (r *Registry) RegisterFallback(name string, build Factory) {
	r.Register(FallbackPriority, name, func(command.Command, Placement) bool { return true }, build)
}

// Len returns the number of resolvers.
func (r *Registry) Len() int { return len(r.entries) }

// Names lists resolver names in resolution order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.name
	}
	return out
}

// Resolve walks the resolvers in order and returns the first non-empty
// element.
func (r *Registry) Resolve(c command.Command, p Placement) (Element, error) {
	if len(r.entries) == 0 {
		return Element{}, fmt.Errorf("resolve %s: %w", command.Describe(c), ErrEmptyRegistry)
	}
	for _, e := range r.entries {
		el, ok := e.resolve(c, p)
		if !ok || el.Empty() {
			continue
		}
		if el.Command == nil {
			el.Command = c
		}
		if el.Key == "" && c != nil {
			el.Key = c.Core().UniqueID()
		}
		events.Render.Resolved(el.Key, e.name, p.String())
		return el, nil
	}
	id, kind := "", ""
	if c != nil {
		id, kind = c.Core().UniqueID(), c.Kind().String()
	}
	events.Render.Unresolved(id, kind)
	return Element{}, fmt.Errorf("resolve %s at %s: %w", command.Describe(c), p, ErrUnresolved)
}

// MustResolve is Resolve for callers that treat a missing renderer as fatal.
func (r *Registry) MustResolve(c command.Command, p Placement) Element {
	el, err := r.Resolve(c, p)
	if err != nil {
		panic(err)
	}
	return el
}

// ResolveAll resolves the visible commands in order.
func (r *Registry) ResolveAll(cmds []command.Command, p Placement) ([]Element, error) {
	out := make([]Element, 0, len(cmds))
	for _, c := range cmds {
		if c == nil || !c.Visible() {
			continue
		}
		el, err := r.Resolve(c, p)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

// Flatten lists elements depth-first with Depth set from nesting.
func Flatten(elements []Element) []Element {
	var out []Element
	var walk func(els []Element, depth int)
	walk = func(els []Element, depth int) {
		for _, el := range els {
			children := el.Children
			el.Depth = depth
			el.Children = nil
			out = append(out, el)
			walk(children, depth+1)
		}
	}
	walk(elements, 0)
	return out
}
