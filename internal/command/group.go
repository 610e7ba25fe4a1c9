package command

import (
	"github.com/atomicstack/toolbar-commands/internal/logging"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
)

// Group is an ordered, arbitrarily nested list of commands. Settings menus
// and accordion sections are groups.
type Group struct {
	Base
	Meta
	children []Command
	expanded bool
}

func NewGroup(info Info) *Group {
	return &Group{Meta: NewMeta(info)}
}

// NewSettings builds the top-level settings group.
func NewSettings(info Info) *Group {
	if info.Icon == "" {
		info.Icon = "Settings"
	}
	if info.Label == "" {
		info.Label = "settings.title"
	}
	return NewGroup(info)
}

func (g *Group) Kind() Kind     { return KindGroup }
func (g *Group) Expanded() bool { return g.expanded }

// SetExpanded opens or collapses the group; it does not notify.
func (g *Group) SetExpanded(v bool) { g.expanded = v }

// Add appends c. An equal command already present is logged as a warning;
// both entries are kept.
func (g *Group) Add(c Command) {
	if c == nil {
		return
	}
	for _, existing := range g.children {
		if existing.Equals(c) {
			logging.Warn("group %q: duplicate %s", g.Label(), Describe(c))
			events.Command.Duplicate(g.Label(), c.Kind().String(), c.Label())
			break
		}
	}
	g.children = append(g.children, c)
	attachChild(g, c)
}

// Clear removes every child. Removed children keep their listeners.
func (g *Group) Clear() {
	g.children = nil
}

func (g *Group) Len() int { return len(g.children) }

func (g *Group) Children() []Command {
	out := make([]Command, len(g.children))
	copy(out, g.children)
	return out
}

// InvokeCore toggles the accordion state.
func (g *Group) InvokeCore() bool {
	g.expanded = !g.expanded
	return true
}

func (g *Group) Equals(other Command) bool {
	o, ok := other.(*Group)
	return ok && (o == g || g.sameInfo(&o.Meta))
}
