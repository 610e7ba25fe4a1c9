package command

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/atomicstack/toolbar-commands/internal/logging/events"
)

// ErrNotInvokable is returned when Invoke is called on a layout marker
// (divider, section) or on a command without an invoke capability.
var ErrNotInvokable = errors.New("command is not invokable")

var newID = uuid.NewString

// Invoke runs c's InvokeCore and notifies c's listeners when it reports a
// change. Disabled commands are left untouched.
func Invoke(c Command) (bool, error) {
	if c == nil {
		return false, fmt.Errorf("%w: nil command", ErrNotInvokable)
	}
	switch c.Kind() {
	case KindDivider, KindSection:
		return false, fmt.Errorf("%w: %s %q is a layout marker", ErrNotInvokable, c.Kind(), c.Label())
	}
	inv, ok := c.(Invokable)
	if !ok {
		return false, fmt.Errorf("%w: %s %q", ErrNotInvokable, c.Kind(), c.Label())
	}
	if !c.Enabled() {
		return false, nil
	}
	changed := inv.InvokeCore()
	events.Command.Invoke(c.Core().UniqueID(), c.Kind().String(), c.Label(), changed)
	if changed {
		c.Core().Update()
	}
	return changed, nil
}

// Attach binds c and its materialized subtree to ctx, assigning unique ids.
// It is idempotent. Children created later are attached by their container.
func Attach(c Command, ctx any) {
	if c == nil {
		return
	}
	b := c.Core()
	if !b.live {
		b.live = true
		b.ctx = ctx
		if b.uniqueID == "" {
			b.uniqueID = newID()
		}
		if a, ok := c.(Attacher); ok {
			a.OnAttach(ctx)
		}
		events.Command.Attach(b.uniqueID, c.Kind().String(), c.Label())
	}
	for _, child := range currentChildren(c) {
		Attach(child, ctx)
	}
}

// Detach clears listeners across the materialized subtree. The command keeps
// its id and context so late readers do not crash.
func Detach(c Command) {
	if c == nil {
		return
	}
	c.Core().clearListeners()
	for _, child := range currentChildren(c) {
		Detach(child)
	}
}

// attachChild binds a child added after its parent went live.
func attachChild(parent, child Command) {
	if parent.Core().IsLive() {
		Attach(child, parent.Core().Context())
	}
}

// IsChecked reports the checked flag of c, false when c is not checkable.
func IsChecked(c Command) bool {
	if ch, ok := c.(Checkable); ok {
		return ch.Checked()
	}
	return false
}

// Children returns c's children, materializing lazy containers.
func Children(c Command) []Command {
	if ct, ok := c.(Container); ok {
		return ct.Children()
	}
	return nil
}

func currentChildren(c Command) []Command {
	if lc, ok := c.(lazyContainer); ok {
		return lc.CurrentChildren()
	}
	return Children(c)
}

// Walk visits c and its descendants depth-first. Returning false from fn
// stops the walk.
func Walk(c Command, fn func(Command) bool) bool {
	if c == nil {
		return true
	}
	if !fn(c) {
		return false
	}
	for _, child := range Children(c) {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// KeyOf returns c's configuration key, or "" when c has none.
func KeyOf(c Command) string {
	if k, ok := c.(Keyer); ok {
		return k.Key()
	}
	return ""
}

// Describe renders a short human description used in errors and logs.
func Describe(c Command) string {
	if c == nil {
		return "<nil>"
	}
	if key := KeyOf(c); key != "" {
		return fmt.Sprintf("%s %q (%s)", c.Kind(), c.Label(), key)
	}
	return fmt.Sprintf("%s %q", c.Kind(), c.Label())
}
