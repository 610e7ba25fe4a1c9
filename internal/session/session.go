// Package session owns the live commands of one execution context. Callers
// describe commands afresh on every UI pass and pass each description through
// ResolveLive, which maps it onto the instance that already holds the state.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
)

// ErrDisposed is returned by Resolve after Dispose.
var ErrDisposed = errors.New("session disposed")

// Session is the command registry for one execution context. It is not safe
// for concurrent use; the hosting event loop serializes access.
type Session struct {
	ctx      any
	commands []command.Command
	byKey    map[string][]command.Command
	disposed bool

	defaultTool  *command.Tool
	activeTool   *command.Tool
	previousTool *command.Tool
}

// New returns an empty session bound to ctx. ctx is handed to every command
// at attach time and never inspected here.
func New(ctx any) *Session {
	return &Session{ctx: ctx, byKey: map[string][]command.Command{}}
}

// Context returns the execution context.
func (s *Session) Context() any { return s.ctx }

// Disposed reports whether Dispose has run.
func (s *Session) Disposed() bool { return s.disposed }

// ResolveLive maps c onto its live instance: c itself when already live, an
// equal registered command, or c after registering and attaching it. After
// Dispose c is returned unattached.
func (s *Session) ResolveLive(c command.Command) command.Command {
	live, err := s.Resolve(c)
	if err != nil {
		return c
	}
	return live
}

// Resolve is ResolveLive with an error for a disposed session or nil command.
func (s *Session) Resolve(c command.Command) (command.Command, error) {
	if c == nil {
		return nil, fmt.Errorf("resolve: nil command")
	}
	if s.disposed {
		return nil, fmt.Errorf("resolve %s: %w", command.Describe(c), ErrDisposed)
	}
	if c.Core().IsLive() {
		return c, nil
	}
	if existing := s.GetEqual(c); existing != nil {
		events.Session.Reuse(existing.Core().UniqueID(), existing.Kind().String(), existing.Label())
		return existing, nil
	}
	s.register(c)
	return c, nil
}

// ResolveAll resolves every command in order.
func (s *Session) ResolveAll(cmds []command.Command) []command.Command {
	out := make([]command.Command, 0, len(cmds))
	for _, c := range cmds {
		if c == nil {
			continue
		}
		out = append(out, s.ResolveLive(c))
	}
	return out
}

func (s *Session) register(c command.Command) {
	s.commands = append(s.commands, c)
	if key := indexKey(c); key != "" {
		s.byKey[key] = append(s.byKey[key], c)
	}
	command.Attach(c, s.ctx)
	command.Walk(c, func(n command.Command) bool {
		if tool, ok := n.(*command.Tool); ok {
			tool.SetHost(s)
		}
		return true
	})
	events.Session.Register(c.Core().UniqueID(), c.Kind().String(), c.Label())
}

// GetEqual returns the registered command equal to c, or nil. Commands with
// a key are looked up by kind and key; the rest are scanned linearly.
func (s *Session) GetEqual(c command.Command) command.Command {
	if c == nil {
		return nil
	}
	if key := indexKey(c); key != "" {
		for _, existing := range s.byKey[key] {
			if existing.Equals(c) {
				return existing
			}
		}
		return nil
	}
	for _, existing := range s.commands {
		if existing.Equals(c) {
			return existing
		}
	}
	return nil
}

func indexKey(c command.Command) string {
	key := command.KeyOf(c)
	if key == "" {
		return ""
	}
	return c.Kind().String() + ":" + key
}

// Commands returns the registered top-level commands in registration order.
func (s *Session) Commands() []command.Command {
	out := make([]command.Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// Len returns the number of registered top-level commands.
func (s *Session) Len() int { return len(s.commands) }

// FindRecursive returns the first registered command, searching nested
// children depth-first, for which match reports true.
func (s *Session) FindRecursive(match func(command.Command) bool) command.Command {
	var found command.Command
	for _, c := range s.commands {
		command.Walk(c, func(n command.Command) bool {
			if match(n) {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// Update notifies every registered command. It does nothing once disposed.
func (s *Session) Update() {
	if s.disposed {
		return
	}
	for _, c := range s.commands {
		c.Core().Update()
	}
}

// OnKey dispatches a key press. The active tool sees the key first; otherwise
// the first enabled, visible command whose shortcut matches is invoked.
func (s *Session) OnKey(key string) bool {
	if s.disposed || key == "" {
		return false
	}
	if s.activeTool != nil && s.activeTool.HandleKey(key) {
		return true
	}
	target := s.FindRecursive(func(c command.Command) bool {
		sc, ok := c.(command.Shortcutter)
		if !ok || sc.Shortcut() == "" {
			return false
		}
		return strings.EqualFold(sc.Shortcut(), key) && c.Enabled() && c.Visible()
	})
	if target == nil {
		return false
	}
	events.Session.Shortcut(key, target.Core().UniqueID())
	if _, err := command.Invoke(target); err != nil {
		return false
	}
	return true
}

// Dispose detaches every command and empties the registry.
func (s *Session) Dispose() {
	if s.disposed {
		return
	}
	events.Session.Dispose(len(s.commands))
	for _, c := range s.commands {
		command.Detach(c)
	}
	s.commands = nil
	s.byKey = map[string][]command.Command{}
	s.activeTool = nil
	s.defaultTool = nil
	s.previousTool = nil
	s.disposed = true
}
