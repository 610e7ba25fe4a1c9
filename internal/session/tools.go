package session

import (
	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
)

// ActiveTool returns the active tool, or nil.
func (s *Session) ActiveTool() *command.Tool { return s.activeTool }

// DefaultTool returns the default tool, or nil.
func (s *Session) DefaultTool() *command.Tool { return s.defaultTool }

// SetDefaultTool sets the tool ActivateDefaultTool falls back to. The tool is
// resolved through the registry first.
func (s *Session) SetDefaultTool(t *command.Tool) {
	if t == nil {
		s.defaultTool = nil
		return
	}
	s.defaultTool = s.resolveTool(t)
}

// SetActiveTool deactivates the current tool and activates t. Nil and the
// already active tool are ignored.
func (s *Session) SetActiveTool(t *command.Tool) bool {
	if t == nil || s.disposed {
		return false
	}
	t = s.resolveTool(t)
	if t == s.activeTool {
		return false
	}
	prev := s.activeTool
	events.Session.Tool(toolID(prev), toolID(t))
	if prev != nil {
		prev.Deactivate()
	}
	s.previousTool = prev
	s.activeTool = t
	t.Activate()
	return true
}

// ActivateDefaultTool activates the default tool.
func (s *Session) ActivateDefaultTool() bool {
	if s.defaultTool == nil {
		return false
	}
	return s.SetActiveTool(s.defaultTool)
}

// IsDefaultToolActive reports whether the default tool is the active one.
func (s *Session) IsDefaultToolActive() bool {
	return s.activeTool != nil && s.activeTool == s.defaultTool
}

// SetPreviousTool re-activates the tool that was active before the current
// one.
func (s *Session) SetPreviousTool() bool {
	if s.previousTool == nil {
		return false
	}
	return s.SetActiveTool(s.previousTool)
}

func (s *Session) resolveTool(t *command.Tool) *command.Tool {
	if live, ok := s.ResolveLive(t).(*command.Tool); ok {
		return live
	}
	return t
}

func toolID(t *command.Tool) string {
	if t == nil {
		return ""
	}
	return t.UniqueID()
}
