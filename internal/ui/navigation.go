package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/logging"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
	uistate "github.com/atomicstack/toolbar-commands/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter", " ":
		return m.handleEnterKey()
	case "ctrl+a":
		m.toggleAll()
	case "left":
		m.adjust(-1)
	case "right":
		m.adjust(1)
	case "up":
		m.moveCursor(-1)
	case "down":
		m.moveCursor(1)
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		return tea.Quit
	}
	m.stack = m.stack[:len(m.stack)-1]
	parent := m.currentLevel()
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	} else if idx := parent.IndexOf(current.ID); idx >= 0 {
		parent.Cursor = idx
	}
	parent.LastCursor = -1
	m.syncViewport(parent)
	events.UI.MenuClose(current.ID)
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

// handleEnterKey activates the row under the cursor: dropdowns open a level,
// inputs start editing and everything else is invoked.
func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok || item.Command == nil {
		return nil
	}
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	if current.ClearFilter() {
		m.searching = false
		m.filterCursorDirty = true
	}
	switch c := item.Command.(type) {
	case *command.Option, *command.Filter:
		m.openLevel(current, item)
		return nil
	case *command.Input:
		return m.startEditing(c)
	}
	m.invoke(item.Command)
	return nil
}

func (m *Model) openLevel(parent *level, item uistate.Item) {
	if !item.Command.Enabled() {
		return
	}
	items, err := m.childItems(item.Command)
	if err != nil {
		m.fail(err)
		return
	}
	parent.LastCursor = parent.Cursor
	child := uistate.NewLevel(item.ID, item.Label, item.Command, items)
	m.stack = append(m.stack, child)
	m.subscribe(child.Full)
	m.syncViewport(child)
	events.UI.MenuOpen(child.ID, command.Describe(item.Command))
	m.errMsg = ""
	m.forceClearInfo()
}

// invoke runs c and records the outcome. The model refreshes afterwards
// because an invocation may change state that other rows render.
func (m *Model) invoke(c command.Command) {
	changed, err := command.Invoke(c)
	m.dirty = true
	if err != nil {
		if errors.Is(err, command.ErrNotInvokable) {
			return
		}
		logging.Error(err)
		events.Action.Error(err)
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	switch {
	case changed:
		events.Action.Success(command.Describe(c))
	case !c.Enabled():
		m.setInfo(fmt.Sprintf("%s is disabled", m.tr.T(c.Label())))
	}
}

// adjust moves sliders by one step and cycles option selections.
func (m *Model) adjust(delta int) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	item, ok := current.Current()
	if !ok || item.Command == nil || !item.Command.Enabled() {
		return
	}
	switch c := item.Command.(type) {
	case *command.Slider:
		if delta < 0 {
			c.Decrement()
		} else {
			c.Increment()
		}
	case *command.Option:
		items := c.Items()
		if len(items) == 0 {
			return
		}
		idx := 0
		if sel := c.SelectedChild(); sel != nil {
			for i, it := range items {
				if it == sel {
					idx = i
					break
				}
			}
			idx = ((idx+delta)%len(items) + len(items)) % len(items)
		}
		m.invoke(items[idx])
	default:
		return
	}
	events.UI.Adjust(item.ID, delta)
	m.dirty = true
}

// toggleAll flips every item of the filter under the cursor, or of the
// opened filter dropdown.
func (m *Model) toggleAll() {
	current := m.currentLevel()
	if current == nil {
		return
	}
	f, ok := current.Owner.(*command.Filter)
	if !ok {
		item, has := current.Current()
		if !has {
			return
		}
		if f, ok = item.Command.(*command.Filter); !ok {
			return
		}
	}
	if !f.Enabled() || !f.ToggleAllChecked() {
		return
	}
	events.Filter.ToggleAll(current.ID, f.IsAllChecked())
	m.dirty = true
}

func (m *Model) moveCursor(dir int) {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorNext(dir) {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorPageUp(m.maxVisibleItems()) {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorPageDown(m.maxVisibleItems()) {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorHome() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorEnd() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
