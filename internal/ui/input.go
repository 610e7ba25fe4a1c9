package ui

import (
	"unicode"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput routes typing. On the toolbar level a printable key is a
// shortcut first; "/" starts a search so that shortcut letters can be typed
// into the filter. Dropdown levels always filter.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		before := current.FilterCursorPos()
		current.ClearFilter()
		m.searching = false
		m.noteFilterCursorChange(current, before)
		m.clearMessages()
		events.Filter.Cleared(current.ID)
		m.syncViewport(current)
		return true
	case "ctrl+w":
		before := current.FilterCursorPos()
		if !current.DeleteFilterWordBackward() {
			return false
		}
		m.noteFilterCursorChange(current, before)
		m.clearMessages()
		events.Filter.WordBackspace(current.ID, current.Filter)
		m.syncViewport(current)
		return true
	case "esc":
		if current.Filter == "" && !m.searching {
			return false
		}
		before := current.FilterCursorPos()
		current.ClearFilter()
		m.searching = false
		m.noteFilterCursorChange(current, before)
		events.Filter.Cleared(current.ID)
		m.syncViewport(current)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.removeFilterRune() {
			return true
		}
		return m.shortcut(current, "backspace")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		text := string(msg.Runes)
		if m.typesShortcuts(current) {
			if text == "/" {
				m.searching = true
				return true
			}
			if m.shortcut(current, text) {
				return true
			}
		}
		return m.appendToFilter(text)
	case tea.KeySpace:
		if current.Filter == "" {
			return false
		}
		return m.appendToFilter(" ")
	}
	return false
}

func (m *Model) typesShortcuts(l *level) bool {
	return l == m.stack[0] && l.Filter == "" && !m.searching
}

// shortcut forwards key to the session on the toolbar level.
func (m *Model) shortcut(l *level, key string) bool {
	if l != m.stack[0] || m.sess == nil {
		return false
	}
	if !m.sess.OnKey(key) {
		return false
	}
	m.dirty = true
	m.clearMessages()
	return true
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	current := m.currentLevel()
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !current.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.clearMessages()
	events.Filter.Append(current.ID, current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !current.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.clearMessages()
	events.Filter.Backspace(current.ID, current.Filter)
	m.syncViewport(current)
	return true
}

// startEditing opens the text input for an Input command.
func (m *Model) startEditing(in *command.Input) tea.Cmd {
	if !in.Enabled() {
		return nil
	}
	m.editing = in
	m.editor.Placeholder = m.tr.T(in.Placeholder())
	m.editor.SetValue(in.Value())
	m.editor.CursorEnd()
	events.UI.EditStart(in.UniqueID())
	return m.editor.Focus()
}

// handleEditor owns key presses while an Input is being edited. Enter
// submits the text through the command, esc discards the edit.
func (m *Model) handleEditor(msg tea.Msg) (bool, tea.Cmd) {
	if m.editing == nil {
		return false, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return false, cmd
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "esc":
		events.UI.EditDone(m.editing.UniqueID(), m.editor.Value(), false)
		m.stopEditing()
		return true, nil
	case "enter":
		in := m.editing
		value := m.editor.Value()
		m.stopEditing()
		in.SetValue(value)
		m.invoke(in)
		events.UI.EditDone(in.UniqueID(), value, true)
		return true, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return true, cmd
}

func (m *Model) stopEditing() {
	m.editing = nil
	m.editor.Blur()
	m.editor.Reset()
}

func (m *Model) clearMessages() {
	m.errMsg = ""
	m.forceClearInfo()
}
