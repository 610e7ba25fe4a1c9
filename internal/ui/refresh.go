package ui

import (
	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
	"github.com/atomicstack/toolbar-commands/internal/render"
	uistate "github.com/atomicstack/toolbar-commands/internal/ui/state"
)

// refresh runs a UI pass and re-renders every level on the stack. A resolve
// error means a command has no renderer and is returned to the caller.
func (m *Model) refresh() error {
	m.dirty = false
	var live []command.Command
	if m.build != nil && m.sess != nil {
		live = m.build(m.sess)
	}
	elements, err := m.renderer.ResolveAll(live, m.placement)
	if err != nil {
		return err
	}
	rows := 0
	root := m.stack[0]
	root.UpdateItems(uistate.ItemsFromElements(elements, m.tr))
	m.subscribe(root.Full)
	rows += len(root.Full)
	for _, l := range m.stack[1:] {
		items, err := m.childItems(l.Owner)
		if err != nil {
			return err
		}
		l.UpdateItems(items)
		m.subscribe(l.Full)
		rows += len(l.Full)
	}
	for _, l := range m.stack {
		m.syncViewport(l)
	}
	// notifications raised by the pass itself are already rendered
	m.dirty = false
	events.UI.Refresh(len(m.stack), rows)
	return nil
}

// childItems renders the children of an opened dropdown.
func (m *Model) childItems(owner command.Command) ([]uistate.Item, error) {
	elements, err := m.renderer.ResolveAll(command.Children(owner), render.PlacementMenu)
	if err != nil {
		return nil, err
	}
	return uistate.ItemsFromElements(elements, m.tr), nil
}

func (m *Model) subscribe(items []uistate.Item) {
	for _, item := range items {
		c := item.Command
		if c == nil {
			continue
		}
		id := c.Core().UniqueID()
		if id == "" {
			continue
		}
		if _, ok := m.subscribed[id]; ok {
			continue
		}
		m.subscribed[id] = c.Core().AddListener(m.markDirty)
	}
}
