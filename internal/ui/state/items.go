package state

import (
	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/i18n"
	"github.com/atomicstack/toolbar-commands/internal/render"
)

// Item is one row of a level: a resolved command and its rendered text.
type Item struct {
	ID      string
	Label   string
	Text    string
	Tooltip string
	Widget  string
	Depth   int
	Command command.Command
}

// Interactive reports whether the row can hold the cursor.
func (it Item) Interactive() bool {
	if it.Command == nil {
		return false
	}
	switch it.Command.Kind() {
	case command.KindDivider, command.KindSection:
		return false
	}
	return it.Command.Enabled()
}

// ItemsFromElements flattens resolved elements into rows. Label holds the
// translated plain label used for fuzzy matching.
func ItemsFromElements(elements []render.Element, tr *i18n.Translator) []Item {
	flat := render.Flatten(elements)
	items := make([]Item, 0, len(flat))
	for _, el := range flat {
		item := Item{
			ID:      el.Key,
			Text:    el.Text,
			Tooltip: el.Tooltip,
			Widget:  el.Widget,
			Depth:   el.Depth,
			Command: el.Command,
		}
		if el.Command != nil {
			item.Label = tr.T(el.Command.Label())
			if item.ID == "" {
				item.ID = command.KeyOf(el.Command)
			}
		}
		items = append(items, item)
	}
	return items
}

// CloneItems produces a shallow copy of items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// CheckedItems returns the visible rows whose command is checked, in display
// order.
func (l *Level) CheckedItems() []Item {
	var out []Item
	for _, item := range l.Items {
		if command.IsChecked(item.Command) {
			out = append(out, item)
		}
	}
	return out
}
