package state

import "github.com/atomicstack/toolbar-commands/internal/command"

// Level is one screen of rows: the toolbar itself or the children of an
// opened dropdown. It tracks cursor, filter and viewport.
type Level struct {
	ID             string
	Title          string
	Owner          command.Command
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel builds a level listing items. owner is the container whose
// children the level shows, nil for the root.
func NewLevel(id, title string, owner command.Command, items []Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Owner:      owner,
		Cursor:     -1,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	if l.Cursor >= 0 && l.Cursor < len(l.Items) && !l.Items[l.Cursor].Interactive() {
		l.MoveCursorNext(1)
	}
	return l
}

// IndexOf returns the row index of id, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the rows, keeping the cursor on the same command when
// it is still listed.
func (l *Level) UpdateItems(items []Item) {
	prevID := ""
	if cur, ok := l.Current(); ok {
		prevID = cur.ID
	}
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if idx := l.IndexOf(prevID); idx >= 0 {
		l.Cursor = idx
	}
	if len(l.Items) == 0 || prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
