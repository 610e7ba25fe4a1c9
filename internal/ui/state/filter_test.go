package state

import (
	"testing"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/i18n"
	"github.com/atomicstack/toolbar-commands/internal/render"
	"github.com/atomicstack/toolbar-commands/internal/theme"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" || level.FilterCursor != len("two") {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "two" || level.Cursor != 0 {
		t.Fatalf("expected only 'two' under the cursor, got %#v", level.Items)
	}

	if !level.ClearFilter() {
		t.Fatalf("expected clear to report a change")
	}
	if level.Cursor != 2 || level.LastCursor != -1 {
		t.Fatalf("expected cursor restored to 2, got %d (last %d)", level.Cursor, level.LastCursor)
	}
	if level.ClearFilter() {
		t.Fatalf("clearing an empty filter should report false")
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") || level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}
	level.FilterCursor = 1
	if !level.InsertFilterText("z") || level.Filter != "azb" || level.FilterCursor != 2 {
		t.Fatalf("expected insert into middle, got %q/%d", level.Filter, level.FilterCursor)
	}
	if !level.DeleteFilterRuneBackward() || level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() || level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterItems(t *testing.T) {
	items := newTestItems("Alpha", "Beta")
	items = append(items, Item{ID: "div", Command: command.NewDivider("div")})

	filtered := FilterItems(items, "alp")
	if len(filtered) != 1 || filtered[0].Label != "Alpha" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "ta")
	if len(filtered) != 1 || filtered[0].Label != "Beta" {
		t.Fatalf("expected fuzzy match for Beta, got %#v", filtered)
	}
	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
	if got := FilterItems(items, " "); len(got) != 3 {
		t.Fatalf("blank query should keep every row, got %d", len(got))
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := newTestItems("First", "Second", "Third")
	cases := []struct {
		query string
		want  int
	}{
		{"Second", 1},
		{"th", 2},
		{"scd", 1},
		{"zzz", 0},
	}
	for _, tc := range cases {
		if idx := BestMatchIndex(items, tc.query); idx != tc.want {
			t.Fatalf("BestMatchIndex(%q) = %d, want %d", tc.query, idx, tc.want)
		}
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestItemsFromElements(t *testing.T) {
	group := command.NewGroup(command.Info{Key: "settings", Label: "settings.title"})
	group.Add(command.NewToggle(command.Info{Key: "grid", Label: "settings.grid"}))
	group.SetExpanded(true)
	registry := render.NewDefaultRegistry(render.Widgets{Styles: theme.Plain()})

	items := ItemsFromElements([]render.Element{registry.MustResolve(group, render.PlacementMenu)}, i18n.English())
	if len(items) != 2 {
		t.Fatalf("expected group and child rows, got %d", len(items))
	}
	if items[0].Label != "Settings" || items[1].Label != "Show grid" {
		t.Fatalf("expected translated labels, got %q / %q", items[0].Label, items[1].Label)
	}
	if items[1].Depth != 1 || items[1].ID != "grid" {
		t.Fatalf("expected nested row keyed by command key, got depth %d id %q", items[1].Depth, items[1].ID)
	}

	level := NewLevel("root", "Root", nil, items)
	if got := level.CheckedItems(); len(got) != 0 {
		t.Fatalf("expected nothing checked, got %d", len(got))
	}
}
