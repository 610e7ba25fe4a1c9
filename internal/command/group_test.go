package command

import (
	"strings"
	"testing"
)

func TestGroupKeepsDuplicatesWithWarning(t *testing.T) {
	warnings := quietLogs(t)
	g := NewSettings(Info{Key: "settings"})
	g.Add(NewToggle(Info{Key: "grid", Label: "Show grid"}))
	if g.Len() != 1 || len(*warnings) != 0 {
		t.Fatalf("unexpected state after first add: len=%d warnings=%v", g.Len(), *warnings)
	}
	g.Add(NewToggle(Info{Key: "grid", Label: "Show grid"}))
	if g.Len() != 2 {
		t.Fatalf("expected duplicate retained, got %d children", g.Len())
	}
	if len(*warnings) != 1 || !strings.Contains((*warnings)[0], "duplicate") {
		t.Fatalf("expected duplicate warning, got %v", *warnings)
	}
	g.Add(NewToggle(Info{Key: "grid", Label: "Show grid"}))
	if len(g.Children()) != 3 {
		t.Fatalf("expected 3 children, got %d", len(g.Children()))
	}
}

func TestGroupClearAndNesting(t *testing.T) {
	quietLogs(t)
	root := NewSettings(Info{Key: "settings"})
	advanced := NewGroup(Info{Key: "advanced", Label: "Advanced"})
	advanced.Add(NewSlider(Info{Key: "budget"}, 1, 10, 1))
	root.Add(NewSection(Info{Key: "display", Label: "Display"}))
	root.Add(advanced)

	count := 0
	Walk(root, func(Command) bool {
		count++
		return true
	})
	if count != 4 {
		t.Fatalf("expected 4 nodes in tree, got %d", count)
	}
	if root.Icon() != "Settings" || root.Label() != "settings.title" {
		t.Fatalf("unexpected settings defaults %q %q", root.Icon(), root.Label())
	}
	root.Clear()
	if root.Len() != 0 {
		t.Fatal("expected empty group after clear")
	}
}

func TestGroupAccordionInvoke(t *testing.T) {
	g := NewGroup(Info{Key: "advanced"})
	if g.Expanded() {
		t.Fatal("expected collapsed group")
	}
	hits := 0
	g.AddListener(func() { hits++ })
	if changed, err := Invoke(g); err != nil || !changed {
		t.Fatalf("expected toggle, changed=%v err=%v", changed, err)
	}
	if !g.Expanded() || hits != 1 {
		t.Fatalf("expected expanded with one notification, expanded=%v hits=%d", g.Expanded(), hits)
	}
}

func TestGroupAttachesLateChildren(t *testing.T) {
	g := NewGroup(Info{Key: "settings"})
	Attach(g, "scene")
	child := NewToggle(Info{Key: "grid"})
	g.Add(child)
	if !child.IsLive() || child.Context() != "scene" {
		t.Fatal("expected child attached when added to a live group")
	}
}
