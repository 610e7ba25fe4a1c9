package command

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/toolbar-commands/internal/logging"
)

func quietLogs(t *testing.T) *[]string {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))
	var warnings []string
	restore := logging.SetWarnHook(func(msg string) { warnings = append(warnings, msg) })
	t.Cleanup(func() {
		restore()
		logging.Configure("")
	})
	return &warnings
}

func TestUpdateCallsListenersInOrder(t *testing.T) {
	a := NewAction(Info{Key: "fit"}, nil)
	var order []int
	for i := 1; i <= 3; i++ {
		n := i
		a.AddListener(func() { order = append(order, n) })
	}
	a.Update()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected subscription order, got %v", order)
	}
}

func TestRemoveListener(t *testing.T) {
	a := NewAction(Info{Key: "fit"}, nil)
	hits := 0
	id := a.AddListener(func() { hits++ })
	if !a.RemoveListener(id) {
		t.Fatal("expected listener removal")
	}
	if a.RemoveListener(id) {
		t.Fatal("expected second removal to report false")
	}
	a.Update()
	if hits != 0 {
		t.Fatalf("expected removed listener silent, got %d", hits)
	}
	if a.AddListener(nil) != 0 {
		t.Fatal("expected nil listener ignored")
	}
}

func TestListenerPanicIsolated(t *testing.T) {
	quietLogs(t)
	a := NewAction(Info{Key: "fit"}, nil)
	after := 0
	a.AddListener(func() { panic("boom") })
	a.AddListener(func() { after++ })
	a.Update()
	if after != 1 {
		t.Fatalf("expected sibling listener to run, got %d", after)
	}
}

func TestReentrantUpdateIsBounded(t *testing.T) {
	warnings := quietLogs(t)
	a := NewAction(Info{Key: "fit"}, nil)
	calls := 0
	a.AddListener(func() {
		calls++
		a.Update()
	})
	a.Update()
	if calls != MaxNotifyDepth {
		t.Fatalf("expected %d nested calls, got %d", MaxNotifyDepth, calls)
	}
	if len(*warnings) != 1 || !strings.Contains((*warnings)[0], "depth") {
		t.Fatalf("expected one depth warning, got %v", *warnings)
	}
	a.Update()
	if calls != 2*MaxNotifyDepth {
		t.Fatalf("expected depth counter to reset, got %d calls", calls)
	}
}

func TestListenerMutatesListenersDuringUpdate(t *testing.T) {
	a := NewAction(Info{Key: "fit"}, nil)
	late := 0
	var first ListenerID
	first = a.AddListener(func() {
		a.RemoveListener(first)
		a.AddListener(func() { late++ })
	})
	a.Update()
	if late != 0 {
		t.Fatal("expected listener added during update to wait for next update")
	}
	a.Update()
	if late != 1 {
		t.Fatalf("expected late listener on next update, got %d", late)
	}
}

func TestInvokeLayoutMarkersFails(t *testing.T) {
	for _, c := range []Command{NewDivider("d"), NewSection(Info{Label: "Display"})} {
		changed, err := Invoke(c)
		if !errors.Is(err, ErrNotInvokable) {
			t.Fatalf("expected ErrNotInvokable for %s, got %v", c.Kind(), err)
		}
		if changed {
			t.Fatalf("expected no change for %s", c.Kind())
		}
	}
	if _, err := Invoke(nil); !errors.Is(err, ErrNotInvokable) {
		t.Fatalf("expected ErrNotInvokable for nil, got %v", err)
	}
}

func TestInvokeNotifiesOnlyOnChange(t *testing.T) {
	calls := 0
	result := false
	a := NewAction(Info{Key: "fit"}, func(any) bool {
		calls++
		return result
	})
	hits := 0
	a.AddListener(func() { hits++ })

	changed, err := Invoke(a)
	if err != nil || changed || hits != 0 {
		t.Fatalf("expected silent no-op, changed=%v err=%v hits=%d", changed, err, hits)
	}
	result = true
	changed, _ = Invoke(a)
	if !changed || hits != 1 || calls != 2 {
		t.Fatalf("expected notification on change, changed=%v hits=%d calls=%d", changed, hits, calls)
	}
}

func TestAttachIsIdempotentAndRecursive(t *testing.T) {
	restore := newID
	t.Cleanup(func() { newID = restore })
	n := 0
	newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}

	g := NewGroup(Info{Key: "settings"})
	child := NewToggle(Info{Key: "grid"})
	g.Add(child)
	attached := 0
	ctx := "scene"
	Attach(g, ctx)
	Attach(g, "other")
	Walk(g, func(c Command) bool {
		if c.Core().IsLive() {
			attached++
		}
		if c.Core().Context() != ctx {
			t.Fatalf("expected first context kept, got %v", c.Core().Context())
		}
		return true
	})
	if attached != 2 {
		t.Fatalf("expected 2 attached commands, got %d", attached)
	}
	if g.UniqueID() != "id-1" || child.UniqueID() != "id-2" {
		t.Fatalf("unexpected ids %q %q", g.UniqueID(), child.UniqueID())
	}
}

func TestAttachDoesNotMaterializeLazyChildren(t *testing.T) {
	built := false
	f := NewFilter(Info{Key: "models"}, func(any) []*FilterItem {
		built = true
		return nil
	})
	Attach(f, nil)
	if built {
		t.Fatal("expected attach to leave lazy children unbuilt")
	}
}

func TestWalkStops(t *testing.T) {
	g := NewGroup(Info{Key: "root"})
	g.Add(NewToggle(Info{Key: "a"}))
	g.Add(NewToggle(Info{Key: "b"}))
	var seen []string
	Walk(g, func(c Command) bool {
		seen = append(seen, KeyOf(c))
		return KeyOf(c) != "a"
	})
	if len(seen) != 2 || seen[1] != "a" {
		t.Fatalf("expected walk to stop after a, got %v", seen)
	}
}

func TestKindString(t *testing.T) {
	if KindFilterItem.String() != "filter-item" {
		t.Fatalf("unexpected kind name %q", KindFilterItem.String())
	}
	if Kind(99).String() != "unknown" {
		t.Fatal("expected unknown for out-of-range kind")
	}
}
