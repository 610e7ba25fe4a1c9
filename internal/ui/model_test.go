package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/i18n"
	"github.com/atomicstack/toolbar-commands/internal/render"
	"github.com/atomicstack/toolbar-commands/internal/session"
	"github.com/atomicstack/toolbar-commands/internal/viewer"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) (*viewer.Scene, *Harness) {
	t.Helper()
	scene := viewer.NewScene()
	sess := session.New(scene)
	t.Cleanup(sess.Dispose)
	tr := i18n.English()
	m := NewModel(Config{
		Session:    sess,
		Build:      func(s *session.Session) []command.Command { return viewer.Pass(s, tr) },
		Translator: tr,
		Width:      80,
		Height:     40,
	})
	if err := m.Err(); err != nil {
		t.Fatalf("unexpected model error: %v", err)
	}
	return scene, NewHarness(m)
}

// focus moves the cursor of the current level onto the row labelled label.
func focus(t *testing.T, h *Harness, label string) {
	t.Helper()
	current := h.Model().currentLevel()
	for i, item := range current.Items {
		if item.Label == label {
			current.Cursor = i
			return
		}
	}
	t.Fatalf("no row labelled %q in level %s", label, current.ID)
}

func TestNewModelBuildsToolbarRows(t *testing.T) {
	_, h := newTestModel(t)
	root := h.Model().currentLevel()
	if len(root.Items) != 7 {
		t.Fatalf("expected seven toolbar rows, got %d", len(root.Items))
	}
	if item, _ := root.Current(); item.Label != "Navigate" {
		t.Fatalf("expected cursor on the first tool, got %q", item.Label)
	}
	view := h.View()
	for _, want := range []string{"[x] Navigate", "[ ] Measure", "Fit to view", "Quality: Medium ▾", "Models: All ▾", "▸ Settings"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestRowsStayStableAcrossRefreshes(t *testing.T) {
	_, h := newTestModel(t)
	m := h.Model()
	before := m.currentLevel().Items[1].Command
	if err := m.refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if m.currentLevel().Items[1].Command != before {
		t.Fatalf("expected the live command to be reused across passes")
	}
	if len(m.subscribed) == 0 {
		t.Fatalf("expected the model to subscribe to displayed commands")
	}
}

func TestEmptyRendererIsFatal(t *testing.T) {
	scene := viewer.NewScene()
	sess := session.New(scene)
	defer sess.Dispose()
	m := NewModel(Config{
		Session:  sess,
		Build:    func(s *session.Session) []command.Command { return viewer.Pass(s, nil) },
		Renderer: render.NewRegistry(),
	})
	if !errors.Is(m.Err(), render.ErrEmptyRegistry) {
		t.Fatalf("expected ErrEmptyRegistry, got %v", m.Err())
	}
	if msg := m.Init()(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected Init to quit, got %T", msg)
	}
}

func TestMenuHeaderBreadcrumb(t *testing.T) {
	_, h := newTestModel(t)
	if got := h.Model().menuHeader(); got != defaultRootTitle {
		t.Fatalf("expected %q, got %q", defaultRootTitle, got)
	}
	focus(t, h, "Quality")
	h.Keys("enter")
	if got := h.Model().menuHeader(); got != "toolbar → Quality" {
		t.Fatalf("unexpected breadcrumb %q", got)
	}
}

func TestCloseRemovesListeners(t *testing.T) {
	_, h := newTestModel(t)
	m := h.Model()
	fit := m.currentLevel().Items[2].Command
	if fit.Core().ListenerCount() == 0 {
		t.Fatalf("expected a listener on the fit action")
	}
	m.Close()
	if fit.Core().ListenerCount() != 0 {
		t.Fatalf("expected listeners removed, %d left", fit.Core().ListenerCount())
	}
}
