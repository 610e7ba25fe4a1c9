package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/i18n"
	"github.com/atomicstack/toolbar-commands/internal/icon"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
	"github.com/atomicstack/toolbar-commands/internal/render"
	"github.com/atomicstack/toolbar-commands/internal/session"
	"github.com/atomicstack/toolbar-commands/internal/theme"
	"github.com/atomicstack/toolbar-commands/internal/ui"
	"github.com/atomicstack/toolbar-commands/internal/viewer"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Locale     string
	Title      string
	Placement  render.Placement
	Width      int
	Height     int
	ShowFooter bool
}

var runProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// Run bootstraps and executes the Bubble Tea program over a fresh viewer
// scene. The session is disposed when the program exits.
func Run(cfg Config) (err error) {
	defer func() { events.App.Stop(err) }()

	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		return err
	}
	sess := session.New(viewer.NewScene())
	defer sess.Dispose()

	renderer := render.NewDefaultRegistry(render.Widgets{
		Icons:      icon.Defaults(),
		Translator: tr,
		Styles:     theme.Default(),
	})
	model := ui.NewModel(ui.Config{
		Session:    sess,
		Build:      func(s *session.Session) []command.Command { return viewer.Pass(s, tr) },
		Renderer:   renderer,
		Translator: tr,
		Placement:  cfg.Placement,
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	})
	defer model.Close()
	if err := model.Err(); err != nil {
		return fmt.Errorf("build toolbar: %w", err)
	}

	err = runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return err
	}
	return model.Err()
}
