package viewer

import (
	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/i18n"
	"github.com/atomicstack/toolbar-commands/internal/logging"
	"github.com/atomicstack/toolbar-commands/internal/session"
)

// Toolbar describes the toolbar afresh. Every call returns new transient
// commands; pass them through a session to reach the live instances.
func Toolbar(tr *i18n.Translator) []command.Command {
	return []command.Command{
		NavigateTool(),
		MeasureTool(),
		FitAction(),
		command.NewDivider("toolbar.divider"),
		QualityOption(),
		ModelFilter(tr),
		Settings(),
	}
}

// Pass runs one UI pass: it describes the toolbar, resolves every command
// against sess and makes sure a default tool is active.
func Pass(sess *session.Session, tr *i18n.Translator) []command.Command {
	live := sess.ResolveAll(Toolbar(tr))
	if sess.DefaultTool() == nil {
		sess.SetDefaultTool(NavigateTool())
	}
	if sess.ActiveTool() == nil {
		sess.ActivateDefaultTool()
	}
	return live
}

func NavigateTool() *command.Tool {
	return command.NewTool(command.Info{
		Key:      "navigate",
		Label:    "toolbar.navigate",
		Tooltip:  "toolbar.navigate.tooltip",
		Icon:     "navigate",
		Shortcut: "n",
	})
}

// MeasureTool toggles the measuring mode. While active, "p" drops a
// measurement point and backspace removes the last one.
func MeasureTool() *command.Tool {
	return command.NewTool(command.Info{
		Key:      "measure",
		Label:    "toolbar.measure",
		Tooltip:  "toolbar.measure.tooltip",
		Icon:     "ruler",
		Shortcut: "m",
	}).OnActivation(func(ctx any, active bool) {
		if s := sceneOf(ctx); s != nil {
			s.Measuring = active
			if !active {
				s.Measured = 0
			}
		}
	}).OnKey(func(ctx any, key string) bool {
		s := sceneOf(ctx)
		if s == nil {
			return false
		}
		switch key {
		case "p":
			s.Measured++
			return true
		case "backspace":
			if s.Measured == 0 {
				return false
			}
			s.Measured--
			return true
		}
		return false
	})
}

func FitAction() *command.Action {
	return command.NewAction(command.Info{
		Key:      "fit",
		Label:    "toolbar.fit_view",
		Tooltip:  "toolbar.fit_view.tooltip",
		Icon:     "fit",
		Shortcut: "f",
	}, func(ctx any) bool {
		s := sceneOf(ctx)
		return s != nil && s.FitToView()
	}).WhenEnabled(func(ctx any) bool {
		s := sceneOf(ctx)
		return s == nil || s.AnyModelVisible()
	})
}

func QualityOption() *command.Option {
	opt := command.NewOption(command.Info{
		Key:   "quality",
		Label: "toolbar.quality",
		Icon:  "quality",
	}).Bind(func(ctx any) string {
		if s := sceneOf(ctx); s != nil {
			return s.Quality
		}
		return DefaultQuality
	}, func(ctx any, value string) {
		if s := sceneOf(ctx); s != nil {
			if err := s.SetQuality(value); err != nil {
				logging.Error(err)
			}
		}
	})
	opt.Add(QualityLow, command.Info{Key: "quality.low", Label: "toolbar.quality.low"})
	opt.Add(QualityMedium, command.Info{Key: "quality.medium", Label: "toolbar.quality.medium"})
	opt.Add(QualityHigh, command.Info{Key: "quality.high", Label: "toolbar.quality.high"})
	return opt
}

// ModelFilter shows or hides model types. Its items are built from the
// scene's loaded models the first time they are needed.
func ModelFilter(tr *i18n.Translator) *command.Filter {
	return command.NewFilter(command.Info{
		Key:   "models",
		Label: "toolbar.models",
		Icon:  "filter",
	}, func(ctx any) []*command.FilterItem {
		s := sceneOf(ctx)
		if s == nil {
			return nil
		}
		items := make([]*command.FilterItem, 0, len(s.models))
		for _, t := range s.models {
			t := t
			item := command.NewFilterItem(command.Info{
				Key:   "models." + string(t),
				Label: "toolbar.models." + string(t),
			}, modelColors[t], true).Bind(func(ctx any) bool {
				return sceneOf(ctx).ModelVisible(t)
			}, func(ctx any, v bool) {
				sceneOf(ctx).SetModelVisible(t, v)
			})
			items = append(items, item)
		}
		return items
	}).WithTranslator(tr)
}

// Settings describes the settings menu.
func Settings() *command.Group {
	settings := command.NewSettings(command.Info{Key: "settings"})
	settings.Add(command.NewSection(command.Info{Key: "settings.display", Label: "settings.display"}))
	settings.Add(command.NewToggle(command.Info{
		Key:      "grid",
		Label:    "settings.grid",
		Icon:     "grid",
		Shortcut: "g",
	}).Bind(func(ctx any) bool {
		return sceneOf(ctx).ShowGrid
	}, func(ctx any, v bool) {
		sceneOf(ctx).ShowGrid = v
	}))
	settings.Add(command.NewSlider(command.Info{Key: "point_size", Label: "settings.point_size"}, 1, 5, 0.5).
		Bind(func(ctx any) float64 {
			return sceneOf(ctx).PointSize
		}, func(ctx any, v float64) {
			sceneOf(ctx).PointSize = v
		}))
	settings.Add(command.NewSlider(command.Info{Key: "point_budget", Label: "settings.point_budget"}, 1, 10, 1).
		Bind(func(ctx any) float64 {
			return sceneOf(ctx).PointBudget
		}, func(ctx any, v float64) {
			sceneOf(ctx).PointBudget = v
		}))
	settings.Add(command.NewDivider("settings.divider"))
	settings.Add(advanced())
	settings.Add(command.NewAction(command.Info{
		Key:   "reset",
		Label: "settings.reset",
		Icon:  "reset",
	}, func(ctx any) bool {
		s := sceneOf(ctx)
		return s != nil && s.Reset()
	}))
	return settings
}

func advanced() *command.Group {
	group := command.NewGroup(command.Info{Key: "settings.advanced", Label: "settings.advanced"})
	group.Add(command.NewToggle(command.Info{
		Key:   "clipping",
		Label: "settings.clipping",
		Icon:  "clip",
	}).Bind(func(ctx any) bool {
		return sceneOf(ctx).Clipping
	}, func(ctx any, v bool) {
		sceneOf(ctx).Clipping = v
	}))
	group.Add(command.NewInput(command.Info{
		Key:   "note",
		Label: "settings.note",
		Icon:  "note",
	}, "settings.note.placeholder", func(ctx any, value string) bool {
		s := sceneOf(ctx)
		if s == nil || s.Note == value {
			return false
		}
		s.Note = value
		return true
	}))
	return group
}
