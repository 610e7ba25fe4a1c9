package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/format/table"
	"github.com/atomicstack/toolbar-commands/internal/i18n"
	"github.com/atomicstack/toolbar-commands/internal/session"
	"github.com/atomicstack/toolbar-commands/internal/viewer"
)

var listColumns = []table.Column{
	{Header: "COMMAND"},
	{Header: "KIND"},
	{Header: "KEY"},
	{Header: "SHORTCUT"},
	{Header: "STATE"},
}

// List writes the live command tree of one toolbar pass to w, one row per
// command with containers expanded.
func List(w io.Writer, cfg Config) error {
	var rows [][]string
	err := walkPass(cfg, func(c command.Command, depth int, tr *i18n.Translator) {
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + listLabel(c, tr),
			c.Kind().String(),
			command.KeyOf(c),
			shortcutOf(c),
			stateOf(c, tr),
		})
	})
	if err != nil {
		return err
	}
	for _, line := range table.Format(listColumns, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Summary counts the visible commands of one toolbar pass by kind.
func Summary(cfg Config) (map[string]int, error) {
	counts := map[string]int{}
	err := walkPass(cfg, func(c command.Command, _ int, _ *i18n.Translator) {
		counts[c.Kind().String()]++
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// walkPass runs one toolbar pass on a throwaway session and visits every
// visible command depth-first.
func walkPass(cfg Config, fn func(c command.Command, depth int, tr *i18n.Translator)) error {
	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		return err
	}
	sess := session.New(viewer.NewScene())
	defer sess.Dispose()

	var visit func(c command.Command, depth int)
	visit = func(c command.Command, depth int) {
		if c == nil || !c.Visible() {
			return
		}
		fn(c, depth, tr)
		for _, child := range command.Children(c) {
			visit(child, depth+1)
		}
	}
	for _, c := range viewer.Pass(sess, tr) {
		visit(c, 0)
	}
	return nil
}

func listLabel(c command.Command, tr *i18n.Translator) string {
	if c.Kind() == command.KindDivider {
		return "--"
	}
	return tr.T(c.Label())
}

func shortcutOf(c command.Command) string {
	if s, ok := c.(command.Shortcutter); ok {
		return s.Shortcut()
	}
	return ""
}

func stateOf(c command.Command, tr *i18n.Translator) string {
	switch v := c.(type) {
	case *command.Slider:
		return strconv.FormatFloat(v.Value(), 'f', -1, 64)
	case *command.Input:
		return v.Value()
	case *command.Option:
		if item := v.SelectedChild(); item != nil {
			return tr.T(item.Label())
		}
		return ""
	case *command.Filter:
		return v.SelectedLabel()
	case command.Checkable:
		if !c.Enabled() {
			return "disabled"
		}
		if v.Checked() {
			return "on"
		}
		return "off"
	}
	if !c.Enabled() {
		return "disabled"
	}
	return ""
}
