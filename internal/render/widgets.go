package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/toolbar-commands/internal/command"
	"github.com/atomicstack/toolbar-commands/internal/i18n"
	"github.com/atomicstack/toolbar-commands/internal/icon"
	"github.com/atomicstack/toolbar-commands/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Widget names carried by Element.Widget.
const (
	WidgetDivider  = "divider"
	WidgetSection  = "section"
	WidgetCheckbox = "checkbox"
	WidgetRadio    = "radio"
	WidgetSwatch   = "swatch"
	WidgetSlider   = "slider"
	WidgetInput    = "input"
	WidgetDropdown = "dropdown"
	WidgetFilter   = "filter"
	WidgetGroup    = "group"
	WidgetButton   = "button"
)

const (
	sliderBarWidth   = 10
	defaultRuleWidth = 24
)

// Priorities of the default resolvers.
const (
	PriorityDivider    = 10
	PrioritySection    = 20
	PriorityFilterItem = 25
	PriorityOptionItem = 26
	PriorityCheckbox   = 30
	PrioritySlider     = 40
	PriorityInput      = 50
	PriorityOption     = 60
	PriorityFilter     = 70
	PriorityGroup      = 80
)

// Widgets builds the default resolvers. Zero fields fall back to defaults.
type Widgets struct {
	Icons      *icon.Registry
	Translator *i18n.Translator
	Styles     *theme.Styles
	Width      int
}

// NewDefaultRegistry returns a registry with the default resolvers installed.
func NewDefaultRegistry(w Widgets) *Registry {
	r := NewRegistry()
	w.Install(r)
	return r
}

// Install registers every default resolver, including the catch-all button.
func (w Widgets) Install(r *Registry) {
	if w.Styles == nil {
		w.Styles = theme.Default()
	}
	if w.Translator == nil {
		w.Translator = i18n.English()
	}
	r.Register(PriorityDivider, WidgetDivider, kindIs(command.KindDivider), w.divider)
	r.Register(PrioritySection, WidgetSection, kindIs(command.KindSection), w.section)
	r.Register(PriorityFilterItem, WidgetSwatch, kindIs(command.KindFilterItem), w.filterItem)
	r.Register(PriorityOptionItem, WidgetRadio, kindIs(command.KindOptionItem), w.optionItem)
	r.Register(PriorityCheckbox, WidgetCheckbox, isCheckable, w.checkbox)
	r.Register(PrioritySlider, WidgetSlider, kindIs(command.KindSlider), w.slider)
	r.Register(PriorityInput, WidgetInput, kindIs(command.KindInput), w.input)
	r.Register(PriorityOption, WidgetDropdown, kindIs(command.KindOption), w.childResolver(r, w.option))
	r.Register(PriorityFilter, WidgetFilter, kindIs(command.KindFilter), w.childResolver(r, w.filter))
	r.Register(PriorityGroup, WidgetGroup, kindIs(command.KindGroup), w.childResolver(r, w.group))
	r.RegisterFallback(WidgetButton, w.button)
}

func kindIs(kind command.Kind) Predicate {
	return func(c command.Command, _ Placement) bool {
		return c != nil && c.Kind() == kind
	}
}

func isCheckable(c command.Command, _ Placement) bool {
	_, ok := c.(command.Checkable)
	return ok
}

// childResolver wraps a composite factory so that its children are resolved
// through the same registry. Only menu placement and expanded groups carry
// children.
func (w Widgets) childResolver(r *Registry, build Factory) Factory {
	return func(c command.Command, p Placement) Element {
		el := build(c, p)
		if !w.showChildren(c, p) {
			return el
		}
		for _, child := range command.Children(c) {
			if child == nil || !child.Visible() {
				continue
			}
			el.Children = append(el.Children, r.MustResolve(child, p))
		}
		return el
	}
}

func (w Widgets) showChildren(c command.Command, p Placement) bool {
	if g, ok := c.(*command.Group); ok {
		return g.Expanded()
	}
	return p == PlacementMenu
}

func (w Widgets) element(c command.Command, widget, text string) Element {
	return Element{
		Widget:  widget,
		Command: c,
		Text:    text,
		Tooltip: w.Translator.T(c.Tooltip()),
	}
}

func (w Widgets) label(c command.Command) string {
	text := w.Translator.T(c.Label())
	if glyph := w.Icons.Get(c.Icon())(); glyph != "" {
		text = glyph + " " + text
	}
	return w.fit(text)
}

func (w Widgets) fit(text string) string {
	if w.Width <= 0 {
		return text
	}
	return truncate.StringWithTail(text, uint(w.Width), "…")
}

func (w Widgets) style(c command.Command, checked bool) *lipgloss.Style {
	switch {
	case !c.Enabled():
		return w.Styles.ButtonDisabled
	case checked:
		return w.Styles.ButtonChecked
	default:
		return w.Styles.Button
	}
}

func (w Widgets) divider(c command.Command, p Placement) Element {
	rule := "│"
	if p == PlacementMenu {
		width := w.Width
		if width <= 0 {
			width = defaultRuleWidth
		}
		rule = strings.Repeat("─", width)
	}
	return Element{Widget: WidgetDivider, Command: c, Text: w.Styles.Divider.Render(rule)}
}

func (w Widgets) section(c command.Command, _ Placement) Element {
	return w.element(c, WidgetSection, w.Styles.Section.Render(w.fit(w.Translator.T(c.Label()))))
}

func (w Widgets) checkbox(c command.Command, _ Placement) Element {
	checked := command.IsChecked(c)
	text := checkbox(checked) + " " + w.label(c)
	return w.element(c, WidgetCheckbox, w.style(c, checked).Render(text))
}

func (w Widgets) optionItem(c command.Command, _ Placement) Element {
	checked := command.IsChecked(c)
	mark := "( )"
	if checked {
		mark = "(•)"
	}
	return w.element(c, WidgetRadio, w.style(c, checked).Render(mark+" "+w.label(c)))
}

func (w Widgets) filterItem(c command.Command, _ Placement) Element {
	checked := command.IsChecked(c)
	swatch := ""
	if colored, ok := c.(command.Colored); ok && colored.Color() != "" {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(colored.Color())).Render("●") + " "
	}
	text := checkbox(checked) + " " + swatch + w.style(c, checked).Render(w.label(c))
	return w.element(c, WidgetSwatch, text)
}

func (w Widgets) slider(c command.Command, _ Placement) Element {
	s := c.(*command.Slider)
	filled := int(s.Fraction()*sliderBarWidth + 0.5)
	if filled > sliderBarWidth {
		filled = sliderBarWidth
	}
	bar := w.Styles.SliderFill.Render(strings.Repeat("█", filled)) +
		w.Styles.SliderTrack.Render(strings.Repeat("░", sliderBarWidth-filled))
	text := fmt.Sprintf("%s [%s] %s", w.style(c, false).Render(w.label(c)), bar, formatValue(s.Value(), s.Step()))
	return w.element(c, WidgetSlider, text)
}

func (w Widgets) input(c command.Command, _ Placement) Element {
	in := c.(*command.Input)
	value := w.Styles.Input.Render(in.Value())
	if in.Value() == "" {
		value = w.Styles.InputPlaceholder.Render(w.Translator.T(in.Placeholder()))
	}
	text := w.style(c, false).Render(w.label(c)+":") + " " + value
	return w.element(c, WidgetInput, text)
}

func (w Widgets) option(c command.Command, _ Placement) Element {
	o := c.(*command.Option)
	current := ""
	if item := o.SelectedChild(); item != nil {
		current = w.Translator.T(item.Label())
	}
	text := w.style(c, false).Render(w.label(c)+": "+current) + " ▾"
	return w.element(c, WidgetDropdown, text)
}

func (w Widgets) filter(c command.Command, _ Placement) Element {
	f := c.(*command.Filter)
	text := w.style(c, f.IsSomeChecked()).Render(triState(f)+" "+w.label(c)+": "+f.SelectedLabel()) + " ▾"
	return w.element(c, WidgetFilter, text)
}

func (w Widgets) group(c command.Command, _ Placement) Element {
	g := c.(*command.Group)
	marker := "▸"
	if g.Expanded() {
		marker = "▾"
	}
	return w.element(c, WidgetGroup, w.style(c, false).Render(marker+" "+w.label(c)))
}

func (w Widgets) button(c command.Command, _ Placement) Element {
	return w.element(c, WidgetButton, w.style(c, false).Render(w.label(c)))
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func triState(f *command.Filter) string {
	switch {
	case f.IsAllChecked():
		return "[x]"
	case f.IsSomeChecked():
		return "[-]"
	default:
		return "[ ]"
	}
}

func formatValue(v, step float64) string {
	prec := 0
	if step > 0 && step < 1 {
		prec = len(strconv.FormatFloat(step, 'f', -1, 64)) - 2
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
