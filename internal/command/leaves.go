package command

import (
	"math"

	"github.com/atomicstack/toolbar-commands/internal/logging"
)

// Action is a plain button. Run receives the attached execution context and
// reports whether it changed anything.
type Action struct {
	Base
	Meta
	run       func(ctx any) bool
	isEnabled func(ctx any) bool
}

// NewAction builds an action. run may be nil for a no-op button.
func NewAction(info Info, run func(ctx any) bool) *Action {
	return &Action{Meta: NewMeta(info), run: run}
}

// WhenEnabled installs a predicate evaluated against the execution context.
func (a *Action) WhenEnabled(fn func(ctx any) bool) *Action {
	a.isEnabled = fn
	return a
}

func (a *Action) Kind() Kind { return KindAction }

func (a *Action) Enabled() bool {
	if !a.Meta.Enabled() {
		return false
	}
	if a.isEnabled != nil {
		return a.isEnabled(a.Context())
	}
	return true
}

func (a *Action) InvokeCore() bool {
	if a.run == nil {
		return false
	}
	return a.run(a.Context())
}

func (a *Action) Equals(other Command) bool {
	o, ok := other.(*Action)
	return ok && (o == a || a.sameInfo(&o.Meta))
}

// Toggle is a checkable leaf. When bound, the checked flag is read from and
// written to the execution context; otherwise it is stored locally.
type Toggle struct {
	Base
	Meta
	checked bool
	get     func(ctx any) bool
	set     func(ctx any, v bool)
}

func NewToggle(info Info) *Toggle {
	return &Toggle{Meta: NewMeta(info)}
}

// Bind reads and writes the checked state through the execution context.
func (t *Toggle) Bind(get func(ctx any) bool, set func(ctx any, v bool)) *Toggle {
	t.get = get
	t.set = set
	return t
}

func (t *Toggle) Kind() Kind { return KindToggle }

func (t *Toggle) Checked() bool {
	if t.get != nil && t.IsLive() {
		return t.get(t.Context())
	}
	return t.checked
}

// SetChecked stores v without notifying and reports whether it changed.
func (t *Toggle) SetChecked(v bool) bool {
	if t.Checked() == v {
		return false
	}
	t.checked = v
	if t.set != nil && t.IsLive() {
		t.set(t.Context(), v)
	}
	return true
}

func (t *Toggle) InvokeCore() bool {
	return t.SetChecked(!t.Checked())
}

func (t *Toggle) Equals(other Command) bool {
	o, ok := other.(*Toggle)
	return ok && (o == t || t.sameInfo(&o.Meta))
}

// Divider is a layout marker. Dividers with the same key are equal.
type Divider struct {
	Base
	key string
}

func NewDivider(key string) *Divider {
	return &Divider{key: key}
}

func (d *Divider) Kind() Kind      { return KindDivider }
func (d *Divider) Key() string     { return d.key }
func (d *Divider) Label() string   { return "" }
func (d *Divider) Tooltip() string { return "" }
func (d *Divider) Icon() string    { return "" }
func (d *Divider) Enabled() bool   { return false }
func (d *Divider) Visible() bool   { return true }

func (d *Divider) Equals(other Command) bool {
	o, ok := other.(*Divider)
	return ok && (o == d || o.key == d.key)
}

// Section is a titled layout marker inside menus.
type Section struct {
	Base
	Meta
}

func NewSection(info Info) *Section {
	return &Section{Meta: NewMeta(info)}
}

func (s *Section) Kind() Kind    { return KindSection }
func (s *Section) Enabled() bool { return false }

func (s *Section) Equals(other Command) bool {
	o, ok := other.(*Section)
	return ok && (o == s || s.sameInfo(&o.Meta))
}

// Slider edits a numeric value within [min, max], snapped to step.
type Slider struct {
	Base
	Meta
	min, max, step float64
	value          float64
	get            func(ctx any) float64
	set            func(ctx any, v float64)
}

// NewSlider builds a slider. A non-positive step means continuous.
func NewSlider(info Info, min, max, step float64) *Slider {
	if max < min {
		min, max = max, min
	}
	return &Slider{Meta: NewMeta(info), min: min, max: max, step: step, value: min}
}

func (s *Slider) Bind(get func(ctx any) float64, set func(ctx any, v float64)) *Slider {
	s.get = get
	s.set = set
	return s
}

func (s *Slider) Kind() Kind    { return KindSlider }
func (s *Slider) Min() float64  { return s.min }
func (s *Slider) Max() float64  { return s.max }
func (s *Slider) Step() float64 { return s.step }

func (s *Slider) Value() float64 {
	if s.get != nil && s.IsLive() {
		return s.get(s.Context())
	}
	return s.value
}

// SetValue clamps and snaps v, stores it and notifies listeners when it
// changed. NaN is rejected.
func (s *Slider) SetValue(v float64) bool {
	if math.IsNaN(v) {
		logging.Warn("slider %q: ignoring NaN value", s.Label())
		return false
	}
	v = s.normalize(v)
	if v == s.Value() {
		return false
	}
	s.value = v
	if s.set != nil && s.IsLive() {
		s.set(s.Context(), v)
	}
	s.Update()
	return true
}

func (s *Slider) Increment() bool { return s.SetValue(s.Value() + s.stepOrTenth()) }
func (s *Slider) Decrement() bool { return s.SetValue(s.Value() - s.stepOrTenth()) }

// Fraction returns the value position within the range in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.max == s.min {
		return 0
	}
	return (s.Value() - s.min) / (s.max - s.min)
}

func (s *Slider) stepOrTenth() float64 {
	if s.step > 0 {
		return s.step
	}
	return (s.max - s.min) / 10
}

func (s *Slider) normalize(v float64) float64 {
	if s.step > 0 {
		v = s.min + math.Round((v-s.min)/s.step)*s.step
	}
	return math.Max(s.min, math.Min(s.max, v))
}

func (s *Slider) Equals(other Command) bool {
	o, ok := other.(*Slider)
	if !ok {
		return false
	}
	return o == s || (s.sameInfo(&o.Meta) && s.min == o.min && s.max == o.max && s.step == o.step)
}

// Input is a free-text field. Invoking it submits the current value.
type Input struct {
	Base
	Meta
	placeholder string
	value       string
	submit      func(ctx any, value string) bool
}

func NewInput(info Info, placeholder string, submit func(ctx any, value string) bool) *Input {
	return &Input{Meta: NewMeta(info), placeholder: placeholder, submit: submit}
}

func (in *Input) Kind() Kind          { return KindInput }
func (in *Input) Placeholder() string { return in.placeholder }
func (in *Input) Value() string       { return in.value }

// SetValue stores the draft text and notifies listeners when it changed.
func (in *Input) SetValue(v string) bool {
	if v == in.value {
		return false
	}
	in.value = v
	in.Update()
	return true
}

func (in *Input) InvokeCore() bool {
	if in.submit == nil {
		return false
	}
	return in.submit(in.Context(), in.value)
}

func (in *Input) Equals(other Command) bool {
	o, ok := other.(*Input)
	return ok && (o == in || (in.sameInfo(&o.Meta) && in.placeholder == o.placeholder))
}
