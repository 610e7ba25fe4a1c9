// Package command implements the toolbar command model: a small contract every
// command satisfies, optional capabilities (invoke, checked state, children,
// color, shortcut) that variants compose, and a synchronous observer channel
// carried by Base.
//
// Commands are described freshly on every UI pass. Identity across passes is
// logical: Equals compares kind and configuration so a session can map a new
// description onto the live instance that owns the state (see package session).
//
// Notification is synchronous. Update calls every listener in subscription
// order before returning; there is no batching and no goroutine.
package command

// Kind tags a command variant.
type Kind int

const (
	KindAction Kind = iota
	KindToggle
	KindTool
	KindDivider
	KindSection
	KindSlider
	KindInput
	KindOption
	KindOptionItem
	KindFilter
	KindFilterItem
	KindGroup
)

var kindNames = [...]string{
	KindAction:     "action",
	KindToggle:     "toggle",
	KindTool:       "tool",
	KindDivider:    "divider",
	KindSection:    "section",
	KindSlider:     "slider",
	KindInput:      "input",
	KindOption:     "option",
	KindOptionItem: "option-item",
	KindFilter:     "filter",
	KindFilterItem: "filter-item",
	KindGroup:      "group",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Command is the contract shared by every variant.
type Command interface {
	Core() *Base
	Kind() Kind
	Label() string
	Tooltip() string
	Icon() string
	Enabled() bool
	Visible() bool
	Equals(other Command) bool
}

// Invokable commands perform a state transition when the user activates them.
// InvokeCore reports whether anything changed.
type Invokable interface {
	InvokeCore() bool
}

// Checkable commands expose a checked flag.
type Checkable interface {
	Checked() bool
}

// Container commands own an ordered list of children. Children may build the
// list lazily on first call.
type Container interface {
	Children() []Command
}

// lazyContainer is implemented by containers whose Children call has a
// materializing side effect; CurrentChildren returns only what exists.
type lazyContainer interface {
	CurrentChildren() []Command
}

// Colored commands carry a display color (hex or ANSI code).
type Colored interface {
	Color() string
}

// Shortcutter commands respond to a keyboard shortcut.
type Shortcutter interface {
	Shortcut() string
}

// Keyer commands expose a stable configuration key. Two commands that are
// Equal must return the same key.
type Keyer interface {
	Key() string
}

// Attacher commands are told when they are bound to an execution context.
type Attacher interface {
	OnAttach(ctx any)
}

// Info is the descriptive configuration of a command. Label and Tooltip are
// translation tokens or literal strings; Icon is a symbolic icon name.
type Info struct {
	Key      string
	Label    string
	Tooltip  string
	Icon     string
	Shortcut string
}

// Meta stores Info and the static enabled/visible flags. Variants embed it
// next to Base.
type Meta struct {
	info     Info
	disabled bool
	hidden   bool
}

// NewMeta wraps info.
func NewMeta(info Info) Meta {
	return Meta{info: info}
}

func (m *Meta) Info() Info        { return m.info }
func (m *Meta) Key() string       { return m.info.Key }
func (m *Meta) Label() string     { return m.info.Label }
func (m *Meta) Tooltip() string   { return m.info.Tooltip }
func (m *Meta) Icon() string      { return m.info.Icon }
func (m *Meta) Shortcut() string  { return m.info.Shortcut }
func (m *Meta) Enabled() bool     { return !m.disabled }
func (m *Meta) Visible() bool     { return !m.hidden }
func (m *Meta) SetEnabled(v bool) { m.disabled = !v }
func (m *Meta) SetVisible(v bool) { m.hidden = !v }
func (m *Meta) sameInfo(o *Meta) bool {
	return m.info.Key == o.info.Key && m.info.Label == o.info.Label && m.info.Icon == o.info.Icon
}
