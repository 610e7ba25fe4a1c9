package command

import "github.com/atomicstack/toolbar-commands/internal/logging"

// Option is a single-select group. The selection is one value stored on the
// group (or in the execution context when bound); every item computes its
// checked flag from it, so selecting an item unchecks its siblings in the
// same write.
type Option struct {
	Base
	Meta
	items    []*OptionItem
	selected string
	get      func(ctx any) string
	set      func(ctx any, value string)
}

func NewOption(info Info) *Option {
	return &Option{Meta: NewMeta(info)}
}

// Bind reads and writes the selected value through the execution context.
func (o *Option) Bind(get func(ctx any) string, set func(ctx any, value string)) *Option {
	o.get = get
	o.set = set
	return o
}

// Add appends an item in display order. Values identify the selection, so
// an empty or repeated value is rejected with a warning and Add returns nil.
func (o *Option) Add(value string, info Info) *OptionItem {
	if value == "" {
		logging.Warn("option %q: ignoring item %q without a value", o.Label(), info.Label)
		return nil
	}
	if o.item(value) != nil {
		logging.Warn("option %q: ignoring duplicate value %q", o.Label(), value)
		return nil
	}
	item := &OptionItem{Meta: NewMeta(info), parent: o, value: value}
	o.items = append(o.items, item)
	attachChild(o, item)
	return item
}

func (o *Option) Kind() Kind { return KindOption }

// Selected returns the shared selection value.
func (o *Option) Selected() string {
	if o.get != nil && o.IsLive() {
		return o.get(o.Context())
	}
	return o.selected
}

// SelectedChild returns the first checked item, or nil.
func (o *Option) SelectedChild() *OptionItem {
	for _, item := range o.items {
		if item.Checked() {
			return item
		}
	}
	return nil
}

func (o *Option) item(value string) *OptionItem {
	for _, item := range o.items {
		if item.value == value {
			return item
		}
	}
	return nil
}

// Items returns the option items in display order.
func (o *Option) Items() []*OptionItem {
	out := make([]*OptionItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Option) Children() []Command {
	out := make([]Command, len(o.items))
	for i, item := range o.items {
		out[i] = item
	}
	return out
}

// Select makes value the selection and notifies the group and every item.
// It reports false when value is already selected.
func (o *Option) Select(value string) bool {
	return o.selectValue(value, nil)
}

// selectValue writes the shared value and notifies the group and the items
// other than skip; Invoke notifies skip itself.
func (o *Option) selectValue(value string, skip *OptionItem) bool {
	if o.Selected() == value {
		return false
	}
	o.selected = value
	if o.set != nil && o.IsLive() {
		o.set(o.Context(), value)
	}
	o.Update()
	for _, item := range o.items {
		if item != skip {
			item.Update()
		}
	}
	return true
}

func (o *Option) Equals(other Command) bool {
	p, ok := other.(*Option)
	if !ok {
		return false
	}
	if p == o {
		return true
	}
	if !o.sameInfo(&p.Meta) || len(o.items) != len(p.items) {
		return false
	}
	for i := range o.items {
		if !o.items[i].Equals(p.items[i]) {
			return false
		}
	}
	return true
}

// OptionItem is one choice of an Option.
type OptionItem struct {
	Base
	Meta
	parent *Option
	value  string
}

func (it *OptionItem) Kind() Kind    { return KindOptionItem }
func (it *OptionItem) Value() string { return it.value }
func (it *OptionItem) Checked() bool { return it.parent.Selected() == it.value }

func (it *OptionItem) Enabled() bool {
	return it.Meta.Enabled() && it.parent.Enabled()
}

func (it *OptionItem) InvokeCore() bool {
	return it.parent.selectValue(it.value, it)
}

func (it *OptionItem) Equals(other Command) bool {
	o, ok := other.(*OptionItem)
	return ok && (o == it || (it.value == o.value && it.sameInfo(&o.Meta)))
}
