package command

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/toolbar-commands/internal/i18n"
)

// Filter is a multi-select group with a tri-state aggregate. Its items are
// built lazily from the execution context on first access.
type Filter struct {
	Base
	Meta
	build      func(ctx any) []*FilterItem
	built      bool
	items      []*FilterItem
	translator *i18n.Translator
}

// NewFilter builds a filter whose items come from build on first access.
// build may be nil when items are added with Add.
func NewFilter(info Info, build func(ctx any) []*FilterItem) *Filter {
	return &Filter{Meta: NewMeta(info), build: build}
}

// WithTranslator sets the translator used by SelectedLabel.
func (f *Filter) WithTranslator(t *i18n.Translator) *Filter {
	f.translator = t
	return f
}

func (f *Filter) Kind() Kind { return KindFilter }

// InitializeChildrenIfNeeded runs the builder once. The builder needs the
// execution context, so it does not run before the filter is attached.
func (f *Filter) InitializeChildrenIfNeeded() {
	if f.built {
		return
	}
	if f.build == nil {
		f.built = true
		return
	}
	if !f.IsLive() {
		return
	}
	f.built = true
	for _, item := range f.build(f.Context()) {
		f.Add(item)
	}
}

// Add appends item and attaches it when the filter is live.
func (f *Filter) Add(item *FilterItem) {
	if item == nil {
		return
	}
	item.owner = f
	f.items = append(f.items, item)
	attachChild(f, item)
}

// Items materializes and returns the filter items.
func (f *Filter) Items() []*FilterItem {
	f.InitializeChildrenIfNeeded()
	out := make([]*FilterItem, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Filter) Children() []Command {
	f.InitializeChildrenIfNeeded()
	return f.CurrentChildren()
}

func (f *Filter) CurrentChildren() []Command {
	out := make([]Command, len(f.items))
	for i, item := range f.items {
		out[i] = item
	}
	return out
}

// CheckedCount returns the number of checked items.
func (f *Filter) CheckedCount() int {
	f.InitializeChildrenIfNeeded()
	n := 0
	for _, item := range f.items {
		if item.Checked() {
			n++
		}
	}
	return n
}

// IsAllChecked reports whether every item is checked; false without items.
func (f *Filter) IsAllChecked() bool {
	f.InitializeChildrenIfNeeded()
	if len(f.items) == 0 {
		return false
	}
	for _, item := range f.items {
		if !item.Checked() {
			return false
		}
	}
	return true
}

// IsSomeChecked reports whether at least one item is checked.
func (f *Filter) IsSomeChecked() bool {
	f.InitializeChildrenIfNeeded()
	for _, item := range f.items {
		if item.Checked() {
			return true
		}
	}
	return false
}

// ToggleAllChecked checks every item unless all are already checked, in
// which case it unchecks every item. Listeners of the filter are notified
// once. It returns false when there are no items.
func (f *Filter) ToggleAllChecked() bool {
	f.InitializeChildrenIfNeeded()
	if len(f.items) == 0 {
		return false
	}
	target := !f.IsAllChecked()
	for _, item := range f.items {
		item.setChecked(target)
	}
	f.Update()
	return true
}

// SelectedLabel summarizes the selection: None, All, the single checked
// item's label, or "{n} Selected".
func (f *Filter) SelectedLabel() string {
	tr := f.translator
	if tr == nil {
		tr = i18n.English()
	}
	f.InitializeChildrenIfNeeded()
	counter := 0
	var last *FilterItem
	for _, item := range f.items {
		if item.Checked() {
			counter++
			last = item
		}
	}
	switch {
	case counter == 0:
		return tr.T("filter.none")
	case counter == len(f.items):
		return tr.T("filter.all")
	case counter == 1:
		return tr.T(last.Label())
	default:
		return tr.T("filter.selected", counter)
	}
}

// Matching returns the items whose translated label fuzzily matches query,
// in display order. An empty query matches everything.
func (f *Filter) Matching(query string) []*FilterItem {
	items := f.Items()
	if query == "" {
		return items
	}
	tr := f.translator
	if tr == nil {
		tr = i18n.English()
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = tr.T(item.Label())
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return nil
	}
	hit := make(map[int]struct{}, len(ranks))
	for _, r := range ranks {
		hit[r.OriginalIndex] = struct{}{}
	}
	out := make([]*FilterItem, 0, len(hit))
	for i, item := range items {
		if _, ok := hit[i]; ok {
			out = append(out, item)
		}
	}
	return out
}

func (f *Filter) Equals(other Command) bool {
	o, ok := other.(*Filter)
	return ok && (o == f || f.sameInfo(&o.Meta))
}

// FilterItem is one checkable entry of a Filter.
type FilterItem struct {
	Base
	Meta
	owner   *Filter
	color   string
	checked bool
	get     func(ctx any) bool
	set     func(ctx any, v bool)
}

func NewFilterItem(info Info, color string, checked bool) *FilterItem {
	return &FilterItem{Meta: NewMeta(info), color: color, checked: checked}
}

// Bind reads and writes the checked state through the execution context.
func (it *FilterItem) Bind(get func(ctx any) bool, set func(ctx any, v bool)) *FilterItem {
	it.get = get
	it.set = set
	return it
}

func (it *FilterItem) Kind() Kind    { return KindFilterItem }
func (it *FilterItem) Color() string { return it.color }

func (it *FilterItem) Checked() bool {
	if it.get != nil && it.IsLive() {
		return it.get(it.Context())
	}
	return it.checked
}

// SetChecked stores v and notifies the item and its filter when it changed.
func (it *FilterItem) SetChecked(v bool) bool {
	if !it.setChecked(v) {
		return false
	}
	it.Update()
	if it.owner != nil {
		it.owner.Update()
	}
	return true
}

func (it *FilterItem) setChecked(v bool) bool {
	if it.Checked() == v {
		return false
	}
	it.checked = v
	if it.set != nil && it.IsLive() {
		it.set(it.Context(), v)
	}
	return true
}

// InvokeCore toggles the item; the owning filter is notified here and the
// item by Invoke.
func (it *FilterItem) InvokeCore() bool {
	if !it.setChecked(!it.Checked()) {
		return false
	}
	if it.owner != nil {
		it.owner.Update()
	}
	return true
}

func (it *FilterItem) Equals(other Command) bool {
	o, ok := other.(*FilterItem)
	return ok && (o == it || (it.sameInfo(&o.Meta) && it.color == o.color))
}
