package command

import (
	"fmt"
	"testing"
)

// newTestFilter returns an attached filter with n unchecked items.
func newTestFilter(n int) *Filter {
	f := NewFilter(Info{Key: "models", Label: "Models"}, func(any) []*FilterItem {
		items := make([]*FilterItem, n)
		for i := range items {
			items[i] = NewFilterItem(Info{Key: fmt.Sprintf("item-%d", i), Label: fmt.Sprintf("Item %d", i)}, "", false)
		}
		return items
	})
	Attach(f, "scene")
	return f
}

func TestFilterTriStateAggregation(t *testing.T) {
	f := newTestFilter(3)
	items := f.Items()

	cases := []struct {
		checked  []bool
		wantAll  bool
		wantSome bool
	}{
		{[]bool{false, false, false}, false, false},
		{[]bool{true, false, false}, false, true},
		{[]bool{true, true, false}, false, true},
		{[]bool{true, true, true}, true, true},
	}
	for _, tc := range cases {
		for i, v := range tc.checked {
			items[i].SetChecked(v)
		}
		if got := f.IsAllChecked(); got != tc.wantAll {
			t.Fatalf("checked=%v: expected IsAllChecked %v, got %v", tc.checked, tc.wantAll, got)
		}
		if got := f.IsSomeChecked(); got != tc.wantSome {
			t.Fatalf("checked=%v: expected IsSomeChecked %v, got %v", tc.checked, tc.wantSome, got)
		}
	}
}

func TestFilterWithoutChildren(t *testing.T) {
	f := NewFilter(Info{Key: "empty"}, nil)
	if f.IsAllChecked() || f.IsSomeChecked() {
		t.Fatal("expected both aggregates false without children")
	}
	notified := 0
	f.AddListener(func() { notified++ })
	if f.ToggleAllChecked() {
		t.Fatal("expected ToggleAllChecked to report false without children")
	}
	if notified != 0 {
		t.Fatalf("expected no notification, got %d", notified)
	}
}

func TestFilterSelectedLabelThresholds(t *testing.T) {
	f := newTestFilter(14)
	items := f.Items()

	if got := f.SelectedLabel(); got != "None" {
		t.Fatalf("expected None, got %q", got)
	}
	for i, item := range items {
		if i%2 == 1 {
			item.SetChecked(true)
		}
	}
	if got := f.SelectedLabel(); got != "7 Selected" {
		t.Fatalf("expected 7 Selected, got %q", got)
	}
	for _, item := range items {
		item.SetChecked(true)
	}
	if got := f.SelectedLabel(); got != "All" {
		t.Fatalf("expected All, got %q", got)
	}
	for i, item := range items {
		item.SetChecked(i == 5)
	}
	if got := f.SelectedLabel(); got != "Item 5" {
		t.Fatalf("expected single item label, got %q", got)
	}
}

func TestFilterToggleAllInverts(t *testing.T) {
	f := newTestFilter(4)
	notified := 0
	f.AddListener(func() { notified++ })
	childNotified := 0
	for _, item := range f.Items() {
		item.AddListener(func() { childNotified++ })
	}

	if !f.ToggleAllChecked() {
		t.Fatal("expected toggle to report true")
	}
	if !f.IsAllChecked() {
		t.Fatal("expected all checked after first toggle")
	}
	if !f.ToggleAllChecked() {
		t.Fatal("expected second toggle to report true")
	}
	if f.IsSomeChecked() {
		t.Fatal("expected all unchecked after second toggle")
	}

	f.Items()[0].SetChecked(true)
	notified = 0
	f.ToggleAllChecked()
	if !f.IsAllChecked() {
		t.Fatal("expected partially checked filter to become all checked")
	}
	if notified != 1 {
		t.Fatalf("expected one aggregated notification, got %d", notified)
	}
	if childNotified != 1 {
		t.Fatalf("expected child listeners untouched by toggle-all, got %d", childNotified)
	}
}

func TestFilterEndToEndLabels(t *testing.T) {
	f := newTestFilter(3)
	items := f.Items()
	if got := f.SelectedLabel(); got != "None" {
		t.Fatalf("expected None, got %q", got)
	}
	if _, err := Invoke(items[1]); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := f.SelectedLabel(); got != "Item 1" {
		t.Fatalf("expected Item 1, got %q", got)
	}
	items[0].SetChecked(true)
	if got := f.SelectedLabel(); got != "2 Selected" {
		t.Fatalf("expected 2 Selected, got %q", got)
	}
	items[2].SetChecked(true)
	if got := f.SelectedLabel(); got != "All" {
		t.Fatalf("expected All, got %q", got)
	}
}

func TestFilterBuildsOnce(t *testing.T) {
	calls := 0
	f := NewFilter(Info{Key: "lazy"}, func(any) []*FilterItem {
		calls++
		return []*FilterItem{NewFilterItem(Info{Label: "a"}, "", false)}
	})
	if calls != 0 {
		t.Fatal("expected no build before access")
	}
	Attach(f, "scene")
	f.InitializeChildrenIfNeeded()
	f.InitializeChildrenIfNeeded()
	_ = f.Children()
	if calls != 1 {
		t.Fatalf("expected exactly one build, got %d", calls)
	}
	if len(f.Children()) != 1 {
		t.Fatalf("expected one child, got %d", len(f.Children()))
	}
}

func TestFilterItemInvokeNotifiesOwner(t *testing.T) {
	f := newTestFilter(2)
	filterHits := 0
	f.AddListener(func() { filterHits++ })
	item := f.Items()[0]
	itemHits := 0
	item.AddListener(func() { itemHits++ })

	changed, err := Invoke(item)
	if err != nil || !changed {
		t.Fatalf("expected change, got %v / %v", changed, err)
	}
	if !item.Checked() {
		t.Fatal("expected item checked after invoke")
	}
	if filterHits != 1 || itemHits != 1 {
		t.Fatalf("expected one notification each, got filter=%d item=%d", filterHits, itemHits)
	}
}

func TestFilterLateChildrenAttach(t *testing.T) {
	f := newTestFilter(2)
	ctx := &struct{ name string }{"scene"}
	Attach(f, ctx)
	for _, child := range f.Children() {
		if !child.Core().IsLive() || child.Core().Context() != ctx {
			t.Fatalf("expected lazily built child attached to context")
		}
	}
	late := NewFilterItem(Info{Label: "late"}, "", false)
	f.Add(late)
	if !late.IsLive() || late.UniqueID() == "" {
		t.Fatal("expected late child attached on add")
	}
}

func TestFilterItemBinding(t *testing.T) {
	visible := map[string]bool{"cad": true}
	item := NewFilterItem(Info{Key: "cad", Label: "CAD"}, "#ff0000", false).Bind(
		func(ctx any) bool { return ctx.(map[string]bool)["cad"] },
		func(ctx any, v bool) { ctx.(map[string]bool)["cad"] = v },
	)
	f := NewFilter(Info{Key: "models"}, nil)
	f.Add(item)
	Attach(f, visible)

	if !item.Checked() {
		t.Fatal("expected checked state read from context")
	}
	item.SetChecked(false)
	if visible["cad"] {
		t.Fatal("expected context updated through binding")
	}
	if item.Color() != "#ff0000" {
		t.Fatalf("unexpected color %q", item.Color())
	}
}

func TestFilterMatching(t *testing.T) {
	f := NewFilter(Info{Key: "models"}, nil)
	f.Add(NewFilterItem(Info{Label: "Pump house"}, "", false))
	f.Add(NewFilterItem(Info{Label: "Pipe rack"}, "", false))
	f.Add(NewFilterItem(Info{Label: "Tank"}, "", false))

	got := f.Matching("pp")
	if len(got) != 2 || got[0].Label() != "Pump house" || got[1].Label() != "Pipe rack" {
		labels := make([]string, len(got))
		for i, it := range got {
			labels[i] = it.Label()
		}
		t.Fatalf("unexpected matches %v", labels)
	}
	if len(f.Matching("")) != 3 {
		t.Fatal("expected empty query to match all")
	}
	if len(f.Matching("zzz")) != 0 {
		t.Fatal("expected no matches")
	}
}

func TestFilterEquality(t *testing.T) {
	a := newTestFilter(2)
	b := newTestFilter(5)
	if !a.Equals(b) {
		t.Fatal("expected filters with same configuration to be equal")
	}
	c := NewFilter(Info{Key: "other", Label: "Models"}, nil)
	if a.Equals(c) {
		t.Fatal("expected different key to differ")
	}
	if a.Equals(NewGroup(Info{Key: "models", Label: "Models"})) {
		t.Fatal("expected different kind to differ")
	}
}

func TestFilterReadBeforeAttachBuildsLater(t *testing.T) {
	f := NewFilter(Info{Key: "models", Label: "Models"}, func(ctx any) []*FilterItem {
		if ctx == nil {
			return nil
		}
		return []*FilterItem{
			NewFilterItem(Info{Key: "cad", Label: "CAD"}, "", true),
			NewFilterItem(Info{Key: "images", Label: "Images"}, "", false),
		}
	})
	if got := f.SelectedLabel(); got != "None" {
		t.Fatalf("expected None before attach, got %q", got)
	}
	if f.IsAllChecked() || len(f.Items()) != 0 || len(f.Children()) != 0 {
		t.Fatal("expected no items before attach")
	}

	Attach(f, "scene")
	items := f.Items()
	if len(items) != 2 {
		t.Fatalf("expected two items after attach, got %d", len(items))
	}
	if !items[0].IsLive() || items[0].Context() != "scene" {
		t.Fatal("expected built items attached to the filter context")
	}
	if got := f.SelectedLabel(); got != "CAD" {
		t.Fatalf("expected CAD, got %q", got)
	}
}
