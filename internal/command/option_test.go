package command

import "testing"

func newQualityOption() *Option {
	o := NewOption(Info{Key: "quality", Label: "Quality"})
	o.Add("low", Info{Label: "Low"})
	o.Add("medium", Info{Label: "Medium"})
	o.Add("high", Info{Label: "High"})
	return o
}

func checkedCount(o *Option) int {
	n := 0
	for _, item := range o.Items() {
		if item.Checked() {
			n++
		}
	}
	return n
}

func TestOptionSelectionIsExclusive(t *testing.T) {
	o := newQualityOption()
	if o.SelectedChild() != nil {
		t.Fatal("expected no selection initially")
	}
	items := o.Items()
	for _, item := range items {
		changed, err := Invoke(item)
		if err != nil || !changed {
			t.Fatalf("invoke %s: changed=%v err=%v", item.Value(), changed, err)
		}
		if checkedCount(o) != 1 {
			t.Fatalf("expected exactly one checked item, got %d", checkedCount(o))
		}
		if o.SelectedChild() != item {
			t.Fatalf("expected %s selected", item.Value())
		}
	}
}

func TestOptionInvokeSelectedIsNoOp(t *testing.T) {
	o := newQualityOption()
	o.Select("medium")
	item := o.Items()[1]
	hits := 0
	item.AddListener(func() { hits++ })
	changed, err := Invoke(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed || hits != 0 {
		t.Fatalf("expected no change for selected item, changed=%v hits=%d", changed, hits)
	}
}

func TestOptionNotifiesGroupAndSiblings(t *testing.T) {
	o := newQualityOption()
	o.Select("low")
	hits := map[string]int{}
	o.AddListener(func() { hits["group"]++ })
	for _, item := range o.Items() {
		value := item.Value()
		item.AddListener(func() { hits[value]++ })
	}

	if _, err := Invoke(o.Items()[2]); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	for _, key := range []string{"group", "low", "medium", "high"} {
		if hits[key] != 1 {
			t.Fatalf("expected one notification for %s, got %d", key, hits[key])
		}
	}
}

func TestOptionBoundToContext(t *testing.T) {
	scene := &struct{ quality string }{quality: "high"}
	o := newQualityOption().Bind(
		func(ctx any) string { return ctx.(*struct{ quality string }).quality },
		func(ctx any, v string) { ctx.(*struct{ quality string }).quality = v },
	)
	Attach(o, scene)
	if o.SelectedChild() == nil || o.SelectedChild().Value() != "high" {
		t.Fatal("expected selection read from context")
	}
	o.Select("low")
	if scene.quality != "low" {
		t.Fatalf("expected context written, got %q", scene.quality)
	}
	scene.quality = "medium"
	if o.SelectedChild().Value() != "medium" {
		t.Fatal("expected external context change to be visible")
	}
}

func TestOptionEquality(t *testing.T) {
	a := newQualityOption()
	b := newQualityOption()
	if !a.Equals(b) {
		t.Fatal("expected structurally equal options")
	}
	b.Add("ultra", Info{Label: "Ultra"})
	if a.Equals(b) {
		t.Fatal("expected differing item lists to differ")
	}
}

func TestOptionItemDisabledWithParent(t *testing.T) {
	o := newQualityOption()
	o.SetEnabled(false)
	item := o.Items()[0]
	if item.Enabled() {
		t.Fatal("expected item disabled with parent")
	}
	changed, err := Invoke(item)
	if err != nil || changed {
		t.Fatalf("expected disabled invoke to be ignored, changed=%v err=%v", changed, err)
	}
	if o.SelectedChild() != nil {
		t.Fatal("expected no selection")
	}
}

func TestOptionRejectsAmbiguousValues(t *testing.T) {
	warnings := quietLogs(t)
	o := NewOption(Info{Key: "quality", Label: "Quality"})
	a := o.Add("x", Info{Label: "A"})
	if b := o.Add("x", Info{Label: "B"}); b != nil {
		t.Fatal("expected duplicate value to be rejected")
	}
	if empty := o.Add("", Info{Label: "Unset"}); empty != nil {
		t.Fatal("expected empty value to be rejected")
	}
	if len(o.Items()) != 1 || len(*warnings) != 2 {
		t.Fatalf("expected one item and two warnings, got %d items %v", len(o.Items()), *warnings)
	}
	if checkedCount(o) != 0 {
		t.Fatal("expected nothing checked before a selection")
	}
	o.Select("x")
	if checkedCount(o) != 1 || o.SelectedChild() != a {
		t.Fatalf("expected only A checked, got %d checked", checkedCount(o))
	}
}
