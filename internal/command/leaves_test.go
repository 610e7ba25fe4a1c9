package command

import (
	"math"
	"testing"
)

func TestToggleLocalAndBound(t *testing.T) {
	tg := NewToggle(Info{Key: "grid"})
	if changed, _ := Invoke(tg); !changed || !tg.Checked() {
		t.Fatal("expected local toggle to flip on")
	}
	if tg.SetChecked(true) {
		t.Fatal("expected SetChecked to report no change")
	}

	scene := map[string]bool{"grid": false}
	bound := NewToggle(Info{Key: "grid"}).Bind(
		func(ctx any) bool { return ctx.(map[string]bool)["grid"] },
		func(ctx any, v bool) { ctx.(map[string]bool)["grid"] = v },
	)
	Attach(bound, scene)
	Invoke(bound)
	if !scene["grid"] {
		t.Fatal("expected bound toggle to write context")
	}
}

func TestActionEnabledPredicate(t *testing.T) {
	busy := true
	ran := false
	a := NewAction(Info{Key: "fit"}, func(any) bool {
		ran = true
		return true
	}).WhenEnabled(func(any) bool { return !busy })

	if changed, err := Invoke(a); changed || err != nil || ran {
		t.Fatalf("expected disabled action skipped, changed=%v err=%v ran=%v", changed, err, ran)
	}
	busy = false
	if changed, _ := Invoke(a); !changed || !ran {
		t.Fatal("expected enabled action to run")
	}
	a.SetEnabled(false)
	if a.Enabled() {
		t.Fatal("expected static disable to win")
	}
}

func TestSliderClampsAndSnaps(t *testing.T) {
	s := NewSlider(Info{Key: "size"}, 1, 5, 0.5)
	hits := 0
	s.AddListener(func() { hits++ })

	cases := []struct {
		in   float64
		want float64
	}{
		{2.3, 2.5},
		{9, 5},
		{-3, 1},
		{3.74, 3.5},
	}
	for _, tc := range cases {
		s.SetValue(tc.in)
		if s.Value() != tc.want {
			t.Fatalf("SetValue(%v): expected %v, got %v", tc.in, tc.want, s.Value())
		}
	}
	if hits != len(cases) {
		t.Fatalf("expected %d notifications, got %d", len(cases), hits)
	}
	if s.SetValue(3.5) {
		t.Fatal("expected unchanged value to report false")
	}
	s.Increment()
	if s.Value() != 4 {
		t.Fatalf("expected 4 after increment, got %v", s.Value())
	}
	s.Decrement()
	s.Decrement()
	if s.Value() != 3 {
		t.Fatalf("expected 3 after decrements, got %v", s.Value())
	}
	if f := s.Fraction(); f != 0.5 {
		t.Fatalf("expected fraction 0.5, got %v", f)
	}
}

func TestSliderEquality(t *testing.T) {
	a := NewSlider(Info{Key: "size"}, 1, 5, 0.5)
	b := NewSlider(Info{Key: "size"}, 1, 5, 0.5)
	c := NewSlider(Info{Key: "size"}, 1, 10, 0.5)
	if !a.Equals(b) || a.Equals(c) {
		t.Fatal("expected equality over configuration")
	}
	if _, err := Invoke(a); err == nil {
		t.Fatal("expected slider to be non-invokable")
	}
}

func TestInputSubmit(t *testing.T) {
	var got string
	in := NewInput(Info{Key: "note"}, "type a note", func(_ any, v string) bool {
		got = v
		return v != ""
	})
	if changed, _ := Invoke(in); changed {
		t.Fatal("expected empty submit to report false")
	}
	in.SetValue("crack near valve")
	if changed, _ := Invoke(in); !changed || got != "crack near valve" {
		t.Fatalf("expected submit of draft, got %q", got)
	}
	if in.Placeholder() != "type a note" {
		t.Fatalf("unexpected placeholder %q", in.Placeholder())
	}
}

func TestDividerEquality(t *testing.T) {
	if !NewDivider("a").Equals(NewDivider("a")) {
		t.Fatal("expected dividers with same key equal")
	}
	if NewDivider("a").Equals(NewDivider("b")) {
		t.Fatal("expected dividers with different keys to differ")
	}
}

type fakeHost struct {
	active  *Tool
	deflt   *Tool
	changes int
}

func (h *fakeHost) ActiveTool() *Tool { return h.active }

func (h *fakeHost) SetActiveTool(t *Tool) bool {
	if t == h.active {
		return false
	}
	if h.active != nil {
		h.active.Deactivate()
	}
	h.active = t
	t.Activate()
	h.changes++
	return true
}

func (h *fakeHost) ActivateDefaultTool() bool {
	if h.deflt == nil {
		return false
	}
	return h.SetActiveTool(h.deflt)
}

func TestToolInvokeDelegatesToHost(t *testing.T) {
	nav := NewTool(Info{Key: "navigate"})
	measure := NewTool(Info{Key: "measure"})
	var activations []bool
	measure.OnActivation(func(_ any, active bool) { activations = append(activations, active) })
	host := &fakeHost{deflt: nav}
	nav.SetHost(host)
	measure.SetHost(host)
	host.SetActiveTool(nav)

	if changed, _ := Invoke(measure); !changed || host.active != measure || !measure.Checked() {
		t.Fatal("expected measure tool to activate")
	}
	if nav.Checked() {
		t.Fatal("expected navigate tool deactivated")
	}
	if changed, _ := Invoke(measure); !changed || host.active != nav {
		t.Fatal("expected invoking active tool to fall back to default")
	}
	if len(activations) != 2 || !activations[0] || activations[1] {
		t.Fatalf("unexpected activation sequence %v", activations)
	}
}

func TestSliderRejectsNaN(t *testing.T) {
	warnings := quietLogs(t)
	s := NewSlider(Info{Key: "size", Label: "Size"}, 1, 5, 0.5)
	s.SetValue(2)
	hits := 0
	s.AddListener(func() { hits++ })
	if s.SetValue(math.NaN()) {
		t.Fatal("expected NaN to be rejected")
	}
	if s.Value() != 2 || hits != 0 {
		t.Fatalf("expected value 2 and no notification, got %v with %d hits", s.Value(), hits)
	}
	if len(*warnings) != 1 {
		t.Fatalf("expected one warning, got %v", *warnings)
	}
}
