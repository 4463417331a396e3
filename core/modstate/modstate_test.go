package modstate

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestFrameScenarios(t *testing.T) {
	type pair struct {
		ms  ModifierState
		out Frame
	}
	pairs := []pair{
		{ModifierState{}, "[     ][    ][   ][   ]"},
		{ModifierState{Shift: true}, "[SHIFT][    ][   ][   ]"},
		{ModifierState{Ctrl: true, Alt: true}, "[     ][CTRL][ALT][   ]"},
		{ModifierState{Meta: true}, "[     ][    ][   ][WIN]"},
		{ModifierState{true, true, true, true}, "[SHIFT][CTRL][ALT][WIN]"},
	}
	for i, p := range pairs {
		if f := p.ms.Frame(); f != p.out {
			t.Errorf("pair %v: got %q, expecting %q\n%s", i, f, p.out, spew.Sdump(p.ms))
		}
	}
}

func TestFrameConstantWidth(t *testing.T) {
	states := AllStates()
	if len(states) != 16 {
		t.Fatalf("expecting 16 states, got %v", len(states))
	}
	seen := map[ModifierState]bool{}
	for _, ms := range states {
		if seen[ms] {
			t.Fatalf("duplicate state: %v", spew.Sdump(ms))
		}
		seen[ms] = true

		f := ms.Frame()
		if f.Width() != FrameWidth {
			t.Errorf("%q: width %v, expecting %v", f, f.Width(), FrameWidth)
		}
	}
	if FrameWidth != len("[SHIFT][CTRL][ALT][WIN]") {
		t.Fatalf("bad frame width: %v", FrameWidth)
	}
}

func TestFrameFieldOrder(t *testing.T) {
	for _, ms := range AllStates() {
		f := string(ms.Frame())
		fields := strings.Split(strings.TrimSuffix(strings.TrimPrefix(f, "["), "]"), "][")
		if len(fields) != 4 {
			t.Fatalf("%q: expecting 4 fields, got %v", f, len(fields))
		}
		actives := ms.actives()
		for i, fld := range fields {
			want := blanks[i]
			if actives[i] {
				want = labels[i]
			}
			if fld != want {
				t.Errorf("%q: field %v is %q, expecting %q", f, i, fld, want)
			}
		}
	}
}

func TestFrameIdempotent(t *testing.T) {
	for _, ms := range AllStates() {
		a, b := ms.Frame(), ms.Frame()
		if a != b {
			t.Errorf("frames differ: %q, %q", a, b)
		}
		if ms.String() != string(a) {
			t.Errorf("string differs from frame: %q", ms.String())
		}
	}
}
