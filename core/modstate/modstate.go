package modstate

import "strings"

// Snapshot of the modifier keys. Recomputed on every sample, never patched.
type ModifierState struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool // left or right
}

// Field order is fixed: shift, ctrl, alt, meta.
func (ms ModifierState) actives() [4]bool {
	return [4]bool{ms.Shift, ms.Ctrl, ms.Alt, ms.Meta}
}

func (ms ModifierState) Frame() Frame {
	sb := strings.Builder{}
	sb.Grow(FrameWidth)
	for i, on := range ms.actives() {
		sb.WriteByte('[')
		if on {
			sb.WriteString(labels[i])
		} else {
			sb.WriteString(blanks[i])
		}
		sb.WriteByte(']')
	}
	return Frame(sb.String())
}

func (ms ModifierState) String() string {
	return string(ms.Frame())
}

//----------

// Text drawn by the overlay. Same width for every state.
type Frame string

func (f Frame) Width() int {
	return len(f)
}

//----------

var labels = [4]string{"SHIFT", "CTRL", "ALT", "WIN"}

var blanks = func() (u [4]string) {
	for i, l := range labels {
		u[i] = strings.Repeat(" ", len(l))
	}
	return u
}()

// Characters in any frame: brackets plus the label widths.
var FrameWidth = func() int {
	w := 0
	for _, l := range labels {
		w += len(l) + 2
	}
	return w
}()

//----------

// All 16 combinations, in bit order (shift is the lowest bit).
func AllStates() []ModifierState {
	u := make([]ModifierState, 0, 16)
	for i := 0; i < 16; i++ {
		u = append(u, ModifierState{
			Shift: i&1 != 0,
			Ctrl:  i&2 != 0,
			Alt:   i&4 != 0,
			Meta:  i&8 != 0,
		})
	}
	return u
}
