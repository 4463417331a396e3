// Sampling of the physical (asynchronous) modifier key state.
//
// The platform query bypasses the focused window's input queue, so the
// overlay reads keys without ever taking input focus.
package keystate

import "github.com/modspy/modspy/core/modstate"

type Key int

const (
	KeyShift Key = iota
	KeyCtrl
	KeyAlt
	KeyLeftMeta
	KeyRightMeta
)

func (k Key) String() string {
	switch k {
	case KeyShift:
		return "shift"
	case KeyCtrl:
		return "ctrl"
	case KeyAlt:
		return "alt"
	case KeyLeftMeta:
		return "leftmeta"
	case KeyRightMeta:
		return "rightmeta"
	}
	return "unknown"
}

//----------

// Platform primitive: is the key physically down at call time.
type KeyQuery interface {
	IsDown(Key) bool
}

type KeyQueryFunc func(Key) bool

func (fn KeyQueryFunc) IsDown(k Key) bool { return fn(k) }

//----------

type Reader interface {
	Sample() modstate.ModifierState
}

type ReaderFunc func() modstate.ModifierState

func (fn ReaderFunc) Sample() modstate.ModifierState { return fn() }

// Used when the platform has no key state primitive: nothing is ever down.
var Unsupported Reader = ReaderFunc(func() modstate.ModifierState {
	return modstate.ModifierState{}
})

//----------

type queryReader struct {
	q KeyQuery
}

func NewReader(q KeyQuery) Reader {
	if q == nil {
		return Unsupported
	}
	return &queryReader{q: q}
}

func (r *queryReader) Sample() modstate.ModifierState {
	return modstate.ModifierState{
		Shift: r.q.IsDown(KeyShift),
		Ctrl:  r.q.IsDown(KeyCtrl),
		Alt:   r.q.IsDown(KeyAlt),
		// both queried: left does not short-circuit right
		Meta: or(r.q.IsDown(KeyLeftMeta), r.q.IsDown(KeyRightMeta)),
	}
}

func or(a, b bool) bool { return a || b }
