package xdriver

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/modspy/modspy/core/keystate"
	"github.com/rs/zerolog"
)

var keysyms = map[keystate.Key][]string{
	keystate.KeyShift:     {"Shift_L", "Shift_R"},
	keystate.KeyCtrl:      {"Control_L", "Control_R"},
	keystate.KeyAlt:       {"Alt_L", "Alt_R"},
	keystate.KeyLeftMeta:  {"Super_L"},
	keystate.KeyRightMeta: {"Super_R"},
}

// QueryKeymap returns the server's pressed-key bitmap, independent of which
// client has focus.
type keymapQuery struct {
	conn  *xgb.Conn
	codes map[keystate.Key][]xproto.Keycode
}

func (q *keymapQuery) IsDown(k keystate.Key) bool {
	kcs := q.codes[k]
	if len(kcs) == 0 {
		return false
	}
	reply, err := xproto.QueryKeymap(q.conn).Reply()
	if err != nil {
		return false
	}
	return anyKeyDown(reply.Keys, kcs)
}

// Keys holds one bit per keycode, 8 keycodes per byte.
func anyKeyDown(keys []byte, kcs []xproto.Keycode) bool {
	for _, kc := range kcs {
		i := int(kc) / 8
		if i < len(keys) && keys[i]&(1<<(uint(kc)%8)) != 0 {
			return true
		}
	}
	return false
}

func newKeymapReader(xu *xgbutil.XUtil, log zerolog.Logger) keystate.Reader {
	keybind.Initialize(xu)

	q := &keymapQuery{
		conn:  xu.Conn(),
		codes: map[keystate.Key][]xproto.Keycode{},
	}
	n := 0
	for k, names := range keysyms {
		for _, name := range names {
			kcs := keybind.StrToKeycodes(xu, name)
			if len(kcs) == 0 {
				log.Debug().Str("keysym", name).Msg("no keycode")
			}
			q.codes[k] = append(q.codes[k], kcs...)
			n += len(kcs)
		}
	}
	if n == 0 {
		log.Warn().Msg("no modifier keycodes, reporting no modifiers")
		return keystate.Unsupported
	}
	return keystate.NewReader(q)
}
