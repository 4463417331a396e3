//go:build windows

package windriver

import (
	"github.com/modspy/modspy/core/keystate"
	"github.com/rs/zerolog"
)

var vkeys = map[keystate.Key]int32{
	keystate.KeyShift:     _VK_SHIFT,
	keystate.KeyCtrl:      _VK_CONTROL,
	keystate.KeyAlt:       _VK_MENU,
	keystate.KeyLeftMeta:  _VK_LWIN,
	keystate.KeyRightMeta: _VK_RWIN,
}

// GetAsyncKeyState reads the physical key, not the message queue state,
// so it works while another application has focus.
type asyncKeyQuery struct{}

func (asyncKeyQuery) IsDown(k keystate.Key) bool {
	vk, ok := vkeys[k]
	if !ok {
		return false
	}
	return isKeyDownState(_GetAsyncKeyState(vk))
}

func isKeyDownState(state uint16) bool {
	return state&_KEY_DOWN_BIT != 0
}

func newAsyncKeyReader(log zerolog.Logger) keystate.Reader {
	if err := procGetAsyncKeyState.Find(); err != nil {
		log.Warn().Err(err).Msg("key state unavailable, reporting no modifiers")
		return keystate.Unsupported
	}
	return keystate.NewReader(asyncKeyQuery{})
}
