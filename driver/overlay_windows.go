//go:build windows && !xproto

package driver

import (
	"github.com/modspy/modspy/core/overlay"
	"github.com/modspy/modspy/driver/windriver"
	"github.com/rs/zerolog"
)

func NewOverlay(cfg overlay.Config, log zerolog.Logger) (Overlay, error) {
	ov, err := windriver.NewOverlay(cfg, log)
	if err != nil {
		return nil, err
	}
	return ov, nil
}
