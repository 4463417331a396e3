//go:build !windows || xproto

package driver

import (
	"github.com/modspy/modspy/core/overlay"
	"github.com/modspy/modspy/driver/xdriver"
	"github.com/rs/zerolog"
)

func NewOverlay(cfg overlay.Config, log zerolog.Logger) (Overlay, error) {
	ov, err := xdriver.NewOverlay(cfg, log)
	if err != nil {
		return nil, err
	}
	return ov, nil
}
