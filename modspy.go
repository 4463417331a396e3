// Always-on-top overlay showing which modifier keys are held.
package main

import (
	"os"

	"github.com/modspy/modspy/core/overlay"
	"github.com/modspy/modspy/driver"
	"github.com/modspy/modspy/util/logutil"
)

func main() {
	log := logutil.Stderr()
	ov, err := driver.NewOverlay(overlay.DefaultConfig(), log)
	if err != nil {
		log.Error().Err(err).Msg("overlay")
		os.Exit(1)
	}
	if err := ov.Run(); err != nil {
		log.Error().Err(err).Msg("run")
		os.Exit(1)
	}
}
