package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(buf)
	log.Info().Str("state", "created").Msg("overlay")
	log.Debug().Msg("dropped")

	s := buf.String()
	if !strings.Contains(s, "overlay") || !strings.Contains(s, "state=created") {
		t.Fatalf("missing fields: %q", s)
	}
	if !strings.Contains(s, "pid=") {
		t.Fatalf("missing pid: %q", s)
	}
	if strings.Contains(s, "dropped") {
		t.Fatalf("debug level logged: %q", s)
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error().Msg("nothing") // must not panic
}
