//go:build windows

package windriver

import (
	"image"
	"testing"

	"github.com/modspy/modspy/core/keystate"
	"github.com/modspy/modspy/core/overlay"
	"github.com/modspy/modspy/util/logutil"
)

func TestKeyDownState(t *testing.T) {
	type pair struct {
		state uint16
		down  bool
	}
	pairs := []pair{
		{0, false},
		{1, false}, // pressed since last call, not down now
		{0x8000, true},
		{0x8001, true},
		{0xffff, true},
	}
	for _, p := range pairs {
		if v := isKeyDownState(p.state); v != p.down {
			t.Errorf("%#x: got %v", p.state, v)
		}
	}
}

func TestVirtualKeys(t *testing.T) {
	want := map[keystate.Key]int32{
		keystate.KeyShift:     0x10,
		keystate.KeyCtrl:      0x11,
		keystate.KeyAlt:       0x12,
		keystate.KeyLeftMeta:  0x5b,
		keystate.KeyRightMeta: 0x5c,
	}
	if len(vkeys) != len(want) {
		t.Fatalf("vkeys: %v", vkeys)
	}
	for k, vk := range want {
		if vkeys[k] != vk {
			t.Errorf("%v: %#x", k, vkeys[k])
		}
	}
}

func TestRectConversion(t *testing.T) {
	r := image.Rect(0, 0, 190, 25)
	wr := RectFromImageRectangle(r)
	if r2 := wr.ToImageRectangle(); r2 != r {
		t.Fatalf("got %v", r2)
	}
}

func TestOverlayTable(t *testing.T) {
	tab := newOverlayTable()
	ov := &Overlay{}
	ov.id = tab.add(ov)
	tab.bind(ov.id, 123)
	if tab.get(123) != ov || ov.hwnd != 123 {
		t.Fatal("not bound")
	}
	tab.bind(999, 456) // unknown id
	if tab.get(456) != nil {
		t.Fatal("bound unknown id")
	}
	tab.remove(ov)
	if tab.get(123) != nil {
		t.Fatal("not removed")
	}
}

func TestGdiFontDoubleRelease(t *testing.T) {
	f := &gdiFont{} // already released
	if err := f.Release(); err == nil {
		t.Fatal("expecting error")
	}
}

func TestDrawTextForeignFont(t *testing.T) {
	c := &dcCanvas{}
	var f overlay.Font = &gdiFont{}
	if err := c.DrawText(f, image.Point{}, "x"); err == nil {
		t.Fatal("expecting error on released font")
	}
}

func TestNewOverlay(t *testing.T) {
	ov, err := NewOverlay(overlay.DefaultConfig(), logutil.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if r := ov.Renderer(); r.State() != overlay.Uninitialized {
		t.Fatalf("state: %v", r.State())
	}
	ms := newAsyncKeyReader(logutil.Discard()).Sample()
	if w := ms.Frame().Width(); w != len("[SHIFT][CTRL][ALT][WIN]") {
		t.Fatalf("frame width: %v", w)
	}
}
