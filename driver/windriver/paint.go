//go:build windows

package windriver

import (
	"errors"
	"fmt"
	"image"

	"github.com/modspy/modspy/core/overlay"
	"golang.org/x/sys/windows"
)

// BeginPaint/EndPaint pair. The dc is only valid in between.
type paintBracket struct {
	hwnd  windows.Handle
	ps    _Paint
	begun bool
}

func (pb *paintBracket) Begin() (overlay.Canvas, error) {
	hdc, err := _BeginPaint(pb.hwnd, &pb.ps)
	if err != nil {
		return nil, fmt.Errorf("beginpaint: %w", err)
	}
	pb.begun = true
	return &dcCanvas{hdc: hdc}, nil
}

func (pb *paintBracket) End() {
	_ = _EndPaint(pb.hwnd, &pb.ps)
}

//----------

type dcCanvas struct {
	hdc windows.Handle
}

func (c *dcCanvas) DrawText(f overlay.Font, origin image.Point, text string) error {
	gf, ok := f.(*gdiFont)
	if !ok || gf.h == 0 {
		return fmt.Errorf("drawtext: bad font: %T", f)
	}

	prev, err := _SelectObject(c.hdc, gf.h)
	if err != nil {
		return fmt.Errorf("selectobject: %w", err)
	}
	// restore before endpaint releases the dc
	defer _SelectObject(c.hdc, prev)

	_ = _SetBkMode(c.hdc, _OPAQUE)

	u, err := windows.UTF16FromString(text)
	if err != nil {
		return err
	}
	n := int32(len(u) - 1) // without nul
	if !_TextOutW(c.hdc, int32(origin.X), int32(origin.Y), &u[0], n) {
		return errors.New("textout: false")
	}
	return nil
}

//----------

type gdiFont struct {
	h windows.Handle
}

func newGdiFont(spec overlay.FontSpec) (*gdiFont, error) {
	h, err := _CreateFontW(
		-int32(spec.Size), // negative: character height, not cell height
		int32(spec.Width),
		0, 0, // escapement, orientation
		_FW_NORMAL,
		0, 0, 0, // italic, underline, strikeout
		_DEFAULT_CHARSET,
		_OUT_DEFAULT_PRECIS,
		_CLIP_DEFAULT_PRECIS,
		_DEFAULT_QUALITY,
		_FIXED_PITCH|_FF_MODERN,
		UTF16PtrFromString(spec.Family),
	)
	if err != nil {
		return nil, fmt.Errorf("createfont: %w", err)
	}
	return &gdiFont{h: h}, nil
}

func (f *gdiFont) Release() error {
	if f.h == 0 {
		return errors.New("deleteobject: font already released")
	}
	h := f.h
	f.h = 0
	if !_DeleteObject(h) {
		return errors.New("deleteobject: false")
	}
	return nil
}
