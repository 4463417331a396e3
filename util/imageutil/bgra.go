package imageutil

import (
	"image"
	"image/color"
)

// Pixels stored blue first, the x server's 32 bit zpixmap order on
// little-endian hosts. Pix can be sent without conversion.
type BGRA struct {
	image.RGBA
}

func NewBGRA(r image.Rectangle) *BGRA {
	u := image.NewRGBA(r)
	return &BGRA{*u}
}

func (img *BGRA) Set(x, y int, c color.Color) {
	img.SetRGBA(x, y, RgbaColor(c))
}

func (img *BGRA) SetRGBA(x, y int, c color.RGBA) {
	c.R, c.B = c.B, c.R // flip to keep bgra
	img.RGBA.SetRGBA(x, y, c)
}

func (img *BGRA) At(x, y int) color.Color {
	return img.RGBAAt(x, y)
}

func (img *BGRA) RGBAAt(x, y int) color.RGBA {
	c := img.RGBA.RGBAAt(x, y)
	c.R, c.B = c.B, c.R // flip to return rgba
	return c
}

// image/draw prefers these over Set/At when present.
func (img *BGRA) SetRGBA64(x, y int, c color.RGBA64) {
	c.R, c.B = c.B, c.R
	img.RGBA.SetRGBA64(x, y, c)
}

func (img *BGRA) RGBA64At(x, y int) color.RGBA64 {
	c := img.RGBA.RGBA64At(x, y)
	c.R, c.B = c.B, c.R
	return c
}

// Fills with c.
func (img *BGRA) Fill(c color.Color) {
	u := RgbaColor(c)
	u.R, u.B = u.B, u.R
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i+0] = u.R
		img.Pix[i+1] = u.G
		img.Pix[i+2] = u.B
		img.Pix[i+3] = u.A
	}
}

//----------

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}
