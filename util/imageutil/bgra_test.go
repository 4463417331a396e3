package imageutil

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBGRASet(t *testing.T) {
	img := NewBGRA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	img.Set(1, 0, color.RGBA{R: 4, G: 5, B: 6, A: 255})

	want := []byte{3, 2, 1, 255, 6, 5, 4, 255}
	if string(img.Pix) != string(want) {
		t.Fatalf("got %v, want %v", img.Pix, want)
	}
	c := img.At(1, 0).(color.RGBA)
	if c != (color.RGBA{R: 4, G: 5, B: 6, A: 255}) {
		t.Fatalf("at: %v", c)
	}
}

func TestBGRAFill(t *testing.T) {
	img := NewBGRA(image.Rect(0, 0, 3, 2))
	img.Fill(color.RGBA{R: 9, A: 255})
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+2] != 9 || img.Pix[i+3] != 255 {
			t.Fatalf("pixel %v: %v", i/4, img.Pix[i:i+4])
		}
	}
}

func TestBGRADraw(t *testing.T) {
	img := NewBGRA(image.Rect(0, 0, 4, 4))
	img.Fill(color.White)
	red := image.NewUniform(color.RGBA{R: 255, A: 255})
	draw.Draw(img, image.Rect(1, 1, 2, 2), red, image.Point{}, draw.Over)

	if c := img.At(1, 1); c != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("drawn: %v", c)
	}
	if c := img.At(0, 0); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("untouched: %v", c)
	}
}

func TestRgbaColor(t *testing.T) {
	c := RgbaColor(color.Gray{Y: 0x80})
	if c != (color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}) {
		t.Fatalf("got %v", c)
	}
}
