package xdriver

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/modspy/modspy/core/modstate"
	"github.com/modspy/modspy/core/overlay"
	"github.com/modspy/modspy/util/fontutil"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draws into the client image; End pushes it to the window.
type paintBracket struct {
	ov *Overlay
}

func (pb *paintBracket) Begin() (overlay.Canvas, error) {
	img := pb.ov.img
	img.Fill(color.White)
	return &imageCanvas{img: img}, nil
}

func (pb *paintBracket) End() {
	if err := pb.ov.putImage(); err != nil {
		pb.ov.log.Debug().Err(err).Msg("put image")
	}
}

//----------

type imageCanvas struct {
	img draw.Image
}

// Origin is the top-left of the text box, not the baseline.
func (c *imageCanvas) DrawText(f overlay.Font, origin image.Point, text string) error {
	ff, ok := f.(*faceFont)
	if !ok || ff.face == nil {
		return errors.Errorf("drawtext: bad font: %T", f)
	}
	ascent := ff.face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.Black,
		Face: ff.face,
		Dot:  fixed.P(origin.X, origin.Y).Add(fixed.Point26_6{Y: ascent}),
	}
	d.DrawString(text)
	return nil
}

//----------

type faceFont struct {
	face font.Face
}

func newFaceFont(spec overlay.FontSpec) (*faceFont, error) {
	face, err := newMonoFace(spec)
	if err != nil {
		return nil, err
	}
	return &faceFont{face: face}, nil
}

func (f *faceFont) Release() error {
	if f.face == nil {
		return errors.New("face already released")
	}
	face := f.face
	f.face = nil
	return face.Close()
}

//----------

// The family is not looked up; x11 always gets the bundled go mono face.
func newMonoFace(spec overlay.FontSpec) (font.Face, error) {
	face, err := fontutil.MonoFontFace(float64(spec.Size))
	if err != nil {
		return nil, errors.Wrap(err, "go mono")
	}
	return face, nil
}

// Widest frame in pixels for the given font.
func measureFrameWidth(spec overlay.FontSpec) (int, error) {
	face, err := newMonoFace(spec)
	if err != nil {
		return 0, err
	}
	defer face.Close()

	frames := []string{}
	for _, ms := range modstate.AllStates() {
		frames = append(frames, string(ms.Frame()))
	}
	return fontutil.MaxWidth(face, frames...), nil
}
