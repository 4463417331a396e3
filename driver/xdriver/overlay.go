package xdriver

import (
	"image"
	"log"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/modspy/modspy/core/overlay"
	"github.com/modspy/modspy/core/poll"
	"github.com/modspy/modspy/util/imageutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Overlay struct {
	cfg overlay.Config
	log zerolog.Logger
	r   *overlay.Renderer

	XU    *xgbutil.XUtil
	Win   *xwindow.Window
	GCtx  xproto.Gcontext
	timer *poll.TickerTimer

	size  image.Point
	img   *imageutil.BGRA // client area, pushed at the end of each paint
	atoms struct {
		protocols    xproto.Atom
		deleteWindow xproto.Atom
	}
}

func NewOverlay(cfg overlay.Config, log zerolog.Logger) (*Overlay, error) {
	// xgbutil logs through its own std logger
	xgbutil.Logger = newStdLogger(log)

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}
	ov := &Overlay{
		cfg:   cfg,
		log:   log,
		XU:    xu,
		timer: poll.NewTickerTimer(),
	}
	reader := newKeymapReader(xu, log)
	ov.r = overlay.NewRenderer(reader, cfg, log)
	return ov, nil
}

func (ov *Overlay) Renderer() *overlay.Renderer { return ov.r }

//----------

// Blocks until the window is closed.
func (ov *Overlay) Run() error {
	defer ov.close()
	if err := ov.initialize(); err != nil {
		return errors.Wrap(err, "win init")
	}
	if err := ov.r.Create(ov, ov.timer); err != nil {
		return err
	}
	ov.Win.Map()
	ov.eventLoop()
	return nil
}

func (ov *Overlay) initialize() error {
	// grow to fit the face if the configured width is too small
	w, err := measureFrameWidth(ov.cfg.FontSpec())
	if err != nil {
		return err
	}
	ov.size = ov.cfg.Size
	if w2 := w + 2*ov.cfg.Origin.X; w2 > ov.size.X {
		ov.size.X = w2
	}
	ov.img = imageutil.NewBGRA(image.Rectangle{Max: ov.size})

	win, err := xwindow.Generate(ov.XU)
	if err != nil {
		return err
	}
	ov.Win = win

	// mask/values order is defined by the protocol
	mask := xproto.CwBackPixel | xproto.CwEventMask
	var evMask uint32 = 0 |
		xproto.EventMaskExposure |
		xproto.EventMaskStructureNotify |
		0
	err = win.CreateChecked(
		ov.XU.RootWin(),
		0, 0, ov.size.X, ov.size.Y,
		mask,
		ov.XU.Screen().WhitePixel, evMask)
	if err != nil {
		return err
	}

	if err := ov.setupHints(); err != nil {
		return err
	}

	// graphical context
	gCtx, err := xproto.NewGcontextId(ov.XU.Conn())
	if err != nil {
		return err
	}
	ov.GCtx = gCtx
	c2 := xproto.CreateGCChecked(ov.XU.Conn(), ov.GCtx, xproto.Drawable(win.Id), 0, nil)
	if err := c2.Check(); err != nil {
		return err
	}

	xevent.ExposeFun(ov.onExpose).Connect(ov.XU, win.Id)
	xevent.ClientMessageFun(ov.onClientMessage).Connect(ov.XU, win.Id)
	xevent.DestroyNotifyFun(ov.onDestroyNotify).Connect(ov.XU, win.Id)
	return nil
}

func (ov *Overlay) setupHints() error {
	xu, id := ov.XU, ov.Win.Id

	if err := icccm.WmNameSet(xu, id, ov.cfg.Title); err != nil {
		return err
	}
	if err := ewmh.WmNameSet(xu, id, ov.cfg.Title); err != nil {
		return err
	}

	// min=max: not resizable
	nh := &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
		MinWidth:  uint(ov.size.X),
		MinHeight: uint(ov.size.Y),
		MaxWidth:  uint(ov.size.X),
		MaxHeight: uint(ov.size.Y),
	}
	if err := icccm.WmNormalHintsSet(xu, id, nh); err != nil {
		return err
	}

	// never take input focus
	hints := &icccm.Hints{Flags: icccm.HintInput, Input: 0}
	if err := icccm.WmHintsSet(xu, id, hints); err != nil {
		return err
	}

	if err := icccm.WmProtocolsSet(xu, id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return err
	}
	protocols, err := xprop.Atm(xu, "WM_PROTOCOLS")
	if err != nil {
		return err
	}
	deleteWindow, err := xprop.Atm(xu, "WM_DELETE_WINDOW")
	if err != nil {
		return err
	}
	ov.atoms.protocols = protocols
	ov.atoms.deleteWindow = deleteWindow

	// always on top; window managers without ewmh ignore these
	if err := ewmh.WmWindowTypeSet(xu, id, []string{"_NET_WM_WINDOW_TYPE_UTILITY"}); err != nil {
		return err
	}
	return ewmh.WmStateSet(xu, id, []string{"_NET_WM_STATE_ABOVE"})
}

//----------

// Event callbacks run between pingBefore/pingAfter while the loop below is
// blocked, so ticks and callbacks never overlap.
func (ov *Overlay) eventLoop() {
	pingBefore, pingAfter, pingQuit := xevent.MainPing(ov.XU)
	for {
		select {
		case <-pingBefore:
			<-pingAfter
		case <-ov.timer.C():
			ov.r.Tick()
		case <-pingQuit:
			return
		}
	}
}

func (ov *Overlay) onExpose(xu *xgbutil.XUtil, ev xevent.ExposeEvent) {
	if ev.Count != 0 {
		return // more exposes follow, paint once on the last
	}
	ov.r.Paint(&paintBracket{ov: ov})
}

func (ov *Overlay) onClientMessage(xu *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
	if ev.Type != ov.atoms.protocols || ev.Format != 32 {
		return
	}
	if xproto.Atom(ev.Data.Data32[0]) == ov.atoms.deleteWindow {
		ov.r.Destroy()
	}
}

func (ov *Overlay) onDestroyNotify(xu *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
	ov.r.Destroy()
}

func (ov *Overlay) close() {
	if ov.Win != nil {
		ov.Win.Destroy()
	}
	ov.XU.Conn().Close()
}

//----------

// Host implementation, called by the renderer from the loop.

func (ov *Overlay) CreateFont(spec overlay.FontSpec) (overlay.Font, error) {
	return newFaceFont(spec)
}

// Generates an expose event; drawing happens there.
func (ov *Overlay) Invalidate() error {
	c := xproto.ClearAreaChecked(ov.XU.Conn(), true, ov.Win.Id, 0, 0, 0, 0)
	return c.Check()
}

func (ov *Overlay) Quit() {
	xevent.Quit(ov.XU)
}

//----------

func (ov *Overlay) putImage() error {
	c := xproto.PutImageChecked(
		ov.XU.Conn(),
		xproto.ImageFormatZPixmap,
		xproto.Drawable(ov.Win.Id),
		ov.GCtx,
		uint16(ov.size.X), uint16(ov.size.Y),
		0, 0, // dst x,y
		0, // left pad
		ov.XU.Screen().RootDepth,
		ov.img.Pix)
	return c.Check()
}

//----------

func newStdLogger(zl zerolog.Logger) *log.Logger {
	return log.New(zl.With().Str("lib", "xgbutil").Logger(), "", 0)
}
