// Overlay window renderer: owns the font resource, turns timer ticks into
// invalidations and draws the modifiers frame when the host dispatches a
// paint.
//
// All methods must be called from the host's event loop thread.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/modspy/modspy/core/keystate"
	"github.com/modspy/modspy/core/modstate"
	"github.com/modspy/modspy/core/poll"
	"github.com/rs/zerolog"
)

type Config struct {
	Title      string
	Size       image.Point // client area
	FontFamily string
	FontSize   int // pixels
	FontWidth  int // pixels per cell, 0 lets the host decide
	Origin     image.Point
	Period     time.Duration
}

func DefaultConfig() Config {
	return Config{
		Title:      "Modifier Key Spy",
		Size:       image.Pt(190, 25),
		FontFamily: "Consolas",
		FontSize:   16,
		FontWidth:  8,
		Origin:     image.Pt(2, 2),
		Period:     poll.DefaultPeriod,
	}
}

func (cfg Config) FontSpec() FontSpec {
	return FontSpec{Family: cfg.FontFamily, Size: cfg.FontSize, Width: cfg.FontWidth}
}

//----------

type FontSpec struct {
	Family string
	Size   int
	Width  int
}

// Drawing resource created by the host. Released once by the renderer.
type Font interface {
	Release() error
}

// Drawing surface, only valid between PaintBracket Begin and End.
type Canvas interface {
	DrawText(f Font, origin image.Point, text string) error
}

type PaintBracket interface {
	Begin() (Canvas, error)
	End()
}

// Native window side, implemented by the platform drivers.
type Host interface {
	CreateFont(FontSpec) (Font, error)
	Invalidate() error // request a paint dispatch, must not draw
	Quit()             // terminate the host event loop
}

//----------

type State int

const (
	Uninitialized State = iota
	Created
	Invalidated
	Painted
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Created:
		return "created"
	case Invalidated:
		return "invalidated"
	case Painted:
		return "painted"
	case Destroyed:
		return "destroyed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

//----------

type Renderer struct {
	cfg    Config
	reader keystate.Reader
	sched  *poll.Scheduler
	log    zerolog.Logger

	host  Host
	font  Font
	state State
	frame modstate.Frame

	painting       bool
	destroyPending bool
}

func NewRenderer(reader keystate.Reader, cfg Config, log zerolog.Logger) *Renderer {
	if reader == nil {
		reader = keystate.Unsupported
	}
	r := &Renderer{cfg: cfg, reader: reader, log: log}
	r.sched = poll.New(cfg.Period, r.invalidate)
	return r
}

func (r *Renderer) Config() Config               { return r.cfg }
func (r *Renderer) State() State                 { return r.state }
func (r *Renderer) Scheduler() *poll.Scheduler   { return r.sched }
func (r *Renderer) Frame() modstate.Frame        { return r.frame }
func (r *Renderer) hasFont() bool                { return r.font != nil }
func (r *Renderer) stateIs(states ...State) bool { return stateIn(r.state, states) }

//----------

// Allocates the font and arms the timer. Errors are fatal to the overlay.
func (r *Renderer) Create(host Host, timer poll.Timer) error {
	if r.state != Uninitialized {
		return fmt.Errorf("create: bad state: %v", r.state)
	}
	if host == nil {
		return errors.New("create: nil host")
	}
	f, err := host.CreateFont(r.cfg.FontSpec())
	if err != nil {
		return fmt.Errorf("create: font: %w", err)
	}
	if f == nil {
		return errors.New("create: font: nil handle")
	}
	if err := r.sched.Start(timer); err != nil {
		if err2 := f.Release(); err2 != nil {
			r.log.Warn().Err(err2).Msg("release font")
		}
		return fmt.Errorf("create: %w", err)
	}
	r.host = host
	r.font = f
	r.state = Created
	r.log.Info().Dur("period", r.sched.Period()).Msg("overlay created")
	return nil
}

//----------

// Timer event from the host.
func (r *Renderer) Tick() {
	r.sched.Tick()
}

// Scheduler refresh: only marks the window for a repaint.
func (r *Renderer) invalidate() {
	if !r.stateIs(Created, Invalidated, Painted) {
		return
	}
	if err := r.host.Invalidate(); err != nil {
		r.log.Debug().Err(err).Msg("invalidate")
		return
	}
	r.state = Invalidated
}

//----------

// Paint dispatch from the host. Begin/End are always balanced, and a
// destroy arriving while painting waits for End before the font goes away.
func (r *Renderer) Paint(pb PaintBracket) {
	c, err := pb.Begin()
	if err != nil {
		r.log.Debug().Err(err).Msg("paint begin")
		return
	}
	r.painting = true
	defer func() {
		pb.End()
		r.painting = false
		if r.destroyPending {
			r.destroy()
		}
	}()

	if !r.hasFont() || !r.stateIs(Created, Invalidated, Painted) {
		return
	}

	frame := r.reader.Sample().Frame()
	r.frame = frame
	r.state = Painted
	if err := c.DrawText(r.font, r.cfg.Origin, string(frame)); err != nil {
		// blank frame until the next tick
		r.log.Debug().Err(err).Msg("draw text")
	}
}

//----------

// Window close. Safe to call more than once and from within a paint.
func (r *Renderer) Destroy() {
	if r.state == Destroyed || r.destroyPending {
		return
	}
	if r.painting {
		r.destroyPending = true
		return
	}
	r.destroy()
}

func (r *Renderer) destroy() {
	r.destroyPending = false
	if err := r.sched.Stop(); err != nil {
		r.log.Warn().Err(err).Msg("stop scheduler")
	}
	if r.font != nil {
		f := r.font
		r.font = nil
		if err := f.Release(); err != nil {
			r.log.Warn().Err(err).Msg("release font")
		}
	}
	r.state = Destroyed
	r.log.Info().Int("ticks", r.sched.Ticks()).Msg("overlay destroyed")
	if r.host != nil {
		r.host.Quit()
	}
}

//----------

func stateIn(s State, states []State) bool {
	for _, s2 := range states {
		if s == s2 {
			return true
		}
	}
	return false
}
