//go:build windows

package windriver

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/modspy/modspy/core/overlay"
	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

// Function preceded by "ost" run in the "operating-system-thread".
type Overlay struct {
	cfg overlay.Config
	log zerolog.Logger
	r   *overlay.Renderer

	id       uintptr // wndproc association, passed as create param
	hwnd     windows.Handle
	instance windows.Handle

	createErr error // renderer failure during wm_create
}

func NewOverlay(cfg overlay.Config, log zerolog.Logger) (*Overlay, error) {
	ov := &Overlay{cfg: cfg, log: log}
	reader := newAsyncKeyReader(log)
	ov.r = overlay.NewRenderer(reader, cfg, log)
	return ov, nil
}

func (ov *Overlay) Renderer() *overlay.Renderer { return ov.r }

//----------

// Blocks until the window is closed.
func (ov *Overlay) Run() error {
	// window, timer and paint must all stay on one OS thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ov.ostCreateWindow(); err != nil {
		return err
	}
	return ov.ostMsgLoop()
}

//----------

func (ov *Overlay) ostCreateWindow() error {
	// handle containing the window procedure for the class.
	instance, err := _GetModuleHandleW(nil)
	if err != nil {
		return fmt.Errorf("getmodulehandle: %w", err)
	}
	ov.instance = instance

	if err := registerClass(instance); err != nil {
		return err
	}

	// outer size for the requested client area
	style := uint32(_WS_FIXEDTOOL)
	exStyle := uint32(_WS_EX_TOPMOST | _WS_EX_TOOLWINDOW | _WS_EX_NOACTIVATE)
	wr := RectFromImageRectangle(image.Rectangle{Max: ov.cfg.Size})
	if !_AdjustWindowRectEx(&wr, style, false, exStyle) {
		return errors.New("adjustwindowrectex: false")
	}
	size := wr.ToImageRectangle().Size()

	ov.id = overlays.add(ov)
	hwnd, err := _CreateWindowExW(
		exStyle,
		className,
		UTF16PtrFromString(ov.cfg.Title),
		int32(style),
		_CW_USEDEFAULT, _CW_USEDEFAULT, // x,y
		int32(size.X), int32(size.Y), // w,h
		0, 0, ov.instance, ov.id,
	)
	if err != nil {
		overlays.remove(ov)
		if ov.createErr != nil {
			return fmt.Errorf("createwindow: %w", ov.createErr)
		}
		return fmt.Errorf("createwindow: %w", err)
	}
	ov.hwnd = hwnd

	_ = _ShowWindow(ov.hwnd, _SW_SHOWNOACTIVATE)
	_ = _UpdateWindow(ov.hwnd)
	return nil
}

//----------

func (ov *Overlay) ostMsgLoop() error {
	msg := _Msg{} // ensure it is instantiated during the loop
	for {
		res, err := _GetMessageW(&msg, 0, 0, 0) // wait for next msg
		if err != nil {
			return fmt.Errorf("getmessage: %w", err)
		}
		quit := res == 0
		if quit {
			return nil
		}
		_ = _TranslateMessage(&msg)

		// dispatch to hwnd.class.LpfnWndProc (runs wndProc)
		_ = _DispatchMessageW(&msg)
	}
}

//----------

func (ov *Overlay) handleMsg(msg *_Msg) uintptr {
	defh := func() uintptr {
		return _DefWindowProcW(msg.HWnd, msg.Msg, msg.WParam, msg.LParam)
	}

	switch _wm(msg.Msg) {
	case _WM_CREATE:
		if err := ov.r.Create(ov, ov); err != nil {
			ov.createErr = err
			return ^uintptr(0) // -1: abort window creation
		}
		return 0

	case _WM_TIMER:
		if msg.WParam == timerId {
			ov.r.Tick()
			return 0
		}

	case _WM_PAINT:
		pb := &paintBracket{hwnd: msg.HWnd}
		ov.r.Paint(pb)
		if !pb.begun {
			// region must be validated or wm_paint keeps coming
			_ = _ValidateRect(msg.HWnd, nil)
		}
		return 0

	case _WM_MOUSEACTIVATE:
		return _MA_NOACTIVATE

	// wm_close: default proc calls destroywindow
	case _WM_DESTROY:
		ov.r.Destroy()
		return 0
	case _WM_NCDESTROY:
		overlays.remove(ov)
	}

	return defh()
}

//----------

// Host implementation, called by the renderer on the OS thread.

func (ov *Overlay) CreateFont(spec overlay.FontSpec) (overlay.Font, error) {
	return newGdiFont(spec)
}

func (ov *Overlay) Invalidate() error {
	if !_InvalidateRect(ov.hwnd, nil, true) {
		return errors.New("invalidaterect: false")
	}
	return nil
}

func (ov *Overlay) Quit() {
	_PostQuitMessage(0)
}

//----------

// Timer implementation: wm_timer is delivered through the message loop.

const timerId = 1

func (ov *Overlay) Arm(period time.Duration) error {
	ms := uint32(period / time.Millisecond)
	if ms == 0 {
		ms = 1
	}
	if _, err := _SetTimer(ov.hwnd, timerId, ms, 0); err != nil {
		return fmt.Errorf("settimer: %w", err)
	}
	return nil
}

func (ov *Overlay) Disarm() error {
	if !_KillTimer(ov.hwnd, timerId) {
		return errors.New("killtimer: false")
	}
	return nil
}

//----------

var className = UTF16PtrFromString("modspyOverlay")

var class struct {
	once sync.Once
	err  error
}

// Window class is registered once per process.
func registerClass(instance windows.Handle) error {
	class.once.Do(func() {
		cursorH, err := _LoadCursorW(0, _IDC_ARROW)
		if err != nil {
			class.err = fmt.Errorf("loadcursor: %w", err)
			return
		}
		wce := _WndClassExW{
			LpszClassName: className,
			LpfnWndProc:   windows.NewCallback(wndProc),
			HInstance:     instance,
			HCursor:       cursorH,
			HbrBackground: _COLOR_WINDOW + 1,
			Style:         _CS_HREDRAW | _CS_VREDRAW,
		}
		wce.CbSize = uint32(unsafe.Sizeof(wce))
		if _, err := _RegisterClassExW(&wce); err != nil {
			class.err = fmt.Errorf("registerclassex: %w", err)
		}
	})
	return class.err
}

// Called by dispatchMessage and via WndClassExW.
func wndProc(hwnd windows.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	if _wm(msg) == _WM_NCCREATE {
		cs := (*_CreateStructW)(unsafe.Pointer(lParam))
		overlays.bind(cs.LpCreateParams, hwnd)
	}
	ov := overlays.get(hwnd)
	if ov == nil {
		// messages before wm_nccreate (ex: wm_getminmaxinfo)
		return _DefWindowProcW(hwnd, msg, wParam, lParam)
	}
	m := &_Msg{
		HWnd:   hwnd,
		Msg:    msg,
		WParam: wParam,
		LParam: lParam,
	}
	return ov.handleMsg(m)
}

//----------

// Associates windows with their overlay. The create param carries an id,
// not a Go pointer.
var overlays = newOverlayTable()

type overlayTable struct {
	sync.Mutex
	nextId uintptr
	byId   map[uintptr]*Overlay
	byHwnd map[windows.Handle]*Overlay
}

func newOverlayTable() *overlayTable {
	return &overlayTable{
		nextId: 1,
		byId:   map[uintptr]*Overlay{},
		byHwnd: map[windows.Handle]*Overlay{},
	}
}

func (t *overlayTable) add(ov *Overlay) uintptr {
	t.Lock()
	defer t.Unlock()
	id := t.nextId
	t.nextId++
	t.byId[id] = ov
	return id
}

func (t *overlayTable) bind(id uintptr, hwnd windows.Handle) {
	t.Lock()
	defer t.Unlock()
	ov, ok := t.byId[id]
	if !ok {
		return
	}
	ov.hwnd = hwnd
	t.byHwnd[hwnd] = ov
}

func (t *overlayTable) get(hwnd windows.Handle) *Overlay {
	t.Lock()
	defer t.Unlock()
	return t.byHwnd[hwnd]
}

func (t *overlayTable) remove(ov *Overlay) {
	t.Lock()
	defer t.Unlock()
	delete(t.byId, ov.id)
	for h, ov2 := range t.byHwnd {
		if ov2 == ov {
			delete(t.byHwnd, h)
		}
	}
}
