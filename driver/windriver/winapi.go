//go:build windows

package windriver

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zwinapi.go winapi.go

import (
	"image"

	"golang.org/x/sys/windows"
)

//----------

const (
	_CW_USEDEFAULT = 0x80000000 - 0x100000000

	_CS_VREDRAW = 0x0001 // redraw on width adjust
	_CS_HREDRAW = 0x0002 // redraw on height adjust

	_IDC_ARROW = 32512

	_COLOR_WINDOW = 5

	_SW_SHOWNOACTIVATE = 4

	// wm_mouseactivate result
	_MA_NOACTIVATE = 3

	// setbkmode
	_TRANSPARENT = 1
	_OPAQUE      = 2
)

// https://learn.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
const (
	_VK_SHIFT   = 0x10
	_VK_CONTROL = 0x11
	_VK_MENU    = 0x12 // alt
	_VK_LWIN    = 0x5B
	_VK_RWIN    = 0x5C

	// getasynckeystate: most significant bit
	_KEY_DOWN_BIT = 0x8000
)

const (
	_WS_OVERLAPPED = 0x00000000
	_WS_CAPTION    = 0x00C00000
	_WS_SYSMENU    = 0x00080000

	// no thickframe/maximizebox: not resizable
	_WS_FIXEDTOOL = _WS_OVERLAPPED | _WS_CAPTION | _WS_SYSMENU

	_WS_EX_TOPMOST    = 0x00000008
	_WS_EX_TOOLWINDOW = 0x00000080 // small caption, no taskbar button
	_WS_EX_NOACTIVATE = 0x08000000 // never takes focus from other apps
)

// createfont
const (
	_FW_NORMAL           = 400
	_DEFAULT_CHARSET     = 1
	_OUT_DEFAULT_PRECIS  = 0
	_CLIP_DEFAULT_PRECIS = 0
	_DEFAULT_QUALITY     = 0
	_FIXED_PITCH         = 1
	_FF_MODERN           = 0x30 // constant stroke width (monospace)
)

type _wm uint32

const (
	_WM_CREATE        _wm = 0x01
	_WM_DESTROY       _wm = 0x02
	_WM_PAINT         _wm = 0x0F
	_WM_CLOSE         _wm = 0x10
	_WM_QUIT          _wm = 0x12
	_WM_ERASEBKGND    _wm = 0x14
	_WM_MOUSEACTIVATE _wm = 0x21
	_WM_NCCREATE      _wm = 0x81
	_WM_NCDESTROY     _wm = 0x82
	_WM_TIMER         _wm = 0x113
)

//----------

type _WndClassExW struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     windows.Handle
	HIcon         windows.Handle
	HCursor       windows.Handle
	HbrBackground windows.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       windows.Handle
}

type _Msg struct {
	HWnd     windows.Handle
	Msg      uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       _Point
	LPrivate uint32
}

type _CreateStructW struct {
	LpCreateParams uintptr
	HInstance      windows.Handle
	HMenu          windows.Handle
	HWndParent     windows.Handle
	CY             int32 // h
	CX             int32 // w
	Y              int32
	X              int32
	Style          int32
	LpszName       *uint16
	LpszClass      *uint16
	DwExStyle      uint32
}

// win32 BOOL is 4 bytes
type _Paint struct {
	Hdc         windows.Handle
	FErase      int32
	RcPaint     _Rect
	FRestore    int32
	FIncUpdate  int32
	RgbReserved [32]byte
}

//----------

type _Point struct {
	X, Y int32
}

//----------

type _Rect struct {
	left, top, right, bottom int32
}

func RectFromImageRectangle(r image.Rectangle) _Rect {
	return _Rect{
		left:   int32(r.Min.X),
		right:  int32(r.Max.X),
		top:    int32(r.Min.Y),
		bottom: int32(r.Max.Y),
	}
}

func (r *_Rect) ToImageRectangle() image.Rectangle {
	return image.Rect(int(r.left), int(r.top), int(r.right), int(r.bottom))
}

//----------

func UTF16PtrFromString(s string) *uint16 {
	ptr, err := windows.UTF16PtrFromString(s)
	if err != nil {
		panic(err) // only fails if s contains a nul byte
	}
	return ptr
}

//----------

// NOTES
// int -> int32
// uint -> uint32
// lpcwstr -> *uint16 // string of 16-bit unicode characters
// short -> uint16
// dword -> uint32
// uint_ptr -> uintptr

//sys _GetModuleHandleW(name *uint16) (modH windows.Handle, err error) = kernel32.GetModuleHandleW

//sys _LoadCursorW(hInstance windows.Handle, name uint32) (cursorH windows.Handle, err error) = user32.LoadCursorW
//sys _RegisterClassExW(wcx *_WndClassExW) (atom uint16, err error) = user32.RegisterClassExW
//sys _AdjustWindowRectEx(r *_Rect, style uint32, menu bool, exStyle uint32) (ok bool) = user32.AdjustWindowRectEx
//sys _CreateWindowExW(dwExStyle uint32, lpClassName *uint16, lpWindowName *uint16, dwStyle int32, x int32, y int32, nWidth int32, nHeight int32, hWndParent windows.Handle, hMenu windows.Handle, hInstance windows.Handle, lpParam uintptr) (wndH windows.Handle, err error) = user32.CreateWindowExW
//sys _DestroyWindow(hwnd windows.Handle) (ok bool) = user32.DestroyWindow
//sys _ShowWindow(hwnd windows.Handle, nCmdShow int) (ok bool) = user32.ShowWindow
//sys _UpdateWindow(hwnd windows.Handle) (ok bool) = user32.UpdateWindow
//sys _GetMessageW(msg *_Msg, hwnd windows.Handle, msgFilterMin uint32, msgFilterMax uint32) (res int32, err error) [failretval==-1] = user32.GetMessageW
//sys _TranslateMessage(msg *_Msg) (translated bool) = user32.TranslateMessage
//sys _DispatchMessageW(msg *_Msg) (res int32) = user32.DispatchMessageW
//sys _DefWindowProcW(hwnd windows.Handle, msg uint32, wparam uintptr, lparam uintptr) (ret uintptr) = user32.DefWindowProcW
//sys _PostQuitMessage(exitCode int32) = user32.PostQuitMessage
//sys _SetTimer(hwnd windows.Handle, id uintptr, elapse uint32, timerFunc uintptr) (timerId uintptr, err error) = user32.SetTimer
//sys _KillTimer(hwnd windows.Handle, id uintptr) (ok bool) = user32.KillTimer
//sys _InvalidateRect(hwnd windows.Handle, r *_Rect, erase bool) (ok bool) = user32.InvalidateRect
//sys _ValidateRect(hwnd windows.Handle, r *_Rect) (ok bool) = user32.ValidateRect
//sys _BeginPaint(hwnd windows.Handle, paint *_Paint) (dcH windows.Handle, err error) = user32.BeginPaint
//sys _EndPaint(hwnd windows.Handle, paint *_Paint) (ok bool) = user32.EndPaint
//sys _GetAsyncKeyState(vkey int32) (state uint16) = user32.GetAsyncKeyState

//sys _CreateFontW(height int32, width int32, escapement int32, orientation int32, weight int32, italic uint32, underline uint32, strikeOut uint32, charSet uint32, outPrecision uint32, clipPrecision uint32, quality uint32, pitchAndFamily uint32, face *uint16) (fontH windows.Handle, err error) = gdi32.CreateFontW
//sys _SelectObject(hdc windows.Handle, obj windows.Handle) (prevObjH windows.Handle, err error) = gdi32.SelectObject
//sys _DeleteObject(obj windows.Handle) (ok bool) = gdi32.DeleteObject
//sys _SetBkMode(hdc windows.Handle, mode int32) (prevMode int32) = gdi32.SetBkMode
//sys _TextOutW(hdc windows.Handle, x int32, y int32, s *uint16, n int32) (ok bool) = gdi32.TextOutW
