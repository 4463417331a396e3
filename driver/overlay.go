package driver

// Top-level window hosting an overlay.Renderer.
type Overlay interface {
	Run() error // blocks until the window is closed
}
