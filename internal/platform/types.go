package platform

import "formscale/internal/render"

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
)

func (t EventType) String() string {
	switch t {
	case EventClose:
		return "close"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

type Event struct {
	Type   EventType
	Width  int
	Height int
}

type Platform interface {
	Name() string
	CreateWindow(cfg WindowConfig) (Window, error)
}

type Window interface {
	PollEvents() []Event
	SizePx() (int, int)
	Present(fb *render.FrameBuffer) error
	SetTitle(title string)
	Close()
}

// ClampSize applies the configured minimum size, like a native window would.
// Neither side ever drops below one pixel.
func (c WindowConfig) ClampSize(w, h int) (int, int) {
	return max(w, c.MinWidthPx, 1), max(h, c.MinHeightPx, 1)
}
