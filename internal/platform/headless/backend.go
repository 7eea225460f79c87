// Package headless is a window backend without a display. It replays a fixed
// script of window sizes as resize events, one batch per poll.
package headless

import (
	"fmt"
	"strconv"
	"strings"

	"formscale/internal/platform"
	"formscale/internal/render"
)

type Size struct {
	W int
	H int
}

// ParseSizes reads a comma separated list such as "1024x768,1920x1080".
func ParseSizes(s string) ([]Size, error) {
	var out []Size
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ws, hs, ok := strings.Cut(part, "x")
		if !ok {
			return nil, fmt.Errorf("headless: size %q is not WxH", part)
		}
		w, err := strconv.Atoi(ws)
		if err != nil {
			return nil, fmt.Errorf("headless: size %q: %w", part, err)
		}
		h, err := strconv.Atoi(hs)
		if err != nil {
			return nil, fmt.Errorf("headless: size %q: %w", part, err)
		}
		out = append(out, Size{W: w, H: h})
	}
	return out, nil
}

type Backend struct {
	script []Size
}

func New(script ...Size) *Backend { return &Backend{script: script} }

func (b *Backend) Name() string { return "headless" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	if cfg.WidthPx <= 0 || cfg.HeightPx <= 0 {
		return nil, fmt.Errorf("headless: invalid window size %dx%d", cfg.WidthPx, cfg.HeightPx)
	}
	return &window{
		cfg:    cfg,
		title:  cfg.Title,
		w:      cfg.WidthPx,
		h:      cfg.HeightPx,
		script: append([]Size(nil), b.script...),
	}, nil
}

type window struct {
	cfg    platform.WindowConfig
	title  string
	w      int
	h      int
	script []Size
	closed bool
}

// PollEvents delivers the next scripted size, then a close event once the
// script runs out.
func (w *window) PollEvents() []platform.Event {
	if w.closed {
		return []platform.Event{{Type: platform.EventClose}}
	}
	if len(w.script) == 0 {
		w.closed = true
		return []platform.Event{{Type: platform.EventClose}}
	}
	next := w.script[0]
	w.script = w.script[1:]
	w.w, w.h = w.cfg.ClampSize(next.W, next.H)
	return []platform.Event{{Type: platform.EventResize, Width: w.w, Height: w.h}}
}

func (w *window) SizePx() (int, int) { return w.w, w.h }

func (w *window) SetTitle(title string) { w.title = title }

func (w *window) Present(fb *render.FrameBuffer) error {
	if fb.W != w.w || fb.H != w.h {
		return fmt.Errorf("headless: frame %dx%d does not match window %dx%d", fb.W, fb.H, w.w, w.h)
	}
	return nil
}

func (w *window) Close() { w.closed = true }
