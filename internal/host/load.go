package host

import (
	"fmt"
	"log/slog"

	"formscale/internal/form"
	"formscale/internal/platform"
)

const (
	MinWindowW = 320
	MinWindowH = 240
)

// Load builds a host for the form at path, or for the demo form when path is
// empty.
func Load(path string, logger *slog.Logger) (*Host, error) {
	f := form.Demo()
	if path != "" {
		var err error
		if f, err = form.LoadFile(path); err != nil {
			return nil, err
		}
	}
	win, table := f.Build()
	return New(win, Options{FontTable: table, Logger: logger})
}

// Replay opens a window for h on p and runs h until the window closes.
func Replay(h *Host, p platform.Platform) error {
	w, ht := h.Window().Size()
	h.logger.Debug("opening window", "platform", p.Name(), "form", h.Window().Name(), "width", w, "height", ht)
	pw, err := p.CreateWindow(platform.WindowConfig{
		Title:       h.Window().Title,
		WidthPx:     w,
		HeightPx:    ht,
		MinWidthPx:  MinWindowW,
		MinHeightPx: MinWindowH,
	})
	if err != nil {
		return fmt.Errorf("host: %s window: %w", p.Name(), err)
	}
	return h.Run(pw)
}
