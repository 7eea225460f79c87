// Package host owns a form's widget tree together with its scaling engine and
// turns window resize events into rescales. A Host must only be used from the
// goroutine that owns the tree.
package host

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"formscale/internal/platform"
	"formscale/internal/render"
	"formscale/internal/ui"
	"formscale/internal/widget"
	"formscale/pkg/scaling"
)

type Options struct {
	FontTable *scaling.FontTable
	Logger    *slog.Logger
	Theme     ui.Theme
}

type Host struct {
	win    *widget.Window
	engine *scaling.Engine
	logger *slog.Logger
	theme  ui.Theme
	fonts  *ui.FontBank
	fb     *render.FrameBuffer

	lastW    int
	lastH    int
	rescales int
}

func New(win *widget.Window, opts Options) (*Host, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	engine, err := scaling.NewWithOptions(win, scaling.Options{FontTable: opts.FontTable, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("host: capture %s: %w", win.Name(), err)
	}
	// At the captured size this only applies the font tier.
	if err := engine.Scale(win); err != nil {
		return nil, fmt.Errorf("host: initial layout %s: %w", win.Name(), err)
	}
	theme := opts.Theme
	if theme == (ui.Theme{}) {
		theme = ui.DefaultTheme()
	}
	w, h := win.Size()
	return &Host{
		win:    win,
		engine: engine,
		logger: logger,
		theme:  theme,
		fonts:  ui.NewFontBank(),
		lastW:  w,
		lastH:  h,
	}, nil
}

func (h *Host) Window() *widget.Window { return h.win }

func (h *Host) Engine() *scaling.Engine { return h.engine }

func (h *Host) Fonts() *ui.FontBank { return h.fonts }

func (h *Host) Theme() ui.Theme { return h.theme }

// Rescales counts the resizes that led to a rescale. The initial layout New
// applies is not counted.
func (h *Host) Rescales() int { return h.rescales }

// Resize records the new window size and rescales the form. Repeated events
// for the size already applied are dropped, so a burst of identical resize
// events costs one rescale, and a size that failed is not retried until the
// window moves to another size. It reports whether a rescale happened.
func (h *Host) Resize(width, height int) (bool, error) {
	if width == h.lastW && height == h.lastH {
		return false, nil
	}
	if width <= 0 || height <= 0 {
		h.logger.Debug("ignoring empty window size", "width", width, "height", height)
		return false, nil
	}
	h.win.SetSize(width, height)
	h.lastW, h.lastH = width, height
	if err := h.engine.Scale(h.win); err != nil {
		return false, fmt.Errorf("host: rescale to %dx%d: %w", width, height, err)
	}
	h.rescales++

	ws, hs := h.engine.Factors(width, height)
	h.logger.Info("rescaled form",
		"form", h.win.Name(),
		"width", width,
		"height", height,
		"width_scale", ws,
		"height_scale", hs,
		"font_size", h.engine.FontSize(width))
	return true, nil
}

// Draw paints the form into the host's framebuffer, resizing it to the
// window first.
func (h *Host) Draw() (*render.FrameBuffer, []ui.Label) {
	w, ht := h.win.Size()
	if h.fb == nil {
		h.fb = render.NewFrameBuffer(w, ht)
	} else if h.fb.W != w || h.fb.H != ht {
		h.fb.Resize(w, ht)
	}
	labels := ui.DrawForm(h.fb, h.win, h.theme, h.fonts)
	return h.fb, labels
}

// Run drives the host from a platform window until it closes.
func (h *Host) Run(pw platform.Window) error {
	pw.SetTitle(h.win.Title)
	for {
		for _, ev := range pw.PollEvents() {
			switch ev.Type {
			case platform.EventClose:
				pw.Close()
				h.logger.Info("window closed", "form", h.win.Name(), "rescales", h.rescales)
				return nil
			case platform.EventResize:
				h.logger.Debug("window event", "type", ev.Type, "width", ev.Width, "height", ev.Height)
				if _, err := h.Resize(ev.Width, ev.Height); err != nil {
					return err
				}
			}
		}
		fb, _ := h.Draw()
		if err := pw.Present(fb); err != nil {
			return fmt.Errorf("host: present: %w", err)
		}
	}
}

// IsMismatch reports whether err came from a tree whose shape no longer
// matches the captured snapshot.
func IsMismatch(err error) bool {
	return errors.Is(err, scaling.ErrStructureMismatch)
}

// Dump lists every widget with its current geometry and font, one per line,
// prefixed by the captured root geometry and snapshot digest.
func (h *Host) Dump() string {
	var sb strings.Builder
	root := h.engine.RootGeometry()
	w, ht := h.win.Size()
	snap := h.engine.Snapshot()
	fmt.Fprintf(&sb, "form %s captured %dx%d, now %dx%d\n", root.Name, root.Width, root.Height, w, ht)
	fmt.Fprintf(&sb, "snapshot %d groups, %d elements, digest %s\n", snap.Len(), snap.Count(), snap.Digest()[:16])

	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tkind\ttop\tleft\twidth\theight\tfont")
	for _, c := range h.win.Widgets() {
		widget.Walk(c, func(x widget.Widget) {
			g := x.Geometry()
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n", x.Name(), x.Kind(), g.Top, g.Left, g.Width, g.Height, x.Font().Size)
		})
	}
	tw.Flush()
	return sb.String()
}
