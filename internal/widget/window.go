package widget

import "formscale/pkg/scaling"

// Window is the root of a form. Its own Top/Left are the screen position and
// are left alone by resizing.
type Window struct {
	Panel
	Title string
}

func NewWindow(name, title string, width, height int, font scaling.Font, children ...Widget) *Window {
	w := &Window{Panel: *NewPanel(name, scaling.Geometry{Width: width, Height: height}, children...), Title: title}
	w.font = font
	return w
}

// SetSize is what the host calls when the native window changes size.
func (w *Window) SetSize(width, height int) {
	w.geom.Width = width
	w.geom.Height = height
}

func (w *Window) Size() (int, int) { return w.geom.Width, w.geom.Height }

// Walk calls fn for every widget below w in pre-order. Tab pages are
// flattened; fn sees every page, not just the selected one.
func Walk(w Widget, fn func(Widget)) {
	fn(w)
	switch v := w.(type) {
	case *TabControl:
		for _, p := range v.pages {
			for _, c := range p.children {
				Walk(c, fn)
			}
		}
	case *Panel:
		for _, c := range v.children {
			Walk(c, fn)
		}
	case *Window:
		for _, c := range v.children {
			Walk(c, fn)
		}
	}
}

// Find returns the first widget named name, or nil.
func Find(w Widget, name string) Widget {
	var found Widget
	Walk(w, func(x Widget) {
		if found == nil && x.Name() == name {
			found = x
		}
	})
	return found
}

// Count returns the number of widgets below root, root excluded.
func (w *Window) Count() int {
	n := 0
	for _, c := range w.children {
		Walk(c, func(Widget) { n++ })
	}
	return n
}
