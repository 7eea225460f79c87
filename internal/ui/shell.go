package ui

import (
	"image"
	"image/color"

	"formscale/internal/render"
	"formscale/internal/widget"
)

type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// Label is text the framebuffer cannot draw. The app renders labels on top of
// the uploaded frame with the face for Size.
type Label struct {
	Text  string
	Rect  image.Rectangle
	Clip  image.Rectangle
	Size  int
	Color color.RGBA
	Align Align
}

// Measurer reports the pixel width of text at a font size.
type Measurer interface {
	Measure(size int, s string) int
}

// Visit calls fn for every visible widget below win with its absolute
// rectangle and the clip rectangle inherited from its ancestors. Only the
// selected page of a tab control is visible.
func Visit(win *widget.Window, fn func(w widget.Widget, r, clip image.Rectangle)) {
	w, h := win.Size()
	clip := image.Rect(0, 0, w, h)
	for _, c := range win.Widgets() {
		visit(c, image.Point{}, clip, fn)
	}
}

func visit(w widget.Widget, origin image.Point, clip image.Rectangle, fn func(widget.Widget, image.Rectangle, image.Rectangle)) {
	r := w.Bounds().Add(origin)
	fn(w, r, clip)
	inner := r.Intersect(clip)
	switch v := w.(type) {
	case *widget.Panel:
		for _, c := range v.Widgets() {
			visit(c, r.Min, inner, fn)
		}
	case *widget.TabControl:
		page := v.SelectedPage()
		if page == nil {
			return
		}
		o := r.Min.Add(v.ClientOrigin())
		for _, c := range page.Widgets() {
			visit(c, o, inner, fn)
		}
	}
}

// MenuItemRects lays menu items out left to right from the strip's origin.
func MenuItemRects(m *widget.MenuStrip, r image.Rectangle, measure Measurer) []image.Rectangle {
	out := make([]image.Rectangle, 0, len(m.MenuItems()))
	x := r.Min.X + 4
	for _, it := range m.MenuItems() {
		w := measure.Measure(it.Font().Size, it.Text()) + 16
		out = append(out, image.Rect(x, r.Min.Y, x+w, r.Max.Y))
		x += w
	}
	return out
}

// DrawForm paints the window's widgets into fb and returns the labels to draw
// over them.
func DrawForm(fb *render.FrameBuffer, win *widget.Window, theme Theme, measure Measurer) []Label {
	fb.Clear(theme.AppBackground)
	bw := theme.BorderWidth
	labels := make([]Label, 0, 32)
	add := func(text string, r, clip image.Rectangle, size int, c color.RGBA, a Align) {
		if text == "" {
			return
		}
		labels = append(labels, Label{Text: text, Rect: r, Clip: clip, Size: size, Color: c, Align: a})
	}

	Visit(win, func(w widget.Widget, r, clip image.Rectangle) {
		size := w.Font().Size
		switch v := w.(type) {
		case *widget.MenuStrip:
			fb.Fill(r, clip, theme.MenuBar)
			for i, ir := range MenuItemRects(v, r, measure) {
				it := v.MenuItems()[i]
				add(it.Text(), ir, clip.Intersect(r), it.Font().Size, theme.MenuText, AlignCenter)
			}
		case *widget.TabControl:
			fb.Fill(r, clip, theme.Panel)
			for i, hr := range v.HeaderRects() {
				hr = hr.Add(r.Min)
				bg := theme.TabHeader
				if i == v.Selected() {
					bg = theme.TabActive
				}
				fb.Fill(hr, clip, bg)
				fb.Stroke(hr, clip, bw, theme.Border)
				add(v.TabPages()[i].Title, hr, clip, size, theme.Text, AlignCenter)
			}
			fb.Stroke(r, clip, bw, theme.Border)
		case *widget.Panel:
			if v.Kind() == widget.KindGroup {
				fb.Stroke(r, clip, bw, theme.Border)
				caption := image.Rect(r.Min.X+8, r.Min.Y, r.Max.X, r.Min.Y+size*2)
				add(v.Text(), caption, clip, size, theme.Text, AlignLeft)
				return
			}
			fb.Fill(r, clip, theme.Panel)
			fb.Stroke(r, clip, bw, theme.Border)
		case *widget.Control:
			drawControl(fb, v, r, clip, theme, add)
		}
	})

	w, h := win.Size()
	status := image.Rect(0, h-theme.StatusHeight, w, h)
	fb.Fill(status, fb.Bounds(), theme.StatusBar)
	fb.Stroke(status, fb.Bounds(), bw, theme.Border)
	return labels
}

func drawControl(fb *render.FrameBuffer, c *widget.Control, r, clip image.Rectangle, theme Theme, add func(string, image.Rectangle, image.Rectangle, int, color.RGBA, Align)) {
	bw := theme.BorderWidth
	size := c.Font().Size
	switch c.Kind() {
	case widget.KindButton:
		fb.Fill(r, clip, theme.Button)
		fb.Stroke(r, clip, bw, theme.Border)
		add(c.Text(), r, clip, size, theme.Text, AlignCenter)
	case widget.KindTextBox:
		fb.Fill(r, clip, theme.Input)
		fb.Stroke(r, clip, bw, theme.Border)
		add(c.Text(), r.Inset(3), clip, size, theme.Text, AlignLeft)
	case widget.KindCheckBox:
		box := r.Dy() - 4
		if box > size+4 {
			box = size + 4
		}
		if box < 4 {
			box = 4
		}
		y := r.Min.Y + (r.Dy()-box)/2
		br := image.Rect(r.Min.X, y, r.Min.X+box, y+box)
		fb.Fill(br, clip, theme.Input)
		fb.Stroke(br, clip, bw, theme.Border)
		if c.Checked {
			fb.Fill(br.Inset(3), clip, theme.Accent)
		}
		add(c.Text(), image.Rect(br.Max.X+4, r.Min.Y, r.Max.X, r.Max.Y), clip, size, theme.Text, AlignLeft)
	default:
		add(c.Text(), r, clip, size, theme.Text, AlignLeft)
	}
}

// TabAt reports which tab header, if any, lies under p.
func TabAt(win *widget.Window, p image.Point) (*widget.TabControl, int, bool) {
	var (
		hit   *widget.TabControl
		index int
	)
	Visit(win, func(w widget.Widget, r, clip image.Rectangle) {
		tabs, ok := w.(*widget.TabControl)
		if !ok || !p.In(clip) {
			return
		}
		for i, hr := range tabs.HeaderRects() {
			if p.In(hr.Add(r.Min)) {
				hit, index = tabs, i
			}
		}
	})
	return hit, index, hit != nil
}
