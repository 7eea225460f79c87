package widget

import (
	"image"

	"formscale/pkg/scaling"
)

type TabPage struct {
	Title    string
	children []Widget
}

func (p *TabPage) Add(children ...Widget) { p.children = append(p.children, children...) }

func (p *TabPage) Widgets() []Widget { return p.children }

func (p *TabPage) Children() []scaling.Element { return elements(p.children) }

// TabControl shows one page at a time below a strip of page headers.
type TabControl struct {
	base
	pages    []*TabPage
	selected int
}

func NewTabControl(name string, g scaling.Geometry) *TabControl {
	return &TabControl{base: newBase(KindTabs, name, "", g)}
}

func (t *TabControl) AddPage(title string, children ...Widget) *TabPage {
	p := &TabPage{Title: title, children: children}
	t.pages = append(t.pages, p)
	return p
}

func (t *TabControl) TabPages() []*TabPage { return t.pages }

func (t *TabControl) Pages() []scaling.Page {
	out := make([]scaling.Page, len(t.pages))
	for i, p := range t.pages {
		out[i] = p
	}
	return out
}

func (t *TabControl) Selected() int { return t.selected }

// Select makes page i visible. Out of range indexes are ignored.
func (t *TabControl) Select(i int) {
	if i >= 0 && i < len(t.pages) {
		t.selected = i
	}
}

// SelectedPage returns nil when the control has no pages.
func (t *TabControl) SelectedPage() *TabPage {
	if len(t.pages) == 0 {
		return nil
	}
	return t.pages[t.selected]
}

// HeaderHeight grows with the font so scaled titles still fit.
func (t *TabControl) HeaderHeight() int {
	h := t.font.Size*2 + 6
	if h < 20 {
		h = 20
	}
	if h > t.geom.Height {
		h = t.geom.Height
	}
	return h
}

// HeaderRects splits the header strip evenly, relative to the control.
func (t *TabControl) HeaderRects() []image.Rectangle {
	if len(t.pages) == 0 {
		return nil
	}
	out := make([]image.Rectangle, len(t.pages))
	w := t.geom.Width / len(t.pages)
	h := t.HeaderHeight()
	for i := range t.pages {
		out[i] = image.Rect(i*w, 0, (i+1)*w, h)
	}
	return out
}

// ClientOrigin is where page contents start, relative to the control.
func (t *TabControl) ClientOrigin() image.Point {
	return image.Pt(2, t.HeaderHeight()+2)
}
