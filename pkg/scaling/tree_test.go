package scaling

type node struct {
	name     string
	geom     Geometry
	font     Font
	children []Element
	sets     int
}

func (n *node) Name() string           { return n.name }
func (n *node) Geometry() Geometry     { return n.geom }
func (n *node) SetGeometry(g Geometry) { n.geom = g; n.sets++ }
func (n *node) SetFont(f Font)         { n.font = f }
func (n *node) Children() []Element    { return n.children }

type window struct {
	node
	family string
}

func (w *window) Font() Font { return Font{Family: w.family, Size: 9} }

type page struct{ children []Element }

func (p page) Children() []Element { return p.children }

type tabs struct {
	node
	pages []Page
}

func (t *tabs) Pages() []Page { return t.pages }

type item struct {
	text string
	font Font
}

func (i *item) Text() string   { return i.text }
func (i *item) SetFont(f Font) { i.font = f }

type menu struct {
	node
	items []MenuItem
}

func (m *menu) Items() []MenuItem { return m.items }

func leaf(name string, top, left, w, h int) *node {
	return &node{name: name, geom: Geometry{Name: name, Top: top, Left: left, Width: w, Height: h}}
}

func newWindow(w, h int, children ...Element) *window {
	return &window{
		node:   node{name: "form", geom: Geometry{Name: "form", Width: w, Height: h}, children: children},
		family: "Go",
	}
}

func (w *window) resize(width, height int) {
	w.geom.Width = width
	w.geom.Height = height
}

// sampleTree builds a window with nested plain, tabbed and menu elements:
//
//	menu(File, Edit)
//	panel
//	  button
//	  group
//	    label
//	tabs
//	  page 1: text, inner panel(check)
//	  page 2: list
//	  page 3: (empty)
func sampleTree() (*window, *menu, *tabs) {
	m := &menu{node: *leaf("menu", 0, 0, 800, 24)}
	m.items = []MenuItem{&item{text: "File"}, &item{text: "Edit"}}

	group := leaf("group", 60, 10, 300, 120)
	group.children = []Element{leaf("label", 20, 10, 80, 20)}
	panel := leaf("panel", 30, 10, 380, 400)
	panel.children = []Element{leaf("button", 10, 10, 75, 23), group}

	inner := leaf("inner", 50, 5, 200, 100)
	inner.children = []Element{leaf("check", 5, 5, 90, 17)}
	t := &tabs{node: *leaf("tabs", 30, 400, 390, 400)}
	t.pages = []Page{
		page{children: []Element{leaf("text", 10, 10, 150, 20), inner}},
		page{children: []Element{leaf("list", 10, 10, 120, 200)}},
		page{},
	}
	return newWindow(800, 600, m, panel, t), m, t
}
