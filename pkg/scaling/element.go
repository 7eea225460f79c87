package scaling

// Element is a node of the host's UI tree that carries a position and size.
type Element interface {
	Name() string
	Geometry() Geometry
	SetGeometry(g Geometry)
	SetFont(f Font)
}

// Container is a plain element holding an ordered list of children.
type Container interface {
	Element
	Children() []Element
}

// Page groups the children of one tab of a Tabbed element. Pages carry no
// geometry of their own.
type Page interface {
	Children() []Element
}

// Tabbed is an element whose children are grouped into pages.
type Tabbed interface {
	Element
	Pages() []Page
}

// MenuItem is a labeled menu entry. Only its font is ever touched.
type MenuItem interface {
	Text() string
	SetFont(f Font)
}

// Menu is an element holding flat menu entries.
type Menu interface {
	Element
	Items() []MenuItem
}

// Root is the top-level window whose resize triggers rescaling.
type Root interface {
	Container
	Font() Font
}

// walk visits el and its descendants in pre-order. Tabbed elements are
// expanded page by page, with the pages themselves skipped. Menu items are
// not elements and are never visited.
func walk(el Element, visit func(Element)) {
	visit(el)
	switch v := el.(type) {
	case Tabbed:
		for _, p := range v.Pages() {
			for _, c := range p.Children() {
				walk(c, visit)
			}
		}
	case Container:
		for _, c := range v.Children() {
			walk(c, visit)
		}
	}
}

func flatten(el Element) []Element {
	var out []Element
	walk(el, func(e Element) { out = append(out, e) })
	return out
}
