// Package widget is a small retained element tree for forms: windows, panels,
// leaf controls, tab controls and menu strips. Every node satisfies the
// capabilities pkg/scaling walks.
package widget

import (
	"image"

	"formscale/pkg/scaling"
)

type Kind uint8

const (
	KindPanel Kind = iota
	KindGroup
	KindButton
	KindLabel
	KindTextBox
	KindCheckBox
	KindTabs
	KindMenu
)

var kindNames = map[Kind]string{
	KindPanel:    "panel",
	KindGroup:    "group",
	KindButton:   "button",
	KindLabel:    "label",
	KindTextBox:  "textbox",
	KindCheckBox: "checkbox",
	KindTabs:     "tabs",
	KindMenu:     "menu",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind resolves a kind name as used in form files.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Widget is any node of the tree.
type Widget interface {
	scaling.Element
	Kind() Kind
	Text() string
	Font() scaling.Font
	Bounds() image.Rectangle
}

type base struct {
	name string
	text string
	kind Kind
	geom scaling.Geometry
	font scaling.Font
}

func newBase(kind Kind, name, text string, g scaling.Geometry) base {
	g.Name = name
	return base{name: name, text: text, kind: kind, geom: g}
}

func (b *base) Name() string               { return b.name }
func (b *base) Kind() Kind                 { return b.kind }
func (b *base) Text() string               { return b.text }
func (b *base) Font() scaling.Font         { return b.font }
func (b *base) SetFont(f scaling.Font)     { b.font = f }
func (b *base) Geometry() scaling.Geometry { return b.geom }

func (b *base) SetGeometry(g scaling.Geometry) {
	g.Name = b.name
	b.geom = g
}

// Bounds returns the rectangle relative to the parent's client origin.
func (b *base) Bounds() image.Rectangle {
	return image.Rect(b.geom.Left, b.geom.Top, b.geom.Left+b.geom.Width, b.geom.Top+b.geom.Height)
}

// Control is a leaf: button, label, text box or check box.
type Control struct {
	base
	Checked bool
}

func NewControl(kind Kind, name, text string, g scaling.Geometry) *Control {
	return &Control{base: newBase(kind, name, text, g)}
}

// Panel holds child widgets in insertion order.
type Panel struct {
	base
	children []Widget
}

func NewPanel(name string, g scaling.Geometry, children ...Widget) *Panel {
	return &Panel{base: newBase(KindPanel, name, "", g), children: children}
}

// NewGroup is a panel drawn with a caption.
func NewGroup(name, caption string, g scaling.Geometry, children ...Widget) *Panel {
	return &Panel{base: newBase(KindGroup, name, caption, g), children: children}
}

func (p *Panel) Add(children ...Widget) { p.children = append(p.children, children...) }

func (p *Panel) Widgets() []Widget { return p.children }

func (p *Panel) Children() []scaling.Element { return elements(p.children) }

func elements(ws []Widget) []scaling.Element {
	out := make([]scaling.Element, len(ws))
	for i, w := range ws {
		out[i] = w
	}
	return out
}
