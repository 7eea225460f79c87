package widget

import "formscale/pkg/scaling"

type MenuItem struct {
	text string
	font scaling.Font
}

func (m *MenuItem) Text() string           { return m.text }
func (m *MenuItem) Font() scaling.Font     { return m.font }
func (m *MenuItem) SetFont(f scaling.Font) { m.font = f }

// MenuStrip lays its items out left to right. Items have no geometry of their
// own; their extents follow from the font.
type MenuStrip struct {
	base
	items []*MenuItem
}

func NewMenuStrip(name string, g scaling.Geometry, items ...string) *MenuStrip {
	m := &MenuStrip{base: newBase(KindMenu, name, "", g)}
	for _, it := range items {
		m.AddItem(it)
	}
	return m
}

func (m *MenuStrip) AddItem(text string) *MenuItem {
	it := &MenuItem{text: text}
	m.items = append(m.items, it)
	return it
}

func (m *MenuStrip) MenuItems() []*MenuItem { return m.items }

func (m *MenuStrip) Items() []scaling.MenuItem {
	out := make([]scaling.MenuItem, len(m.items))
	for i, it := range m.items {
		out[i] = it
	}
	return out
}
