package ui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontBank hands out faces by point size. Every font tier the scaling engine
// picks maps to one cached face.
type FontBank struct {
	regular *opentype.Font
	cache   map[int]font.Face
}

func NewFontBank() *FontBank {
	bank := &FontBank{cache: map[int]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return bank
	}
	bank.regular = reg
	return bank
}

// Face falls back to a fixed bitmap face if the TTF did not parse.
func (b *FontBank) Face(size int) font.Face {
	if size <= 0 {
		size = 9
	}
	if f, ok := b.cache[size]; ok {
		return f
	}
	if b.regular == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(b.regular, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	b.cache[size] = face
	return face
}

// Measure returns the advance width of s in pixels.
func (b *FontBank) Measure(size int, s string) int {
	if s == "" {
		return 0
	}
	adv := font.MeasureString(b.Face(size), s)
	px := (int(adv) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}

// Height is ascent plus descent.
func (b *FontBank) Height(size int) int {
	m := b.Face(size).Metrics()
	return m.Ascent.Round() + m.Descent.Round()
}
