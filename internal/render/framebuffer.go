package render

import (
	"image"
	"image/color"
)

// FrameBuffer is an RGBA pixel buffer the form is painted into before it is
// uploaded to the window.
type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize changes the buffer size, reusing the backing array when it is large
// enough. Pixel contents are undefined afterwards.
func (fb *FrameBuffer) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	n := w * h * 4
	if cap(fb.Pixels) >= n {
		fb.Pixels = fb.Pixels[:n]
	} else {
		fb.Pixels = make([]uint8, n)
	}
	fb.W, fb.H = w, h
}

func (fb *FrameBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, fb.W, fb.H) }

func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if !image.Pt(x, y).In(fb.Bounds()) {
		return color.RGBA{}
	}
	i := (y*fb.W + x) * 4
	return color.RGBA{fb.Pixels[i], fb.Pixels[i+1], fb.Pixels[i+2], fb.Pixels[i+3]}
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i+0] = c.R
		fb.Pixels[i+1] = c.G
		fb.Pixels[i+2] = c.B
		fb.Pixels[i+3] = c.A
	}
}

// Fill paints r clipped to the buffer and to clip.
func (fb *FrameBuffer) Fill(r, clip image.Rectangle, c color.RGBA) {
	r = r.Intersect(clip).Intersect(fb.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := (y*fb.W + r.Min.X) * 4
		for x := 0; x < r.Dx(); x++ {
			idx := off + x*4
			fb.Pixels[idx+0] = c.R
			fb.Pixels[idx+1] = c.G
			fb.Pixels[idx+2] = c.B
			fb.Pixels[idx+3] = c.A
		}
	}
}

// Stroke draws a line-wide border just inside r.
func (fb *FrameBuffer) Stroke(r, clip image.Rectangle, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.Fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+line), clip, c)
	fb.Fill(image.Rect(r.Min.X, r.Max.Y-line, r.Max.X, r.Max.Y), clip, c)
	fb.Fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+line, r.Max.Y), clip, c)
	fb.Fill(image.Rect(r.Max.X-line, r.Min.Y, r.Max.X, r.Max.Y), clip, c)
}
