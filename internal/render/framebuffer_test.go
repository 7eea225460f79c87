package render

import (
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	red   = color.RGBA{0xFF, 0, 0, 0xFF}
)

func TestFillClipsToBufferAndClip(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.Clear(white)
	fb.Fill(image.Rect(-5, -5, 20, 4), image.Rect(0, 0, 6, 10), red)

	if fb.At(5, 3) != red {
		t.Fatalf("expected red inside fill")
	}
	if fb.At(6, 3) != white {
		t.Fatalf("fill escaped the clip rect")
	}
	if fb.At(0, 4) != white {
		t.Fatalf("fill escaped its own rect")
	}
}

func TestStrokeLeavesInteriorUntouched(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	fb.Clear(white)
	fb.Stroke(image.Rect(1, 1, 7, 7), fb.Bounds(), 1, red)

	if fb.At(1, 1) != red || fb.At(6, 6) != red || fb.At(6, 1) != red {
		t.Fatalf("expected border pixels")
	}
	if fb.At(3, 3) != white {
		t.Fatalf("interior was painted")
	}
}

func TestResizeReusesBacking(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	before := &fb.Pixels[0]
	fb.Resize(10, 5)
	if fb.W != 10 || fb.H != 5 || len(fb.Pixels) != 200 {
		t.Fatalf("unexpected size after shrink: %dx%d %d", fb.W, fb.H, len(fb.Pixels))
	}
	if &fb.Pixels[0] != before {
		t.Fatalf("expected shrink to reuse the buffer")
	}
	fb.Resize(0, -3)
	if fb.W != 1 || fb.H != 1 {
		t.Fatalf("expected 1x1 minimum, got %dx%d", fb.W, fb.H)
	}
}
