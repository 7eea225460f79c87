package ui

import (
	"image"
	"testing"

	"formscale/internal/render"
	"formscale/internal/widget"
	"formscale/pkg/scaling"
)

type fixedMeasure struct{}

func (fixedMeasure) Measure(size int, s string) int { return len(s) * size / 2 }

func testWindow() (*widget.Window, *widget.TabControl) {
	tabs := widget.NewTabControl("tabs", scaling.Geometry{Top: 30, Left: 200, Width: 200, Height: 150})
	tabs.AddPage("One", widget.NewControl(widget.KindButton, "b1", "Go", scaling.Geometry{Top: 5, Left: 5, Width: 50, Height: 20}))
	tabs.AddPage("Two", widget.NewControl(widget.KindLabel, "l2", "Hidden", scaling.Geometry{Top: 5, Left: 5, Width: 50, Height: 20}))
	font := scaling.Font{Family: "Go", Size: 8}
	win := widget.NewWindow("w", "w", 400, 300, font,
		widget.NewMenuStrip("menu", scaling.Geometry{Width: 400, Height: 24}, "File", "Help"),
		widget.NewPanel("p", scaling.Geometry{Top: 30, Left: 10, Width: 180, Height: 200},
			widget.NewControl(widget.KindCheckBox, "c", "Check", scaling.Geometry{Top: 10, Left: 10, Width: 100, Height: 20})),
		tabs,
	)
	widget.Walk(win, func(w widget.Widget) { w.SetFont(font) })
	for _, it := range win.Widgets()[0].(*widget.MenuStrip).MenuItems() {
		it.SetFont(font)
	}
	return win, tabs
}

func TestVisitOnlyEntersSelectedPage(t *testing.T) {
	win, tabs := testWindow()
	seen := map[string]image.Rectangle{}
	Visit(win, func(w widget.Widget, r, _ image.Rectangle) { seen[w.Name()] = r })

	if _, ok := seen["l2"]; ok {
		t.Fatalf("hidden page content was visited")
	}
	want := image.Rect(207, 59, 257, 79) // tabs origin + client origin (2, 24) + (5, 5)
	if seen["b1"] != want {
		t.Fatalf("unexpected b1 rect %v, want %v", seen["b1"], want)
	}
	if seen["c"] != image.Rect(20, 40, 120, 60) {
		t.Fatalf("unexpected nested rect %v", seen["c"])
	}

	tabs.Select(1)
	seen = map[string]image.Rectangle{}
	Visit(win, func(w widget.Widget, r, _ image.Rectangle) { seen[w.Name()] = r })
	if _, ok := seen["l2"]; !ok {
		t.Fatalf("selected page content not visited")
	}
}

func TestDrawFormPaintsAndCollectsLabels(t *testing.T) {
	win, _ := testWindow()
	theme := DefaultTheme()
	fb := render.NewFrameBuffer(400, 300)
	labels := DrawForm(fb, win, theme, fixedMeasure{})

	if fb.At(5, 5) != theme.MenuBar {
		t.Fatalf("menu bar not painted")
	}
	if fb.At(100, 150) != theme.Panel {
		t.Fatalf("panel not painted")
	}
	texts := map[string]bool{}
	for _, l := range labels {
		texts[l.Text] = true
	}
	for _, want := range []string{"File", "Help", "Check", "One", "Two", "Go"} {
		if !texts[want] {
			t.Fatalf("missing label %q in %v", want, labels)
		}
	}
	if texts["Hidden"] {
		t.Fatalf("label from hidden page was collected")
	}
}

func TestMenuItemRectsFollowFont(t *testing.T) {
	m := widget.NewMenuStrip("m", scaling.Geometry{Width: 400, Height: 24}, "File", "Edit")
	for _, it := range m.MenuItems() {
		it.SetFont(scaling.Font{Size: 10})
	}
	rects := MenuItemRects(m, image.Rect(0, 0, 400, 24), fixedMeasure{})
	if rects[0] != image.Rect(4, 0, 40, 24) || rects[1].Min.X != 40 {
		t.Fatalf("unexpected item rects %v", rects)
	}
}

func TestTabAt(t *testing.T) {
	win, tabs := testWindow()
	hit, i, ok := TabAt(win, image.Pt(350, 35))
	if !ok || hit != tabs || i != 1 {
		t.Fatalf("expected second header, got %v %d %v", hit, i, ok)
	}
	if _, _, ok := TabAt(win, image.Pt(5, 5)); ok {
		t.Fatalf("unexpected hit on menu bar")
	}
}
