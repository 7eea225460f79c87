package form

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"formscale/internal/widget"
	"formscale/pkg/scaling"
)

const settingsForm = `
name: settings
title: Settings
width: 800
height: 600
font:
  family: Go
  size: 9
font_sizes:
  - {width: 1600, size: 16}
  - {width: 0, size: 9}
  - {width: 1600, size: 99}
controls:
  - type: menu
    width: 800
    height: 24
    items: [File, View]
  - type: panel
    name: body
    top: 30
    left: 10
    width: 380
    height: 500
    controls:
      - {type: button, text: Apply, top: 10, left: 10, width: 75, height: 23}
      - {type: button, text: Cancel, top: 10, left: 95, width: 75, height: 23}
  - type: tabs
    name: pages
    top: 30
    left: 400
    width: 390
    height: 500
    pages:
      - title: General
        controls:
          - {type: checkbox, name: autosave, text: Autosave, checked: true, top: 8, left: 8, width: 120, height: 20}
      - title: Empty
`

func TestParseAppliesDefaultsAndBuilds(t *testing.T) {
	f, err := Parse([]byte(settingsForm))
	if err != nil {
		t.Fatal(err)
	}
	if f.Controls[0].Name != "menu1" || f.Controls[1].Controls[1].Name != "button2" {
		t.Fatalf("unexpected default names: %q %q", f.Controls[0].Name, f.Controls[1].Controls[1].Name)
	}

	win, table := f.Build()
	if win.Title != "Settings" || win.Count() != 6 {
		t.Fatalf("unexpected window %q with %d widgets", win.Title, win.Count())
	}
	auto, ok := widget.Find(win, "autosave").(*widget.Control)
	if !ok || !auto.Checked || auto.Text() != "Autosave" {
		t.Fatalf("autosave checkbox not built: %#v", auto)
	}
	if table == nil || table.Len() != 2 {
		t.Fatalf("expected a two-entry font table, got %v", table)
	}
	if size, _ := table.Lookup(1700); size != 16 {
		t.Fatalf("first size for a width must win, got %d", size)
	}
}

func TestBuiltFormScales(t *testing.T) {
	f, err := Parse([]byte(settingsForm))
	if err != nil {
		t.Fatal(err)
	}
	win, table := f.Build()
	e, err := scaling.NewWithOptions(win, scaling.Options{FontTable: table})
	if err != nil {
		t.Fatal(err)
	}
	if e.Snapshot().Len() != 3 || e.Snapshot().Count() != 6 {
		t.Fatalf("unexpected snapshot shape %d/%d", e.Snapshot().Len(), e.Snapshot().Count())
	}
	win.SetSize(1600, 1200)
	if err := e.Scale(win); err != nil {
		t.Fatal(err)
	}
	auto := widget.Find(win, "autosave")
	if g := auto.Geometry(); g.Top != 16 || g.Width != 240 {
		t.Fatalf("unexpected autosave geometry: %+v", g)
	}
	if auto.Font().Size != 16 {
		t.Fatalf("expected font size from table, got %d", auto.Font().Size)
	}
}

func TestParseDefaultNamesSkipExplicitNames(t *testing.T) {
	src := "controls:\n" +
		"  - {type: button, text: A}\n" +
		"  - {type: button, name: button1, text: B}\n" +
		"  - {type: button, text: C}\n"
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	got := []string{f.Controls[0].Name, f.Controls[1].Name, f.Controls[2].Name}
	if got[0] != "button2" || got[1] != "button1" || got[2] != "button3" {
		t.Fatalf("unexpected names %v", got)
	}
}

func TestParseDefaultsWindowSize(t *testing.T) {
	f, err := Parse([]byte("controls: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 800 || f.Height != 600 || f.Name != "form" || f.Font.Size != 9 {
		t.Fatalf("unexpected defaults: %+v", f)
	}
}

func TestParseRejectsBadForms(t *testing.T) {
	cases := map[string]error{
		"width: 0\nheight: 300\n":                                              ErrInvalidForm,
		"controls:\n  - {type: combobox}\n":                                    ErrUnknownControlType,
		"controls:\n  - {type: button, name: a}\n  - {type: label, name: a}\n": ErrInvalidForm,
		"controls:\n  - {type: button, controls: [{type: label}]}\n":           ErrInvalidForm,
		"controls:\n  - {type: panel, items: [File]}\n":                        ErrInvalidForm,
		"controls:\n  - {type: menu, pages: [{title: x}]}\n":                   ErrInvalidForm,
		"controls:\n  - {type: label, width: -4}\n":                            ErrInvalidForm,
		"font_sizes:\n  - {width: 100, size: 0}\n":                             ErrInvalidForm,
	}
	for src, want := range cases {
		if _, err := Parse([]byte(src)); !errors.Is(err, want) {
			t.Fatalf("%q: expected %v, got %v", src, want, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(settingsForm), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "settings" {
		t.Fatalf("unexpected name %q", f.Name)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDemoFormBuilds(t *testing.T) {
	win, table := Demo().Build()
	if table != nil {
		t.Fatalf("demo form uses the fixed font tiers")
	}
	if widget.Find(win, "notes") == nil || widget.Find(win, "export") == nil {
		t.Fatalf("demo form is missing tab page contents")
	}
	if _, err := scaling.New(win); err != nil {
		t.Fatal(err)
	}
}
