// Package form loads form definitions from YAML and builds widget trees from
// them.
package form

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"formscale/internal/widget"
	"formscale/pkg/scaling"
)

var (
	ErrInvalidForm        = errors.New("form: invalid definition")
	ErrUnknownControlType = errors.New("form: unknown control type")
)

// Form is the top-level form definition.
type Form struct {
	Name      string           `yaml:"name"`
	Title     string           `yaml:"title"`
	Width     int              `yaml:"width"`
	Height    int              `yaml:"height"`
	Font      FontConfig       `yaml:"font"`
	FontSizes []FontSizeConfig `yaml:"font_sizes"`
	Controls  []ControlConfig  `yaml:"controls"`
}

type FontConfig struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
}

// FontSizeConfig maps a window width to a font size. When a form lists any,
// they replace the built-in font tiers.
type FontSizeConfig struct {
	Width int `yaml:"width"`
	Size  int `yaml:"size"`
}

// ControlConfig describes one control. Controls nest under panels and groups,
// pages under tabs, items under menus.
type ControlConfig struct {
	Type     string          `yaml:"type"`
	Name     string          `yaml:"name"`
	Text     string          `yaml:"text"`
	Top      int             `yaml:"top"`
	Left     int             `yaml:"left"`
	Width    int             `yaml:"width"`
	Height   int             `yaml:"height"`
	Checked  bool            `yaml:"checked"`
	Controls []ControlConfig `yaml:"controls"`
	Pages    []PageConfig    `yaml:"pages"`
	Items    []string        `yaml:"items"`
}

type PageConfig struct {
	Title    string          `yaml:"title"`
	Controls []ControlConfig `yaml:"controls"`
}

// LoadFile reads a YAML form definition.
func LoadFile(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes, defaults and validates a form definition.
func Parse(data []byte) (*Form, error) {
	var f Form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Form) applyDefaults() {
	if f.Name == "" {
		f.Name = "form"
	}
	if f.Title == "" {
		f.Title = f.Name
	}
	if f.Width == 0 && f.Height == 0 {
		f.Width, f.Height = 800, 600
	}
	if f.Font.Family == "" {
		f.Font.Family = "Go"
	}
	if f.Font.Size <= 0 {
		f.Font.Size = 9
	}
	taken := map[string]bool{f.Name: true}
	eachControl(f.Controls, func(c *ControlConfig) {
		if c.Name != "" {
			taken[c.Name] = true
		}
	})
	seq := map[string]int{}
	eachControl(f.Controls, func(c *ControlConfig) {
		if c.Name != "" {
			return
		}
		for {
			seq[c.Type]++
			name := fmt.Sprintf("%s%d", c.Type, seq[c.Type])
			if !taken[name] {
				c.Name = name
				taken[name] = true
				return
			}
		}
	})
}

// eachControl visits every control in document order, page contents
// included.
func eachControl(cs []ControlConfig, fn func(*ControlConfig)) {
	for i := range cs {
		c := &cs[i]
		fn(c)
		eachControl(c.Controls, fn)
		for j := range c.Pages {
			eachControl(c.Pages[j].Controls, fn)
		}
	}
}

// Validate checks the form for problems Build would trip over or the scaling
// engine would reject.
func (f *Form) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidForm, f.Width, f.Height)
	}
	for _, fs := range f.FontSizes {
		if fs.Width < 0 || fs.Size <= 0 {
			return fmt.Errorf("%w: font size %d for width %d", ErrInvalidForm, fs.Size, fs.Width)
		}
	}
	seen := map[string]bool{f.Name: true}
	return validateControls(f.Controls, f.Name, seen)
}

func validateControls(cs []ControlConfig, path string, seen map[string]bool) error {
	for _, c := range cs {
		p := path + "/" + c.Name
		kind, ok := widget.ParseKind(c.Type)
		if !ok {
			return fmt.Errorf("%w %q at %s", ErrUnknownControlType, c.Type, p)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate name at %s", ErrInvalidForm, p)
		}
		seen[c.Name] = true
		if c.Width < 0 || c.Height < 0 {
			return fmt.Errorf("%w: negative size at %s", ErrInvalidForm, p)
		}
		if len(c.Controls) > 0 && kind != widget.KindPanel && kind != widget.KindGroup {
			return fmt.Errorf("%w: %s cannot hold controls at %s", ErrInvalidForm, kind, p)
		}
		if len(c.Pages) > 0 && kind != widget.KindTabs {
			return fmt.Errorf("%w: %s cannot hold pages at %s", ErrInvalidForm, kind, p)
		}
		if len(c.Items) > 0 && kind != widget.KindMenu {
			return fmt.Errorf("%w: %s cannot hold items at %s", ErrInvalidForm, kind, p)
		}
		if err := validateControls(c.Controls, p, seen); err != nil {
			return err
		}
		for _, pg := range c.Pages {
			if err := validateControls(pg.Controls, p+"/"+pg.Title, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// Build creates the widget tree. The font table is nil unless the form lists
// font sizes.
func (f *Form) Build() (*widget.Window, *scaling.FontTable) {
	font := scaling.Font{Family: f.Font.Family, Size: f.Font.Size}
	win := widget.NewWindow(f.Name, f.Title, f.Width, f.Height, font, buildControls(f.Controls, font)...)

	var table *scaling.FontTable
	if len(f.FontSizes) > 0 {
		table = scaling.NewFontTable()
		for _, fs := range f.FontSizes {
			table.Add(fs.Width, fs.Size)
		}
	}
	return win, table
}

func buildControls(cs []ControlConfig, font scaling.Font) []widget.Widget {
	out := make([]widget.Widget, 0, len(cs))
	for _, c := range cs {
		out = append(out, buildControl(c, font))
	}
	return out
}

func buildControl(c ControlConfig, font scaling.Font) widget.Widget {
	g := scaling.Geometry{Top: c.Top, Left: c.Left, Width: c.Width, Height: c.Height}
	kind, _ := widget.ParseKind(c.Type)

	var w widget.Widget
	switch kind {
	case widget.KindPanel:
		w = widget.NewPanel(c.Name, g, buildControls(c.Controls, font)...)
	case widget.KindGroup:
		w = widget.NewGroup(c.Name, c.Text, g, buildControls(c.Controls, font)...)
	case widget.KindTabs:
		tabs := widget.NewTabControl(c.Name, g)
		for _, pg := range c.Pages {
			tabs.AddPage(pg.Title, buildControls(pg.Controls, font)...)
		}
		w = tabs
	case widget.KindMenu:
		menu := widget.NewMenuStrip(c.Name, g, c.Items...)
		for _, it := range menu.MenuItems() {
			it.SetFont(font)
		}
		w = menu
	default:
		ctl := widget.NewControl(kind, c.Name, c.Text, g)
		ctl.Checked = c.Checked
		w = ctl
	}
	w.SetFont(font)
	return w
}
