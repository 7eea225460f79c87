package scaling

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

var (
	ErrDegenerateRoot    = errors.New("scaling: root width and height must be positive")
	ErrStructureMismatch = errors.New("scaling: live tree does not match snapshot")
)

type Options struct {
	// FontTable, when non-empty, replaces the fixed font tiers.
	FontTable *FontTable
	Logger    *slog.Logger
}

// Engine rescales a window's elements relative to the geometry captured when
// the engine was created. An Engine is not safe for concurrent use, and the
// tree must keep the shape it had at capture time.
type Engine struct {
	root     Geometry
	family   string
	snapshot Snapshot
	fonts    *FontTable
	logger   *slog.Logger
}

func New(root Root) (*Engine, error) {
	return NewWithOptions(root, Options{})
}

func NewWithOptions(root Root, opts Options) (*Engine, error) {
	if root == nil {
		return nil, errors.New("scaling: root is nil")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rootGeom, snap := Capture(root)
	if rootGeom.Width <= 0 || rootGeom.Height <= 0 {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrDegenerateRoot, rootGeom.Name, rootGeom.Width, rootGeom.Height)
	}
	logger.Debug("captured layout",
		"root", rootGeom.Name,
		"width", rootGeom.Width,
		"height", rootGeom.Height,
		"groups", snap.Len(),
		"elements", snap.Count())
	return &Engine{
		root:     rootGeom,
		family:   root.Font().Family,
		snapshot: snap,
		fonts:    opts.FontTable,
		logger:   logger,
	}, nil
}

func (e *Engine) RootGeometry() Geometry { return e.root }

func (e *Engine) Snapshot() Snapshot { return e.snapshot }

// FontSize returns the font size used for a root of the given width.
func (e *Engine) FontSize(width int) int {
	if e.fonts != nil {
		if size, ok := e.fonts.Lookup(width); ok {
			return size
		}
	}
	return SelectFontSize(width)
}

// Factors returns the width and height scale factors for a root currently
// sized w x h.
func (e *Engine) Factors(w, h int) (float64, float64) {
	return float64(w) / float64(e.root.Width), float64(h) / float64(e.root.Height)
}

type binding struct {
	el  Element
	rec Geometry
}

// Scale applies the captured geometry, multiplied by the ratio between root's
// current size and its captured size, to every element below root, and sets
// each element and menu item to the font size for root's current width.
//
// The live tree is paired with the snapshot before anything is written. If
// the shapes differ, Scale returns ErrStructureMismatch and leaves the tree
// untouched.
func (e *Engine) Scale(root Root) error {
	cur := root.Geometry()
	bindings, err := e.bind(root)
	if err != nil {
		return err
	}

	font := Font{Family: e.family, Size: e.FontSize(cur.Width)}
	ws, hs := e.Factors(cur.Width, cur.Height)
	for _, b := range bindings {
		b.el.SetGeometry(Geometry{
			Name:   b.rec.Name,
			Top:    scaleInt(b.rec.Top, hs),
			Left:   scaleInt(b.rec.Left, ws),
			Width:  scaleInt(b.rec.Width, ws),
			Height: scaleInt(b.rec.Height, hs),
		})
		b.el.SetFont(font)
		if m, ok := b.el.(Menu); ok {
			for _, item := range m.Items() {
				item.SetFont(font)
			}
		}
	}
	return nil
}

func (e *Engine) bind(root Root) ([]binding, error) {
	children := root.Children()
	if len(children) != e.snapshot.Len() {
		return nil, fmt.Errorf("%w: root has %d children, snapshot has %d groups",
			ErrStructureMismatch, len(children), e.snapshot.Len())
	}
	out := make([]binding, 0, e.snapshot.Count())
	for i, child := range children {
		group := e.snapshot.groups[i]
		live := flatten(child)
		if len(live) != len(group) {
			return nil, fmt.Errorf("%w: group %d (%s) has %d elements, snapshot has %d",
				ErrStructureMismatch, i, child.Name(), len(live), len(group))
		}
		for j, el := range live {
			out = append(out, binding{el: el, rec: group[j]})
		}
	}
	return out, nil
}

// scaleInt rounds half to even so 2.5 and 3.5 land on 2 and 4.
func scaleInt(v int, factor float64) int {
	return int(math.RoundToEven(float64(v) * factor))
}
