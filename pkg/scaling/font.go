package scaling

import "sort"

// Fixed font sizes, selected by the current width of the root window.
const (
	TierSmall       = 8
	TierSmallMedium = 12
	TierMediumLarge = 18
	TierLarge       = 25
)

// SelectFontSize maps a root width to one of the four fixed tiers. Note the
// bands are asymmetric: 1920 is still small-medium, 2300 is already large.
func SelectFontSize(width int) int {
	switch {
	case width < 1280:
		return TierSmall
	case width <= 1920:
		return TierSmallMedium
	case width < 2300:
		return TierMediumLarge
	default:
		return TierLarge
	}
}

// FontSize pairs a window width with the font size to use from that width up.
type FontSize struct {
	Width int
	Size  int
}

// FontTable is a set of FontSize entries keyed by width. The zero value is
// ready to use.
type FontTable struct {
	entries []FontSize
}

func NewFontTable(sizes ...FontSize) *FontTable {
	t := &FontTable{}
	t.AddAll(sizes...)
	return t
}

// Add stores a width/size pair. Adding a width that is already present is a
// no-op, the first size stored for a width wins.
func (t *FontTable) Add(width, size int) {
	for _, e := range t.entries {
		if e.Width == width {
			return
		}
	}
	t.entries = append(t.entries, FontSize{Width: width, Size: size})
	sort.SliceStable(t.entries, func(i, j int) bool { return t.entries[i].Width < t.entries[j].Width })
}

func (t *FontTable) AddAll(sizes ...FontSize) {
	for _, s := range sizes {
		t.Add(s.Width, s.Size)
	}
}

func (t *FontTable) Clear() { t.entries = t.entries[:0] }

func (t *FontTable) Len() int { return len(t.entries) }

// Entries returns the stored pairs sorted ascending by width.
func (t *FontTable) Entries() []FontSize {
	return append([]FontSize(nil), t.entries...)
}

// Lookup returns the size of the entry with the greatest width not above
// width. Widths below every entry get the smallest entry. It reports false
// only when the table is empty.
func (t *FontTable) Lookup(width int) (int, bool) {
	if len(t.entries) == 0 {
		return 0, false
	}
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Width > width })
	if i == 0 {
		return t.entries[0].Size, true
	}
	return t.entries[i-1].Size, true
}
