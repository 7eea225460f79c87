package scaling

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Geometry is the position and size of an element, relative to its parent.
type Geometry struct {
	Name   string
	Top    int
	Left   int
	Width  int
	Height int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%s(top=%d left=%d w=%d h=%d)", g.Name, g.Top, g.Left, g.Width, g.Height)
}

// Font is a font family plus a point size.
type Font struct {
	Family string
	Size   int
}

// Snapshot is the geometry recorded by Capture. It holds one group per direct
// child of the root; each group lists that child and all of its descendants
// in pre-order. A Snapshot is never modified after Capture returns it.
type Snapshot struct {
	groups [][]Geometry
}

// Len returns the number of groups, one per direct child of the root.
func (s Snapshot) Len() int { return len(s.groups) }

// Count returns the total number of recorded elements.
func (s Snapshot) Count() int {
	n := 0
	for _, g := range s.groups {
		n += len(g)
	}
	return n
}

// Group returns a copy of group i.
func (s Snapshot) Group(i int) []Geometry {
	return append([]Geometry(nil), s.groups[i]...)
}

// Groups returns a deep copy of the nested records.
func (s Snapshot) Groups() [][]Geometry {
	out := make([][]Geometry, len(s.groups))
	for i := range s.groups {
		out[i] = s.Group(i)
	}
	return out
}

// Digest returns a hex blake2b-256 digest of the snapshot's shape and values.
// Two snapshots with equal digests record the same tree.
func (s Snapshot) Digest() string {
	buf := make([]byte, 0, 64+s.Count()*24)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s.groups)))
	for _, group := range s.groups {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(group)))
		for _, g := range group {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(len(g.Name)))
			buf = append(buf, g.Name...)
			for _, v := range [4]int{g.Top, g.Left, g.Width, g.Height} {
				buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
			}
		}
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
