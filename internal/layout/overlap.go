// Package layout checks where climate wheels would collide on the map.
package layout

import (
	"math"
	"sort"

	"github.com/couchcryptid/climate-wheel-map/internal/domain"
	"github.com/dhconnelly/rtreego"
)

const (
	dimensions  = 2
	minChildren = 4
	maxChildren = 16
)

// Overlap is a pair of locations whose wheels intersect.
type Overlap struct {
	A, B     string
	Distance float64 // map degrees between centres
}

// wheel wraps a location's square footprint for R-tree indexing.
type wheel struct {
	index int
	loc   domain.Location
	rect  *rtreego.Rect
}

func (w *wheel) Bounds() *rtreego.Rect {
	return w.rect
}

// FindOverlaps returns every pair of wheels of the given radius whose discs
// intersect. The R-tree prunes on bounding squares; the exact disc test is
// done on the candidates. Locations must have coordinates.
func FindOverlaps(locations []domain.Location, radius float64) ([]Overlap, error) {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	wheels := make([]*wheel, 0, len(locations))
	for i, loc := range locations {
		r, err := footprint(*loc.Geo, radius)
		if err != nil {
			return nil, err
		}
		w := &wheel{index: i, loc: loc, rect: r}
		tree.Insert(w)
		wheels = append(wheels, w)
	}

	var out []Overlap
	for _, w := range wheels {
		for _, hit := range tree.SearchIntersect(w.rect) {
			other := hit.(*wheel)
			// Each pair is reported once, from its lower-indexed member.
			if other.index <= w.index {
				continue
			}
			d := distance(*w.loc.Geo, *other.loc.Geo)
			if d < 2*radius {
				out = append(out, Overlap{A: w.loc.Name, B: other.loc.Name, Distance: d})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out, nil
}

func footprint(g domain.Geo, radius float64) (*rtreego.Rect, error) {
	return rtreego.NewRect(rtreego.Point{g.Lon - radius, g.Lat - radius}, []float64{2 * radius, 2 * radius})
}

func distance(a, b domain.Geo) float64 {
	return math.Hypot(a.Lon-b.Lon, a.Lat-b.Lat)
}
