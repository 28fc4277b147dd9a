package scene

import (
	"math"
	"slices"

	"github.com/taigrr/raycast/pkg/math3d"
)

// maxDistance is the far limit of every oracle query.
var maxDistance = math.Inf(1)

// Intersector is the intersection oracle: given a ray it returns every
// surface crossing, nearest first. Implementations must be safe for
// concurrent use and must not modify the scene.
type Intersector interface {
	Intersect(ray math3d.Ray) []Hit
}

// Nearest returns the first hit of an oracle query.
func Nearest(o Intersector, ray math3d.Ray) (Hit, bool) {
	hits := o.Intersect(ray)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// sortHits orders hits nearest first. Equal distances keep discovery order.
func sortHits(hits []Hit) {
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})
}

// List is a brute-force oracle that tests every object.
type List struct {
	objects []Object
}

// NewList creates a brute-force oracle over objects.
func NewList(objects []Object) *List {
	return &List{objects: slices.Clone(objects)}
}

// Intersect implements Intersector.
func (l *List) Intersect(ray math3d.Ray) []Hit {
	var hits []Hit
	for _, o := range l.objects {
		hits = o.Intersect(ray, hits)
	}
	sortHits(hits)
	return hits
}
