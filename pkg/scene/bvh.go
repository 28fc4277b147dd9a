package scene

import (
	"github.com/taigrr/raycast/pkg/math3d"
)

// leafThreshold is the largest primitive count stored in a single leaf.
const leafThreshold = 8

// bvhNode is a node of the bounding volume hierarchy. Leaves carry
// primitives; inner nodes carry two children.
type bvhNode struct {
	bounds      AABB
	left, right *bvhNode
	prims       []Object
}

// BVH is an oracle backed by a median-split bounding volume hierarchy.
// Compound objects are indexed by their primitives.
type BVH struct {
	root  *bvhNode
	count int
}

// NewBVH builds a hierarchy over objects.
func NewBVH(objects []Object) *BVH {
	var prims []Object
	for _, o := range objects {
		if c, ok := o.(Compound); ok {
			prims = append(prims, c.Primitives()...)
			continue
		}
		prims = append(prims, o)
	}
	if len(prims) == 0 {
		return &BVH{}
	}
	return &BVH{root: buildBVH(prims), count: len(prims)}
}

// PrimitiveCount returns the number of indexed primitives.
func (b *BVH) PrimitiveCount() int {
	return b.count
}

func buildBVH(prims []Object) *bvhNode {
	bounds := prims[0].Bounds()
	for _, p := range prims[1:] {
		bounds = bounds.Union(p.Bounds())
	}

	if len(prims) <= leafThreshold {
		return &bvhNode{bounds: bounds, prims: prims}
	}

	axis := bounds.LongestAxis()
	lo, hi := bounds.Min.Axis(axis), bounds.Max.Axis(axis)
	if hi <= lo {
		return &bvhNode{bounds: bounds, prims: prims}
	}
	split := (lo + hi) * 0.5

	var left, right []Object
	for _, p := range prims {
		if p.Bounds().Center().Axis(axis) < split {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}

	// Degenerate split: everything on one side
	if len(left) == 0 || len(right) == 0 {
		return &bvhNode{bounds: bounds, prims: prims}
	}

	return &bvhNode{
		bounds: bounds,
		left:   buildBVH(left),
		right:  buildBVH(right),
	}
}

// Intersect implements Intersector. All crossings are collected, so every
// node whose box the ray touches is visited.
func (b *BVH) Intersect(ray math3d.Ray) []Hit {
	if b.root == nil {
		return nil
	}
	var hits []Hit
	hits = b.root.collect(ray, hits)
	sortHits(hits)
	return hits
}

func (n *bvhNode) collect(ray math3d.Ray, hits []Hit) []Hit {
	if !n.bounds.Hit(ray, 0, maxDistance) {
		return hits
	}
	if n.prims != nil {
		for _, p := range n.prims {
			hits = p.Intersect(ray, hits)
		}
		return hits
	}
	hits = n.left.collect(ray, hits)
	return n.right.collect(ray, hits)
}
