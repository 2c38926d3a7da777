package scene

import (
	"sort"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/geometry"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/material"
)

// bvhNode is a node in the bounding volume hierarchy. Leaf nodes hold
// a small group of shapes for linear search; internal nodes hold children.
type bvhNode struct {
	boundingBox core.AABB
	left, right *bvhNode
	shapes      []geometry.Shape // non-nil only for leaves
}

// bvh accelerates nearest-hit queries over the scene's primitives
type bvh struct {
	root *bvhNode
}

// Leaf threshold: groups this small are stored in a leaf node
const leafThreshold = 8

// newBVH constructs a BVH from a slice of shapes
func newBVH(shapes []geometry.Shape) *bvh {
	if len(shapes) == 0 {
		return &bvh{}
	}

	// Copy so sorting during the build never mutates the caller's slice
	shapesCopy := make([]geometry.Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &bvh{root: buildBVH(shapesCopy)}
}

// buildBVH recursively splits shapes at the median of the longest axis
func buildBVH(shapes []geometry.Shape) *bvhNode {
	boundingBox := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		boundingBox = boundingBox.Union(shape.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{boundingBox: boundingBox, shapes: shapes}
	}

	axis := boundingBox.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		centerI := shapes[i].BoundingBox().Center()
		centerJ := shapes[j].BoundingBox().Center()
		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		default:
			return centerI.Z < centerJ.Z
		}
	})

	mid := len(shapes) / 2
	return &bvhNode{
		boundingBox: boundingBox,
		left:        buildBVH(shapes[:mid]),
		right:       buildBVH(shapes[mid:]),
	}
}

// Hit returns the nearest intersection in the hierarchy within [tMin, tMax]
func (b *bvh) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if b.root == nil {
		return nil, false
	}
	return hitNode(b.root, ray, tMin, tMax)
}

func hitNode(node *bvhNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.boundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.shapes != nil {
		var closestHit *material.HitRecord
		closestSoFar := tMax
		for _, shape := range node.shapes {
			if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
				closestSoFar = hit.T
				closestHit = hit
			}
		}
		return closestHit, closestHit != nil
	}

	var closestHit *material.HitRecord
	closestSoFar := tMax
	if hit, isHit := hitNode(node.left, ray, tMin, closestSoFar); isHit {
		closestSoFar = hit.T
		closestHit = hit
	}
	if hit, isHit := hitNode(node.right, ray, tMin, closestSoFar); isHit {
		closestHit = hit
	}

	return closestHit, closestHit != nil
}
