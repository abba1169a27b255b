// Package images - Canonical box geometry and image dimensions.
package images

import "fmt"

// Rect is the canonical bounding box: absolute pixel corners.
//
// XMax >= XMin and YMax >= YMin is expected but not enforced. Inverted boxes
// can come out of a conversion (wrapped COCO sums, odd normalized input) and
// are tolerated by CalculateIoU as non-overlapping.
type Rect struct {
	XMin uint32 `json:"x_min" yaml:"x_min"`
	YMin uint32 `json:"y_min" yaml:"y_min"`
	XMax uint32 `json:"x_max" yaml:"x_max"`
	YMax uint32 `json:"y_max" yaml:"y_max"`
}

// Areas holds the areas of the two boxes handed to CalculateIoU, in pixels.
// It is only produced when the boxes overlap.
type Areas struct {
	Predicted uint64 `json:"predicted" yaml:"predicted"`
	Truth     uint64 `json:"truth"     yaml:"truth"`
}

// String formats the box for display.
//
// Example:
//
//	Rect{XMin: 10, YMin: 20, XMax: 50, YMax: 100}.String()
//	// Output: (x_min: 10, y_min: 20, x_max: 50, y_max: 100)
func (r Rect) String() string {
	return fmt.Sprintf("(x_min: %d, y_min: %d, x_max: %d, y_max: %d)", r.XMin, r.YMin, r.XMax, r.YMax)
}

// Width returns XMax - XMin. Callers must check Inverted first.
func (r Rect) Width() uint32 {
	return r.XMax - r.XMin
}

// Height returns YMax - YMin. Callers must check Inverted first.
func (r Rect) Height() uint32 {
	return r.YMax - r.YMin
}

// Inverted reports whether a max corner lies before its min corner.
func (r Rect) Inverted() bool {
	return r.XMax < r.XMin || r.YMax < r.YMin
}

// Area returns the area of the box in pixels, or 0 for an inverted box.
func (r Rect) Area() uint64 {
	if r.Inverted() {
		return 0
	}
	return uint64(r.Width()) * uint64(r.Height())
}

// Intersect returns the intersection rectangle of r and o and whether the two
// boxes overlap.
//
// Boxes that only touch along an edge are on the overlapping path: their
// intersection is a zero-width or zero-height rectangle, not an empty one.
func Intersect(r, o Rect) (Rect, bool) {
	inter := Rect{
		XMin: max(r.XMin, o.XMin),
		YMin: max(r.YMin, o.YMin),
		XMax: min(r.XMax, o.XMax),
		YMax: min(r.YMax, o.YMax),
	}
	return inter, !inter.Inverted()
}

// CalculateIoU computes the Intersection over Union of two canonical boxes.
//
// IoU is the area the two boxes share divided by the area they cover together:
//
//	IoU = Area(A ∩ B) / (Area(A) + Area(B) - Area(A ∩ B))
//
// 1.0 means the boxes are identical, 0.0 means they do not overlap at all.
//
// The intersection is bounded by the larger of the two min corners and the
// smaller of the two max corners. When that rectangle is inverted the boxes
// are disjoint: the IoU is 0.0 and the per-box areas are not computed, so the
// returned *Areas is nil. An inverted input box always lands here, because its
// own max corner is below its min corner.
//
// On the overlapping path the areas are computed in uint64 and the ratio in
// float64. If the union is empty (two zero-area boxes touching at a point or
// along a line) the IoU is defined as 0.0.
//
// Arguments:
//   - r: The predicted box.
//   - o: The ground truth box.
//
// Returns:
//   - float64: The IoU in [0.0, 1.0].
//   - *Areas: The areas of r and o, or nil when the boxes do not overlap.
//
// Example:
//
//	a := Rect{XMin: 0, YMin: 0, XMax: 10, YMax: 10}
//	b := Rect{XMin: 5, YMin: 5, XMax: 15, YMax: 15}
//	iou, areas := CalculateIoU(a, b) // 25 / 175 ≈ 0.142857, areas = {100, 100}
func CalculateIoU(r, o Rect) (float64, *Areas) {
	inter, ok := Intersect(r, o)
	if !ok {
		return 0.0, nil
	}

	interArea := inter.Area()
	areas := &Areas{
		Predicted: r.Area(),
		Truth:     o.Area(),
	}

	union := areas.Predicted + areas.Truth - interArea
	if union == 0 {
		return 0.0, areas
	}

	return float64(interArea) / float64(union), areas
}
