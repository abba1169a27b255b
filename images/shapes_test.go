package images

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIoU_Correctness validates the IoU implementation against known test cases
func TestIoU_Correctness(t *testing.T) {
	tests := []struct {
		name      string
		r1        Rect
		r2        Rect
		expected  float64
		epsilon   float64
		wantAreas *Areas
	}{
		{
			name:      "Identical rectangles",
			r1:        Rect{0, 0, 10, 10},
			r2:        Rect{0, 0, 10, 10},
			expected:  1.0,
			wantAreas: &Areas{Predicted: 100, Truth: 100},
		},
		{
			name:     "No overlap",
			r1:       Rect{0, 0, 10, 10},
			r2:       Rect{20, 20, 30, 30},
			expected: 0.0,
		},
		{
			name:      "Touching edges",
			r1:        Rect{0, 0, 100, 100},
			r2:        Rect{100, 0, 200, 100},
			expected:  0.0,
			wantAreas: &Areas{Predicted: 10000, Truth: 10000},
		},
		{
			name:      "Partial overlap",
			r1:        Rect{0, 0, 10, 10},
			r2:        Rect{5, 5, 15, 15},
			expected:  25.0 / 175.0, // intersection=[5,5,10,10]=25, union=100+100-25=175
			epsilon:   1e-12,
			wantAreas: &Areas{Predicted: 100, Truth: 100},
		},
		{
			name:      "Small overlap",
			r1:        Rect{0, 0, 100, 100},
			r2:        Rect{90, 90, 190, 190},
			expected:  100.0 / 19900.0,
			epsilon:   1e-12,
			wantAreas: &Areas{Predicted: 10000, Truth: 10000},
		},
		{
			name:      "One inside other",
			r1:        Rect{0, 0, 100, 100},
			r2:        Rect{25, 25, 75, 75},
			expected:  0.25,
			wantAreas: &Areas{Predicted: 10000, Truth: 2500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, areas := CalculateIoU(tt.r1, tt.r2)
			assert.InDelta(t, tt.expected, result, tt.epsilon)
			assert.Equal(t, tt.wantAreas, areas)

			// IoU(A, B) == IoU(B, A)
			reverse, _ := CalculateIoU(tt.r2, tt.r1)
			assert.InDelta(t, result, reverse, 1e-12, "IoU not symmetric")
		})
	}
}

// TestIoU_ExactValues checks the cases where the ratio must be exact, not approximate.
func TestIoU_ExactValues(t *testing.T) {
	box := Rect{XMin: 0, YMin: 0, XMax: 10, YMax: 10}

	iou, areas := CalculateIoU(box, box)
	assert.Equal(t, 1.0, iou)
	require.NotNil(t, areas)

	iou, areas = CalculateIoU(box, Rect{XMin: 20, YMin: 20, XMax: 30, YMax: 30})
	assert.Equal(t, 0.0, iou)
	assert.Nil(t, areas, "areas are only reported for overlapping boxes")
}

// TestIoU_vs_ImageRectangle compares our implementation against image.Rectangle
func TestIoU_vs_ImageRectangle(t *testing.T) {
	testCases := []struct {
		name string
		r1   Rect
		r2   Rect
	}{
		{"No overlap", Rect{0, 0, 100, 100}, Rect{200, 200, 300, 300}},
		{"Partial overlap", Rect{0, 0, 100, 100}, Rect{50, 50, 150, 150}},
		{"Full overlap", Rect{50, 50, 150, 150}, Rect{50, 50, 150, 150}},
		{"One inside other", Rect{0, 0, 100, 100}, Rect{25, 25, 75, 75}},
		{"Large boxes", Rect{0, 0, 1920, 1080}, Rect{960, 540, 1920, 1080}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			customResult, _ := CalculateIoU(tc.r1, tc.r2)

			ir1 := image.Rect(int(tc.r1.XMin), int(tc.r1.YMin), int(tc.r1.XMax), int(tc.r1.YMax))
			ir2 := image.Rect(int(tc.r2.XMin), int(tc.r2.YMin), int(tc.r2.XMax), int(tc.r2.YMax))
			imageResult := imageRectangleIoU(ir1, ir2)

			assert.InDelta(t, imageResult, customResult, 1e-9)
		})
	}
}

// imageRectangleIoU implements IoU using Go's standard library image.Rectangle
func imageRectangleIoU(r1, r2 image.Rectangle) float64 {
	intersect := r1.Intersect(r2)
	if intersect.Empty() {
		return 0.0
	}

	intersectArea := intersect.Dx() * intersect.Dy()
	union := r1.Dx()*r1.Dy() + r2.Dx()*r2.Dy() - intersectArea

	return float64(intersectArea) / float64(union)
}

// TestIoU_EdgeCases tests edge cases and boundary conditions
func TestIoU_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		r1   Rect
		r2   Rect
	}{
		{"Zero area rectangle 1", Rect{0, 0, 0, 0}, Rect{0, 0, 100, 100}},
		{"Zero area rectangle 2", Rect{0, 0, 100, 100}, Rect{50, 50, 50, 50}},
		{"Both zero area", Rect{0, 0, 0, 0}, Rect{10, 10, 10, 10}},
		{"Both zero area touching", Rect{10, 10, 10, 10}, Rect{10, 10, 10, 10}},
		{"Inverted rectangle", Rect{50, 50, 10, 10}, Rect{0, 0, 100, 100}},
		{"Single pixel", Rect{0, 0, 1, 1}, Rect{0, 0, 1, 1}},
		{"Max coordinates", Rect{0, 0, math.MaxUint32, math.MaxUint32}, Rect{1 << 31, 1 << 31, math.MaxUint32, math.MaxUint32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := CalculateIoU(tt.r1, tt.r2)
			assert.False(t, math.IsNaN(result), "IoU must never be NaN")
			assert.GreaterOrEqual(t, result, 0.0)
			assert.LessOrEqual(t, result, 1.0)

			reverseResult, _ := CalculateIoU(tt.r2, tt.r1)
			assert.GreaterOrEqual(t, reverseResult, 0.0)
			assert.LessOrEqual(t, reverseResult, 1.0)
		})
	}
}

func TestIoU_DegenerateUnion(t *testing.T) {
	point := Rect{XMin: 10, YMin: 10, XMax: 10, YMax: 10}

	iou, areas := CalculateIoU(point, point)
	assert.Equal(t, 0.0, iou)
	assert.Equal(t, &Areas{Predicted: 0, Truth: 0}, areas)
}

func TestIoU_InvertedNeverOverlaps(t *testing.T) {
	inverted := Rect{XMin: 60, YMin: 0, XMax: 40, YMax: 100}
	iou, areas := CalculateIoU(inverted, Rect{XMin: 0, YMin: 0, XMax: 100, YMax: 100})

	assert.Equal(t, 0.0, iou)
	assert.Nil(t, areas)
}

func TestIntersect(t *testing.T) {
	inter, ok := Intersect(Rect{0, 0, 10, 10}, Rect{5, 5, 15, 15})
	require.True(t, ok)
	assert.Equal(t, Rect{5, 5, 10, 10}, inter)

	_, ok = Intersect(Rect{0, 0, 10, 10}, Rect{11, 0, 20, 10})
	assert.False(t, ok)
}

func TestRect_Area(t *testing.T) {
	assert.Equal(t, uint64(100), Rect{0, 0, 10, 10}.Area())
	assert.Equal(t, uint64(0), Rect{10, 10, 0, 0}.Area())
	assert.Equal(t, uint64(math.MaxUint32)*uint64(math.MaxUint32), Rect{0, 0, math.MaxUint32, math.MaxUint32}.Area())
	assert.True(t, Rect{10, 0, 0, 10}.Inverted())
	assert.False(t, Rect{0, 0, 0, 0}.Inverted())
}

func TestRect_String(t *testing.T) {
	assert.Equal(t, "(x_min: 10, y_min: 20, x_max: 50, y_max: 100)", Rect{10, 20, 50, 100}.String())
}
