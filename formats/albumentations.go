package formats

import (
	"fmt"

	"github.com/nvr-ai/go-iou/images"
)

// Albumentations is a box with min and max corners given as fractions of the
// image width and height. Values outside [0, 1] are kept as-is.
type Albumentations struct {
	NormXMin float32 `json:"norm_x_min" yaml:"norm_x_min"`
	NormYMin float32 `json:"norm_y_min" yaml:"norm_y_min"`
	NormXMax float32 `json:"norm_x_max" yaml:"norm_x_max"`
	NormYMax float32 `json:"norm_y_max" yaml:"norm_y_max"`
}

// ParseAlbumentations parses "<norm_x_min> <norm_y_min> <norm_x_max> <norm_y_max>".
func ParseAlbumentations(text string) (Albumentations, error) {
	v, err := parseF32Fields(text, fieldNames[FormatAlbumentations])
	if err != nil {
		return Albumentations{}, err
	}
	return Albumentations{NormXMin: v[0], NormYMin: v[1], NormXMax: v[2], NormYMax: v[3]}, nil
}

// Format implements Box.
func (Albumentations) Format() Format { return FormatAlbumentations }

// ToCanonical scales each corner by the matching image dimension and
// truncates toward zero.
//
// Example:
//
//	Albumentations{0.1, 0.1, 0.5, 0.5}.ToCanonical(images.ImageSize{Width: 100, Height: 200})
//	// images.Rect{XMin: 10, YMin: 20, XMax: 50, YMax: 100}
func (b Albumentations) ToCanonical(size images.ImageSize) images.Rect {
	w := float32(size.Width)
	h := float32(size.Height)

	return images.Rect{
		XMin: truncU32(b.NormXMin * w),
		YMin: truncU32(b.NormYMin * h),
		XMax: truncU32(b.NormXMax * w),
		YMax: truncU32(b.NormYMax * h),
	}
}

func (b Albumentations) String() string {
	return fmt.Sprintf("Albumentations{norm_x_min: %g, norm_y_min: %g, norm_x_max: %g, norm_y_max: %g}",
		b.NormXMin, b.NormYMin, b.NormXMax, b.NormYMax)
}
