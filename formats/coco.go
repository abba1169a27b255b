package formats

import (
	"fmt"

	"github.com/nvr-ai/go-iou/images"
)

// COCO is a box given by its absolute top-left corner, width and height.
type COCO struct {
	XMin   uint32 `json:"x_min"  yaml:"x_min"`
	YMin   uint32 `json:"y_min"  yaml:"y_min"`
	Width  uint32 `json:"width"  yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

// ParseCOCO parses "<x_min> <y_min> <width> <height>".
func ParseCOCO(text string) (COCO, error) {
	v, err := parseU32Fields(text, fieldNames[FormatCOCO])
	if err != nil {
		return COCO{}, err
	}
	return COCO{XMin: v[0], YMin: v[1], Width: v[2], Height: v[3]}, nil
}

// Format implements Box.
func (COCO) Format() Format { return FormatCOCO }

// ToCanonical adds the size to the corner. The image size is ignored.
//
// The sums are uint32 and wrap past MaxUint32; a wrapped box comes out
// inverted (Rect.Inverted reports true) rather than being clamped.
func (b COCO) ToCanonical(images.ImageSize) images.Rect {
	return images.Rect{
		XMin: b.XMin,
		YMin: b.YMin,
		XMax: b.XMin + b.Width,
		YMax: b.YMin + b.Height,
	}
}

func (b COCO) String() string {
	return fmt.Sprintf("COCO{x_min: %d, y_min: %d, width: %d, height: %d}", b.XMin, b.YMin, b.Width, b.Height)
}
