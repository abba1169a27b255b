package formats

import (
	"fmt"

	"github.com/nvr-ai/go-iou/images"
)

// PASCAL is a PASCAL VOC box: absolute min and max corners.
type PASCAL struct {
	XMin uint32 `json:"x_min" yaml:"x_min"`
	YMin uint32 `json:"y_min" yaml:"y_min"`
	XMax uint32 `json:"x_max" yaml:"x_max"`
	YMax uint32 `json:"y_max" yaml:"y_max"`
}

// ParsePASCAL parses "<x_min> <y_min> <x_max> <y_max>".
func ParsePASCAL(text string) (PASCAL, error) {
	v, err := parseU32Fields(text, fieldNames[FormatPASCAL])
	if err != nil {
		return PASCAL{}, err
	}
	return PASCAL{XMin: v[0], YMin: v[1], XMax: v[2], YMax: v[3]}, nil
}

// Format implements Box.
func (PASCAL) Format() Format { return FormatPASCAL }

// ToCanonical returns the box unchanged; the image size is ignored.
func (b PASCAL) ToCanonical(images.ImageSize) images.Rect {
	return images.Rect{XMin: b.XMin, YMin: b.YMin, XMax: b.XMax, YMax: b.YMax}
}

func (b PASCAL) String() string {
	return fmt.Sprintf("PASCAL{x_min: %d, y_min: %d, x_max: %d, y_max: %d}", b.XMin, b.YMin, b.XMax, b.YMax)
}
