package formats

import (
	"fmt"

	"github.com/nvr-ai/go-iou/images"
)

// YOLO is a box given by its center, width and height, all as fractions of
// the image dimensions.
type YOLO struct {
	NormXCenter float32 `json:"norm_x_center" yaml:"norm_x_center"`
	NormYCenter float32 `json:"norm_y_center" yaml:"norm_y_center"`
	NormWidth   float32 `json:"norm_width"    yaml:"norm_width"`
	NormHeight  float32 `json:"norm_height"   yaml:"norm_height"`
}

// ParseYOLO parses "<norm_x_center> <norm_y_center> <norm_width> <norm_height>".
func ParseYOLO(text string) (YOLO, error) {
	v, err := parseF32Fields(text, fieldNames[FormatYOLO])
	if err != nil {
		return YOLO{}, err
	}
	return YOLO{NormXCenter: v[0], NormYCenter: v[1], NormWidth: v[2], NormHeight: v[3]}, nil
}

// Format implements Box.
func (YOLO) Format() Format { return FormatYOLO }

// ToCanonical scales the center and size to pixels and derives each edge.
//
// Every edge is computed and truncated on its own, so XMax-XMin can be one
// pixel off the scaled width.
func (b YOLO) ToCanonical(size images.ImageSize) images.Rect {
	w := float32(size.Width)
	h := float32(size.Height)

	xCenter := b.NormXCenter * w
	yCenter := b.NormYCenter * h
	width := b.NormWidth * w
	height := b.NormHeight * h

	return images.Rect{
		XMin: truncU32(xCenter - width/2),
		YMin: truncU32(yCenter - height/2),
		XMax: truncU32(xCenter + width/2),
		YMax: truncU32(yCenter + height/2),
	}
}

func (b YOLO) String() string {
	return fmt.Sprintf("YOLO{norm_x_center: %g, norm_y_center: %g, norm_width: %g, norm_height: %g}",
		b.NormXCenter, b.NormYCenter, b.NormWidth, b.NormHeight)
}
