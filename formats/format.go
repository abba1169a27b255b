// Package formats - Bounding box annotation formats and their conversion to
// the canonical absolute-corner box.
package formats

import (
	"strings"

	"github.com/nvr-ai/go-iou/images"
	"github.com/pkg/errors"
)

// Format identifies a bounding box annotation convention.
type Format string

const (
	// FormatPASCAL is PASCAL VOC: absolute min and max corners. Already canonical.
	FormatPASCAL Format = "pascal_voc"
	// FormatAlbumentations is normalized min and max corners.
	FormatAlbumentations Format = "albumentations"
	// FormatCOCO is the absolute top-left corner plus width and height.
	FormatCOCO Format = "coco"
	// FormatYOLO is the normalized center plus width and height.
	FormatYOLO Format = "yolo"
)

// ErrUnknownFormat is returned by ParseFormat and ParseBox for names outside
// the supported set.
var ErrUnknownFormat = errors.New("unknown bounding box format")

// Box is a parsed bounding box in one of the supported formats.
//
// Implementations are immutable values; ToCanonical is pure and never fails,
// though the result may be degenerate for odd input.
type Box interface {
	// Format returns the convention the box was written in.
	Format() Format
	// ToCanonical converts the box to absolute corners for an image of the given size.
	ToCanonical(size images.ImageSize) images.Rect
	// String formats the box with its field names.
	String() string
}

var fieldNames = map[Format][]string{
	FormatPASCAL:         {"x_min", "y_min", "x_max", "y_max"},
	FormatAlbumentations: {"norm_x_min", "norm_y_min", "norm_x_max", "norm_y_max"},
	FormatCOCO:           {"x_min", "y_min", "width", "height"},
	FormatYOLO:           {"norm_x_center", "norm_y_center", "norm_width", "norm_height"},
}

var imageSizeFields = []string{"width", "height"}

var aliases = map[string]Format{
	"pascal_voc":     FormatPASCAL,
	"pascal":         FormatPASCAL,
	"voc":            FormatPASCAL,
	"albumentations": FormatAlbumentations,
	"albu":           FormatAlbumentations,
	"coco":           FormatCOCO,
	"yolo":           FormatYOLO,
}

// All returns the supported formats in menu order.
func All() []Format {
	return []Format{FormatPASCAL, FormatAlbumentations, FormatCOCO, FormatYOLO}
}

// ParseFormat resolves a format name. Matching is case-insensitive and accepts
// the short aliases "pascal", "voc" and "albu".
func ParseFormat(name string) (Format, error) {
	f, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
	return f, nil
}

// Title returns the display name used in menus.
func (f Format) Title() string {
	switch f {
	case FormatPASCAL:
		return "PASCAL"
	case FormatAlbumentations:
		return "Albumentations"
	case FormatCOCO:
		return "COCO"
	case FormatYOLO:
		return "YOLO"
	default:
		return string(f)
	}
}

// Fields returns the positional field names of a format, or nil for an
// unknown format.
func Fields(f Format) []string {
	names, ok := fieldNames[f]
	if !ok {
		return nil
	}
	return append([]string(nil), names...)
}

// Placeholder returns the input hint for a format, e.g.
// "<x_min> <y_min> <x_max> <y_max>".
func Placeholder(f Format) string {
	return placeholder(fieldNames[f])
}

// ImageSizePlaceholder returns the input hint for an image size.
func ImageSizePlaceholder() string {
	return placeholder(imageSizeFields)
}

func placeholder(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = "<" + n + ">"
	}
	return strings.Join(parts, " ")
}
