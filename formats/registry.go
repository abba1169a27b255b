// Package formats - registry for box formats.
package formats

import (
	"github.com/nvr-ai/go-iou/images"
	"github.com/pkg/errors"
)

// ParseBox parses whitespace-separated text as a box in the given format.
//
// This is the single entry point the shell uses: it routes to the
// format-specific parser so callers only handle the Box interface.
//
// Arguments:
//   - f: The format the text is written in.
//   - text: Exactly four whitespace-separated numbers.
//
// Returns:
//   - Box: The parsed box.
//   - error: *MalformedInputError for the wrong number of values,
//     *FieldParseError naming the first field that is not a number, or
//     ErrUnknownFormat.
//
// Example:
//
//	box, err := ParseBox(FormatCOCO, "10 20 30 40")
//	if err != nil {
//	    log.Fatalf("bad box: %v", err)
//	}
//	rect := box.ToCanonical(images.ImageSize{Width: 640, Height: 480})
//	// rect = {10 20 40 60}
func ParseBox(f Format, text string) (Box, error) {
	switch f {
	case FormatPASCAL:
		b, err := ParsePASCAL(text)
		if err != nil {
			return nil, err
		}
		return b, nil
	case FormatAlbumentations:
		b, err := ParseAlbumentations(text)
		if err != nil {
			return nil, err
		}
		return b, nil
	case FormatCOCO:
		b, err := ParseCOCO(text)
		if err != nil {
			return nil, err
		}
		return b, nil
	case FormatYOLO:
		b, err := ParseYOLO(text)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

// ParseImageSize parses "<width> <height>".
func ParseImageSize(text string) (images.ImageSize, error) {
	v, err := parseU32Fields(text, imageSizeFields)
	if err != nil {
		return images.ImageSize{}, err
	}
	return images.ImageSize{Width: v[0], Height: v[1]}, nil
}

// ToCanonical converts any box to absolute corners. It is the free-function
// form of Box.ToCanonical.
func ToCanonical(b Box, size images.ImageSize) images.Rect {
	return b.ToCanonical(size)
}
