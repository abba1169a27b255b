package images

import (
	"fmt"
	"image"
	"io"
	"os"

	// Decoders registered for DecodeSize.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/pkg/errors"
)

// ImageSize is the width and height of the image a box was annotated on.
//
// Zero dimensions are allowed; normalized boxes then collapse onto the origin.
type ImageSize struct {
	// The width of the image.
	Width uint32 `json:"width" yaml:"width"`
	// The height of the image.
	Height uint32 `json:"height" yaml:"height"`
}

// String returns the size the way the interactive tool echoes it.
func (s ImageSize) String() string {
	return fmt.Sprintf("Width: %d, Height: %d", s.Width, s.Height)
}

// ImageFormat represents supported image formats
type ImageFormat string

// ImageFormat constants
const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatGIF is the GIF image format.
	FormatGIF ImageFormat = "gif"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
	// FormatBMP is the BMP image format.
	FormatBMP ImageFormat = "bmp"
	// FormatTIFF is the TIFF image format.
	FormatTIFF ImageFormat = "tiff"
)

// DecodeSize reads an image header and returns its dimensions without
// decoding the pixel data.
//
// Arguments:
//   - r: The encoded image.
//
// Returns:
//   - ImageSize: The dimensions of the image.
//   - ImageFormat: The detected encoding.
//   - error: An error if the header cannot be decoded.
func DecodeSize(r io.Reader) (ImageSize, ImageFormat, error) {
	cfg, name, err := image.DecodeConfig(r)
	if err != nil {
		return ImageSize{}, "", errors.Wrap(err, "image header decoding failed")
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return ImageSize{}, "", errors.Errorf("invalid dimensions: width=%d, height=%d", cfg.Width, cfg.Height)
	}

	return ImageSize{Width: uint32(cfg.Width), Height: uint32(cfg.Height)}, ImageFormat(name), nil
}

// LoadSize opens the image at path and returns its dimensions.
func LoadSize(path string) (ImageSize, ImageFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageSize{}, "", errors.Wrapf(err, "failed to open image %s", path)
	}
	defer f.Close()

	return DecodeSize(f)
}
