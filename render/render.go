// Package render - Draws a predicted and a ground truth box over the source
// image for a visual check of the conversion.
package render

import (
	"image"
	"image/color"
	"image/draw"

	// WebP sources for Open.
	_ "github.com/chai2010/webp"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/nvr-ai/go-iou/images"
	"github.com/pkg/errors"
)

// Options controls how boxes are drawn.
type Options struct {
	// Thickness is the outline width in source pixels.
	Thickness int
	// PredictedColor outlines the predicted box.
	PredictedColor color.Color
	// TruthColor outlines the ground truth box.
	TruthColor color.Color
	// MaxWidth downsizes wider overlays, keeping the aspect ratio. Zero disables it.
	MaxWidth uint
}

// DefaultOptions draws a red prediction and a green ground truth, 2px wide.
func DefaultOptions() Options {
	return Options{
		Thickness:      2,
		PredictedColor: color.NRGBA{R: 255, A: 255},
		TruthColor:     color.NRGBA{G: 255, A: 255},
	}
}

// Draw returns a copy of src with both boxes outlined. Outlines are clipped
// to the image and inverted boxes are skipped. The ground truth is drawn
// last so it stays visible where the outlines coincide.
func Draw(src image.Image, pred, truth images.Rect, opts Options) *image.NRGBA {
	dst := imaging.Clone(src)

	thickness := max(opts.Thickness, 1)
	outline(dst, pred, opts.PredictedColor, thickness)
	outline(dst, truth, opts.TruthColor, thickness)

	if opts.MaxWidth == 0 || dst.Bounds().Dx() <= int(opts.MaxWidth) {
		return dst
	}
	return imaging.Clone(resize.Resize(opts.MaxWidth, 0, dst, resize.Bilinear))
}

func outline(dst *image.NRGBA, r images.Rect, c color.Color, thickness int) {
	if r.Inverted() || c == nil {
		return
	}

	box := image.Rect(int(r.XMin), int(r.YMin), int(r.XMax), int(r.YMax))
	edges := []image.Rectangle{
		image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+thickness),
		image.Rect(box.Min.X, box.Max.Y-thickness, box.Max.X, box.Max.Y),
		image.Rect(box.Min.X, box.Min.Y, box.Min.X+thickness, box.Max.Y),
		image.Rect(box.Max.X-thickness, box.Min.Y, box.Max.X, box.Max.Y),
	}

	fill := image.NewUniform(c)
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(box).Intersect(dst.Bounds()), fill, image.Point{}, draw.Src)
	}
}

// Open decodes the image at path.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image %s", path)
	}
	return img, nil
}

// Save encodes img to path; the format follows the file extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "failed to save image %s", path)
	}
	return nil
}

// File opens src, draws both boxes and writes the overlay to dst.
func File(src, dst string, pred, truth images.Rect, opts Options) error {
	img, err := Open(src)
	if err != nil {
		return err
	}
	return Save(dst, Draw(img, pred, truth, opts))
}
