package render

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/nvr-ai/go-iou/images"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

func TestDraw(t *testing.T) {
	src := imaging.New(100, 100, white)
	pred := images.Rect{XMin: 10, YMin: 10, XMax: 50, YMax: 50}
	truth := images.Rect{XMin: 30, YMin: 30, XMax: 90, YMax: 90}

	out := Draw(src, pred, truth, DefaultOptions())
	require.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{name: "predicted top-left corner", x: 10, y: 10, want: red},
		{name: "predicted right edge", x: 49, y: 20, want: red},
		{name: "truth bottom edge", x: 60, y: 89, want: green},
		{name: "truth over predicted", x: 30, y: 48, want: green},
		{name: "inside predicted", x: 20, y: 20, want: white},
		{name: "outside both", x: 95, y: 5, want: white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, out.NRGBAAt(tt.x, tt.y))
		})
	}

	assert.Equal(t, white, src.NRGBAAt(10, 10), "the source is not modified")
}

func TestDraw_ClipsAndSkips(t *testing.T) {
	src := imaging.New(20, 20, white)

	out := Draw(src,
		images.Rect{XMin: 15, YMin: 15, XMax: 4000, YMax: 4000},
		images.Rect{XMin: 10, YMin: 10, XMax: 5, YMax: 5},
		DefaultOptions(),
	)

	assert.Equal(t, red, out.NRGBAAt(16, 15))
	assert.Equal(t, white, out.NRGBAAt(10, 10), "inverted boxes are not drawn")
}

func TestDraw_Downsizes(t *testing.T) {
	src := imaging.New(400, 200, white)
	opts := DefaultOptions()
	opts.MaxWidth = 100

	out := Draw(src, images.Rect{XMax: 10, YMax: 10}, images.Rect{XMax: 10, YMax: 10}, opts)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 50, out.Bounds().Dy())

	opts.MaxWidth = 1000
	out = Draw(src, images.Rect{}, images.Rect{}, opts)
	assert.Equal(t, 400, out.Bounds().Dx(), "narrower images keep their size")
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "frame.png")
	dst := filepath.Join(dir, "overlay.png")
	require.NoError(t, Save(src, imaging.New(64, 48, white)))

	err := File(src, dst, images.Rect{XMin: 1, YMin: 1, XMax: 20, YMax: 20}, images.Rect{XMin: 5, YMin: 5, XMax: 30, YMax: 30}, DefaultOptions())
	require.NoError(t, err)

	size, format, err := images.LoadSize(dst)
	require.NoError(t, err)
	assert.Equal(t, images.ImageSize{Width: 64, Height: 48}, size)
	assert.Equal(t, images.FormatPNG, format)

	img, err := Open(dst)
	require.NoError(t, err)
	assert.Equal(t, red, imaging.Clone(img).NRGBAAt(1, 1))

	assert.Error(t, File(filepath.Join(dir, "missing.png"), dst, images.Rect{}, images.Rect{}, DefaultOptions()))
}
