// Package evaluator - Parses a predicted and a ground truth box under one
// format, converts both to canonical corners and scores them with IoU.
package evaluator

import (
	"io"

	"github.com/nvr-ai/go-iou/formats"
	"github.com/nvr-ai/go-iou/images"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultThreshold is the IoU at or above which a prediction counts as a match.
const DefaultThreshold = 0.5

// Input is the raw text of one evaluation.
type Input struct {
	// Format is the convention both boxes are written in.
	Format formats.Format `json:"format" yaml:"format"`
	// ImageSize is "<width> <height>".
	ImageSize string `json:"image_size" yaml:"image_size"`
	// Predicted is the predicted box, four whitespace-separated values.
	Predicted string `json:"predicted" yaml:"predicted"`
	// Truth is the ground truth box, four whitespace-separated values.
	Truth string `json:"truth" yaml:"truth"`
}

// Result is the outcome of one evaluation.
type Result struct {
	Format    formats.Format
	ImageSize images.ImageSize
	// Predicted and Truth are the boxes as parsed.
	Predicted formats.Box
	Truth     formats.Box
	// PredictedRect and TruthRect are the canonical conversions.
	PredictedRect images.Rect
	TruthRect     images.Rect
	// Intersection is only meaningful when Overlapping is true.
	Intersection images.Rect
	Overlapping  bool
	IoU          float64
	// Areas is nil when the boxes do not overlap.
	Areas     *images.Areas
	Threshold float64
	Match     bool
}

// NewArgs are the arguments for New.
type NewArgs struct {
	// Logger receives stage-by-stage debug output. Nil discards it.
	Logger logrus.FieldLogger
	// Threshold is the match threshold. Zero means DefaultThreshold.
	Threshold float64
}

// Evaluator runs the parse, convert and score pipeline.
type Evaluator struct {
	logger    logrus.FieldLogger
	threshold float64
}

// New creates an Evaluator.
func New(args NewArgs) *Evaluator {
	logger := args.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	threshold := args.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	return &Evaluator{logger: logger, threshold: threshold}
}

// Threshold returns the match threshold in use.
func (e *Evaluator) Threshold() float64 {
	return e.threshold
}

// Evaluate parses the image size, then the predicted box, then the ground
// truth box, converts both boxes and computes their IoU.
//
// Arguments:
//   - in: The raw text to evaluate.
//
// Returns:
//   - *Result: The canonical boxes, IoU and, when the boxes overlap, their areas.
//   - error: The first parse failure, wrapped with the input it came from. The
//     *formats.MalformedInputError or *formats.FieldParseError stays reachable
//     through errors.As.
func (e *Evaluator) Evaluate(in Input) (*Result, error) {
	size, err := formats.ParseImageSize(in.ImageSize)
	if err != nil {
		return nil, errors.Wrap(err, "image size")
	}

	pred, err := formats.ParseBox(in.Format, in.Predicted)
	if err != nil {
		return nil, errors.Wrap(err, "predicted box")
	}

	truth, err := formats.ParseBox(in.Format, in.Truth)
	if err != nil {
		return nil, errors.Wrap(err, "ground truth box")
	}

	return e.Score(size, pred, truth), nil
}

// Score converts two already parsed boxes and computes their IoU.
func (e *Evaluator) Score(size images.ImageSize, pred, truth formats.Box) *Result {
	log := e.logger.WithFields(logrus.Fields{
		"format": pred.Format(),
		"width":  size.Width,
		"height": size.Height,
	})

	res := &Result{
		Format:        pred.Format(),
		ImageSize:     size,
		Predicted:     pred,
		Truth:         truth,
		PredictedRect: pred.ToCanonical(size),
		TruthRect:     truth.ToCanonical(size),
		Threshold:     e.threshold,
	}
	log.WithField("predicted", res.PredictedRect.String()).WithField("truth", res.TruthRect.String()).
		Debug("converted boxes to canonical corners")

	if res.PredictedRect.Inverted() {
		log.WithField("rect", res.PredictedRect.String()).Warn("predicted box is inverted, it cannot overlap anything")
	}
	if res.TruthRect.Inverted() {
		log.WithField("rect", res.TruthRect.String()).Warn("ground truth box is inverted, it cannot overlap anything")
	}

	res.Intersection, res.Overlapping = images.Intersect(res.PredictedRect, res.TruthRect)
	res.IoU, res.Areas = images.CalculateIoU(res.PredictedRect, res.TruthRect)
	res.Match = res.IoU >= e.threshold

	log.WithFields(logrus.Fields{
		"iou":         res.IoU,
		"overlapping": res.Overlapping,
		"match":       res.Match,
	}).Debug("scored boxes")

	return res
}

// Evaluate runs in through an Evaluator with default settings.
func Evaluate(in Input) (*Result, error) {
	return New(NewArgs{}).Evaluate(in)
}
