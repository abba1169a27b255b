// Command iou converts a predicted and a ground truth bounding box to
// PASCAL VOC corners and prints their Intersection over Union.
//
// Values missing from the flags and config file are prompted for:
//
//	iou
//	iou -format yolo -resolution 1080p -pred "0.5 0.5 0.2 0.2" -truth "0.52 0.5 0.2 0.2"
//	echo '{"format":"coco","image_size":"640 480","predicted":[0,0,10,10],"truth":[5,5,10,10]}' | iou -json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nvr-ai/go-iou/config"
	"github.com/nvr-ai/go-iou/evaluator"
	"github.com/nvr-ai/go-iou/formats"
	"github.com/nvr-ai/go-iou/images"
	"github.com/nvr-ai/go-iou/render"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logrus.WithError(err).Fatal("iou failed")
	}
}

// options are the flag values that are not part of config.Config.
type options struct {
	configFile string
	pred       string
	truth      string
	jsonMode   bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	logger.SetOutput(stderr)

	ev := evaluator.New(evaluator.NewArgs{Logger: logger, Threshold: cfg.Threshold})

	var res *evaluator.Result
	if opts.jsonMode {
		res, err = runJSON(ev, stdin, stdout)
	} else {
		res, err = runInteractive(cfg, opts, ev, logger, newPrompter(stdin, stdout))
		if err == nil {
			err = res.Report(stdout)
		}
	}
	if err != nil {
		return err
	}

	if cfg.Render.Output != "" {
		ro := render.DefaultOptions()
		ro.Thickness = cfg.Render.Thickness
		ro.MaxWidth = cfg.Render.MaxWidth
		if err := render.File(cfg.Image, cfg.Render.Output, res.PredictedRect, res.TruthRect, ro); err != nil {
			return err
		}
		logger.WithField("path", cfg.Render.Output).Info("wrote overlay")
	}
	return nil
}

// parseFlags loads the config file, if any, and applies the flags that were
// set on top of it.
func parseFlags(args []string, stderr io.Writer) (*config.Config, options, error) {
	var (
		opts       options
		format     string
		size       string
		resolution string
		img        string
		threshold  float64
		logLevel   string
		renderOut  string
		maxWidth   uint
	)

	fs := flag.NewFlagSet("iou", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configFile, "config", "", "Path to a YAML or JSON config file")
	fs.StringVar(&format, "format", "", "Box format: pascal_voc, albumentations, coco or yolo")
	fs.StringVar(&size, "size", "", "Image size as \"<width> <height>\"")
	fs.StringVar(&resolution, "resolution", "", "Named image size, e.g. 720p, 1080p, 4k")
	fs.StringVar(&img, "image", "", "Image file supplying the size and the overlay background")
	fs.StringVar(&opts.pred, "pred", "", "Predicted box, four space-separated values")
	fs.StringVar(&opts.truth, "truth", "", "Ground truth box, four space-separated values")
	fs.Float64Var(&threshold, "threshold", evaluator.DefaultThreshold, "IoU at or above which the prediction is a match")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.jsonMode, "json", false, "Read one JSON request from stdin and write a JSON result")
	fs.StringVar(&renderOut, "render", "", "Write an overlay of both boxes to this file (requires -image)")
	fs.UintVar(&maxWidth, "render-max-width", 0, "Downsize the overlay to at most this width")
	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}
	if fs.NArg() > 0 {
		return nil, opts, errors.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, opts, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = format
		case "size":
			cfg.ImageSize = size
		case "resolution":
			cfg.Resolution = resolution
		case "image":
			cfg.Image = img
		case "threshold":
			cfg.Threshold = threshold
		case "log-level":
			cfg.LogLevel = logLevel
		case "render":
			cfg.Render.Output = renderOut
		case "render-max-width":
			cfg.Render.MaxWidth = maxWidth
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}

func runJSON(ev *evaluator.Evaluator, stdin io.Reader, stdout io.Writer) (*evaluator.Result, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request")
	}

	in, err := evaluator.DecodeRequest(data)
	if err != nil {
		return nil, err
	}

	res, err := ev.Evaluate(in)
	if err != nil {
		return nil, err
	}

	out, err := res.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(stdout, string(out)); err != nil {
		return nil, err
	}
	return res, nil
}

func runInteractive(
	cfg *config.Config,
	opts options,
	ev *evaluator.Evaluator,
	logger logrus.FieldLogger,
	p *prompter,
) (*evaluator.Result, error) {
	var (
		format formats.Format
		err    error
	)
	if cfg.Format != "" {
		format, err = formats.ParseFormat(cfg.Format)
	} else {
		format, err = p.selectFormat()
	}
	if err != nil {
		return nil, err
	}

	size, source, err := resolveImageSize(cfg)
	if err != nil {
		return nil, err
	}
	if source == "" {
		size, err = p.imageSize()
		if err != nil {
			return nil, err
		}
		source = "prompt"
	}
	logger.WithFields(logrus.Fields{"format": format, "size": size.String(), "source": source}).Debug("resolved inputs")

	pred, err := boxFromFlagOrPrompt(p, format, opts.pred, "Enter predicted bounding box coordinates: ")
	if err != nil {
		return nil, errors.Wrap(err, "predicted box")
	}
	truth, err := boxFromFlagOrPrompt(p, format, opts.truth, "Enter ground truth bounding box coordinates: ")
	if err != nil {
		return nil, errors.Wrap(err, "ground truth box")
	}

	return ev.Score(size, pred, truth), nil
}

// resolveImageSize applies the size precedence: explicit size, named
// resolution, then the image header. An empty source means none was given.
func resolveImageSize(cfg *config.Config) (images.ImageSize, string, error) {
	switch {
	case cfg.ImageSize != "":
		size, err := formats.ParseImageSize(cfg.ImageSize)
		if err != nil {
			return images.ImageSize{}, "", errors.Wrap(err, "image size")
		}
		return size, "size", nil
	case cfg.Resolution != "":
		res, ok := images.LookupResolution(cfg.Resolution)
		if !ok {
			return images.ImageSize{}, "", errors.Errorf("unknown resolution %q", cfg.Resolution)
		}
		return res.Size, "resolution", nil
	case cfg.Image != "":
		size, _, err := images.LoadSize(cfg.Image)
		if err != nil {
			return images.ImageSize{}, "", err
		}
		return size, "image", nil
	default:
		return images.ImageSize{}, "", nil
	}
}

func boxFromFlagOrPrompt(p *prompter, format formats.Format, text, message string) (formats.Box, error) {
	if text != "" {
		return formats.ParseBox(format, text)
	}
	return p.box(format, message)
}
