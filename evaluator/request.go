package evaluator

import (
	"strings"

	"github.com/nvr-ai/go-iou/formats"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DecodeRequest reads a single JSON evaluation request.
//
// Sizes and boxes may be given as whitespace-separated strings or as JSON
// arrays; the image size may also be an object. Values are passed on as text
// so they go through the same parsing rules as typed input.
//
//	{
//	  "format": "yolo",
//	  "image": {"width": 100, "height": 100},
//	  "predicted": [0.5, 0.5, 0.2, 0.2],
//	  "truth": "0.45 0.5 0.2 0.2"
//	}
func DecodeRequest(data []byte) (Input, error) {
	if !gjson.ValidBytes(data) {
		return Input{}, errors.New("request is not valid JSON")
	}
	req := gjson.ParseBytes(data)

	format, err := formats.ParseFormat(req.Get("format").String())
	if err != nil {
		return Input{}, errors.Wrap(err, "format")
	}

	var size string
	if img := req.Get("image"); img.IsObject() {
		w, h := img.Get("width"), img.Get("height")
		if !w.Exists() || !h.Exists() {
			return Input{}, errors.New("image needs both width and height")
		}
		size = w.Raw + " " + h.Raw
	} else {
		size, err = valuesText(req, "image_size")
		if err != nil {
			return Input{}, err
		}
	}

	pred, err := valuesText(req, "predicted")
	if err != nil {
		return Input{}, err
	}
	truth, err := valuesText(req, "truth")
	if err != nil {
		return Input{}, err
	}

	return Input{Format: format, ImageSize: size, Predicted: pred, Truth: truth}, nil
}

// valuesText flattens a string or array member into whitespace-separated text.
func valuesText(req gjson.Result, key string) (string, error) {
	v := req.Get(key)
	switch {
	case !v.Exists():
		return "", errors.Errorf("missing %q", key)
	case v.Type == gjson.String:
		return v.String(), nil
	case v.IsArray():
		items := v.Array()
		parts := make([]string, len(items))
		for i, item := range items {
			if item.Type == gjson.String {
				parts[i] = item.String()
			} else {
				parts[i] = item.Raw
			}
		}
		return strings.Join(parts, " "), nil
	default:
		return "", errors.Errorf("%q must be a string or an array", key)
	}
}

// MarshalJSON encodes the result. Areas and intersection are omitted when the
// boxes do not overlap.
func (r *Result) MarshalJSON() ([]byte, error) {
	out := []byte(`{}`)
	var err error
	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
	}

	set("format", string(r.Format))
	set("image_size", r.ImageSize)
	if r.Predicted != nil {
		set("predicted.input", r.Predicted.String())
	}
	set("predicted.canonical", r.PredictedRect)
	if r.Truth != nil {
		set("truth.input", r.Truth.String())
	}
	set("truth.canonical", r.TruthRect)
	set("overlapping", r.Overlapping)
	if r.Overlapping {
		set("intersection", r.Intersection)
	}
	if r.Areas != nil {
		set("areas", r.Areas)
	}
	set("iou", r.IoU)
	set("threshold", r.Threshold)
	set("match", r.Match)

	if err != nil {
		return nil, errors.Wrap(err, "failed to encode result")
	}
	return out, nil
}
