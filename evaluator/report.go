package evaluator

import (
	"fmt"
	"io"
)

// Report writes the result the way the interactive tool prints it. Areas are
// only printed when the boxes overlap.
func (r *Result) Report(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("Predicted PASCAL coords: %s", r.PredictedRect),
		fmt.Sprintf("Ground truth PASCAL coords: %s", r.TruthRect),
	}
	if r.Areas != nil {
		lines = append(lines,
			fmt.Sprintf("Area of predicted: %d", r.Areas.Predicted),
			fmt.Sprintf("Area of ground truth: %d", r.Areas.Truth),
		)
	}
	lines = append(lines,
		fmt.Sprintf("IOU: %v", r.IoU),
		fmt.Sprintf("Match (IOU >= %v): %t", r.Threshold, r.Match),
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
