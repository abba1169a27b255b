package formats

import (
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// tokenize splits whitespace-separated input and enforces the value count.
func tokenize(text string, n int) ([]string, error) {
	tokens := strings.Fields(text)
	if len(tokens) != n {
		return nil, &MalformedInputError{Expected: n, Got: len(tokens)}
	}
	return tokens, nil
}

func parseU32Fields(text string, names []string) ([]uint32, error) {
	tokens, err := tokenize(text, len(names))
	if err != nil {
		return nil, err
	}

	values := make([]uint32, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 32)
		if err != nil {
			return nil, &FieldParseError{Field: names[i], Value: tok, Kind: "u32", Err: err}
		}
		values[i] = uint32(v)
	}
	return values, nil
}

func parseF32Fields(text string, names []string) ([]float32, error) {
	tokens, err := tokenize(text, len(names))
	if err != nil {
		return nil, err
	}

	values := make([]float32, len(tokens))
	for i, tok := range tokens {
		// Out-of-range values keep the ±Inf ParseFloat hands back.
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &FieldParseError{Field: names[i], Value: tok, Kind: "f32", Err: err}
		}
		values[i] = float32(v)
	}
	return values, nil
}

// truncU32 rounds toward zero and saturates like a numeric cast: NaN and
// negative values become 0, values past the range become MaxUint32.
func truncU32(f float32) uint32 {
	switch {
	case math32.IsNaN(f), f <= 0:
		return 0
	case f >= float32(math.MaxUint32):
		return math.MaxUint32
	default:
		return uint32(math32.Trunc(f))
	}
}
