package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nvr-ai/go-iou/formats"
	"github.com/nvr-ai/go-iou/images"
	"github.com/pkg/errors"
)

const helpMessage = "Values are separated by space"

// prompter asks for input line by line and re-asks until the line parses.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(message, placeholder string) (string, error) {
	if placeholder != "" {
		fmt.Fprintf(p.out, "%s[%s] ", message, placeholder)
	} else {
		fmt.Fprint(p.out, message)
	}

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}
		return "", errors.Wrap(io.ErrUnexpectedEOF, "input closed")
	}
	return p.in.Text(), nil
}

// retry asks until parse accepts the answer. Parse errors are shown to the
// user; only read errors end the loop.
func retry[T any](p *prompter, message, placeholder, help string, parse func(string) (T, error)) (T, error) {
	for {
		text, err := p.ask(message, placeholder)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(text)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "Invalid input: %v\n", err)
		if help != "" {
			fmt.Fprintln(p.out, help)
		}
	}
}

func (p *prompter) selectFormat() (formats.Format, error) {
	fmt.Fprintln(p.out, "Select bounding box type:")
	all := formats.All()
	for i, f := range all {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, f.Title())
	}

	return retry(p, "Choice: ", "", "", func(text string) (formats.Format, error) {
		text = strings.TrimSpace(text)
		if n, err := strconv.Atoi(text); err == nil {
			if n < 1 || n > len(all) {
				return "", errors.Errorf("choose 1 to %d", len(all))
			}
			return all[n-1], nil
		}
		return formats.ParseFormat(text)
	})
}

func (p *prompter) imageSize() (images.ImageSize, error) {
	return retry(p, "Enter image size: ", formats.ImageSizePlaceholder(), helpMessage, formats.ParseImageSize)
}

func (p *prompter) box(format formats.Format, message string) (formats.Box, error) {
	return retry(p, message, formats.Placeholder(format), helpMessage, func(text string) (formats.Box, error) {
		return formats.ParseBox(format, text)
	})
}
