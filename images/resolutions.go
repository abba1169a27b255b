// Package images - Named camera resolutions usable as an ImageSize.
package images

import (
	"fmt"
	"sort"
	"strings"
)

// AspectRatio represents an aspect ratio by name (e.g., "16:9").
type AspectRatio string

// Common aspect ratios.
const (
	AspectRatio169 AspectRatio = "16:9"
	AspectRatio43  AspectRatio = "4:3"
	AspectRatio54  AspectRatio = "5:4"
	AspectRatio32  AspectRatio = "3:2"
)

// Resolution is a named image size.
type Resolution struct {
	Name        string      `json:"name"        yaml:"name"`
	AspectRatio AspectRatio `json:"aspectRatio" yaml:"aspectRatio"`
	Size        ImageSize   `json:"size"        yaml:"size"`
}

// MegaPixels returns the pixel count in millions, rounded to two decimals.
func (r Resolution) MegaPixels() float64 {
	mp := float64(uint64(r.Size.Width)*uint64(r.Size.Height)) / 1_000_000.0
	return float64(int64(mp*100+0.5)) / 100
}

// String returns a human-readable summary of the resolution.
func (r Resolution) String() string {
	return fmt.Sprintf("%s (%dx%d, %.2fMP)", r.Name, r.Size.Width, r.Size.Height, r.MegaPixels())
}

// resolutions is keyed by lower-case alias. Several aliases may share a value.
var resolutions = map[string]Resolution{
	"360p":  {Name: "nHD", AspectRatio: AspectRatio169, Size: ImageSize{Width: 640, Height: 360}},
	"vga":   {Name: "VGA", AspectRatio: AspectRatio43, Size: ImageSize{Width: 640, Height: 480}},
	"480p":  {Name: "FWVGA", AspectRatio: AspectRatio169, Size: ImageSize{Width: 854, Height: 480}},
	"540p":  {Name: "qHD 540p", AspectRatio: AspectRatio169, Size: ImageSize{Width: 960, Height: 540}},
	"720p":  {Name: "HD 720p", AspectRatio: AspectRatio169, Size: ImageSize{Width: 1280, Height: 720}},
	"1mp":   {Name: "1MP (5:4)", AspectRatio: AspectRatio54, Size: ImageSize{Width: 1280, Height: 1024}},
	"1080p": {Name: "Full HD 1080p", AspectRatio: AspectRatio169, Size: ImageSize{Width: 1920, Height: 1080}},
	"2mp":   {Name: "2MP (4:3)", AspectRatio: AspectRatio43, Size: ImageSize{Width: 1600, Height: 1200}},
	"1440p": {Name: "QHD 1440p", AspectRatio: AspectRatio169, Size: ImageSize{Width: 2560, Height: 1440}},
	"6mp":   {Name: "6MP (3:2)", AspectRatio: AspectRatio32, Size: ImageSize{Width: 3072, Height: 2048}},
	"4k":    {Name: "4K UHD", AspectRatio: AspectRatio169, Size: ImageSize{Width: 3840, Height: 2160}},
	"12mp":  {Name: "12MP (4:3)", AspectRatio: AspectRatio43, Size: ImageSize{Width: 4000, Height: 3000}},
	"8k":    {Name: "8K UHD", AspectRatio: AspectRatio169, Size: ImageSize{Width: 7680, Height: 4320}},
}

func init() {
	resolutions["fhd"] = resolutions["1080p"]
	resolutions["hd"] = resolutions["720p"]
	resolutions["uhd"] = resolutions["4k"]
	resolutions["2160p"] = resolutions["4k"]
}

// LookupResolution finds a resolution by alias ("1080p", "4k", "vga", ...).
// The lookup is case-insensitive.
func LookupResolution(alias string) (Resolution, bool) {
	res, ok := resolutions[strings.ToLower(strings.TrimSpace(alias))]
	return res, ok
}

// ResolutionAliases returns every accepted alias, sorted by pixel count and
// then alphabetically.
func ResolutionAliases() []string {
	aliases := make([]string, 0, len(resolutions))
	for alias := range resolutions {
		aliases = append(aliases, alias)
	}
	sort.Slice(aliases, func(i, j int) bool {
		pi := uint64(resolutions[aliases[i]].Size.Width) * uint64(resolutions[aliases[i]].Size.Height)
		pj := uint64(resolutions[aliases[j]].Size.Width) * uint64(resolutions[aliases[j]].Size.Height)
		if pi != pj {
			return pi < pj
		}
		return aliases[i] < aliases[j]
	})
	return aliases
}
