package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSize is the fallback frame size used when a template path carries no
// size segment. Portrait 1080x1920 matches the short-video aspect most
// templates target.
var DefaultSize = Size{Width: 1080, Height: 1920}

// Size holds target raster dimensions in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// IsZero reports whether the size is unset.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

var sizeSegment = regexp.MustCompile(`^(\d+)x(\d+)$`)

// ParseSize extracts a WIDTHxHEIGHT token from the template path's segments,
// e.g. "templates/1080x1920/default.html" yields 1080x1920. A path with no
// size segment is not an error; the fallback is returned instead (DefaultSize
// when the fallback is zero). Pure function of its inputs.
func ParseSize(path string, fallback Size) Size {
	if fallback.IsZero() {
		fallback = DefaultSize
	}

	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, segment := range strings.Split(normalized, "/") {
		match := sizeSegment.FindStringSubmatch(segment)
		if match == nil {
			continue
		}
		width, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		height, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		return Size{Width: width, Height: height}
	}
	return fallback
}
