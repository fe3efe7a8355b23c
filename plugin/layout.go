package plugin

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLayout is returned when a host asks for a bus layout other
// than matching mono or stereo input and output.
var ErrUnsupportedLayout = errors.New("plugin: unsupported channel layout")

// Layout is a bus channel configuration.
type Layout int

const (
	LayoutDisabled Layout = 0
	LayoutMono     Layout = 1
	LayoutStereo   Layout = 2
)

func (l Layout) String() string {
	switch l {
	case LayoutDisabled:
		return "disabled"
	case LayoutMono:
		return "mono"
	case LayoutStereo:
		return "stereo"
	default:
		return fmt.Sprintf("%d channels", int(l))
	}
}

// Channels returns the channel count of l.
func (l Layout) Channels() int { return int(l) }

// IsLayoutSupported reports whether the effect can run with the given input
// and output layouts: the output must be mono or stereo and the input must
// match it.
func IsLayoutSupported(in, out Layout) bool {
	if out != LayoutMono && out != LayoutStereo {
		return false
	}

	return in == out
}

// CheckLayout is IsLayoutSupported returning a descriptive error.
func CheckLayout(in, out Layout) error {
	if !IsLayoutSupported(in, out) {
		return fmt.Errorf("%w: in=%v out=%v", ErrUnsupportedLayout, in, out)
	}

	return nil
}
