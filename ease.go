package colladarender

import (
	"slices"
	"strings"

	"github.com/tanema/gween/ease"
)

// easings maps the names accepted by EasingByName to their easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
	"in-out-expo":  ease.InOutExpo,
	"in-circ":      ease.InCirc,
	"out-circ":     ease.OutCirc,
	"in-out-circ":  ease.InOutCirc,
}

// EasingByName returns the easing function with the given name (like "linear" or "in-out-cubic"). It returns a
// UserError for unknown names.
func EasingByName(name string) (ease.TweenFunc, error) {
	if fn, ok := easings[strings.ToLower(name)]; ok {
		return fn, nil
	}
	return nil, NewUserError("unknown easing %q (available: %s)", name, strings.Join(EasingNames(), ", "))
}

// SetEasing sets the options' Easing to the named easing function. "linear" clears it instead, so that heights reach
// the ColorMap without being rounded to float32.
func (opts *RenderOptions) SetEasing(name string) error {
	fn, err := EasingByName(name)
	if err != nil {
		return err
	}
	if strings.EqualFold(name, "linear") {
		fn = nil
	}
	opts.Easing = fn
	return nil
}

// EasingNames returns the names of every easing function, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
