package genart

import "errors"

// ErrInvalidConfig is wrapped by every error caused by an unusable scene
// configuration: malformed gradient stops, short or unordered anchors,
// invalid fractal settings, or a non-positive size or scale. Such errors
// abort the render before anything is drawn.
var ErrInvalidConfig = errors.New("genart: invalid configuration")
