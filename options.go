package genart

import "github.com/gogpu/gg"

// Option configures a single Render call.
//
// Example:
//
//	buf, err := genart.Render(1000, 1000, 1, genart.DefaultFlowParams(),
//	    genart.WithPearlSeed(7),
//	    genart.WithBackground(gg.Hex("#101014")))
type Option func(*renderOptions)

// renderOptions holds optional configuration for a render.
type renderOptions struct {
	pearlSeed  uint64
	sampleSeed uint64
	background gg.RGBA
	ink        gg.RGBA
	pearl      gg.RGBA
}

// defaultOptions returns the options used when none are given.
func defaultOptions() renderOptions {
	return renderOptions{
		pearlSeed:  0,
		sampleSeed: 0,
		background: gg.Hex("#F2EBDD"),
		ink:        gg.Hex("#1E1E24"),
		pearl:      gg.Hex("#B23A48"),
	}
}

// WithPearlSeed seeds the generator that sizes the flow scene's pearl
// markers. The default is 0. The generator is created afresh for every
// render, so equal seeds give equal images.
func WithPearlSeed(seed uint64) Option {
	return func(o *renderOptions) {
		o.pearlSeed = seed
	}
}

// WithSampleSeed sets the Halton index at which flow seeds start. The
// default is 0.
func WithSampleSeed(seed uint64) Option {
	return func(o *renderOptions) {
		o.sampleSeed = seed
	}
}

// WithBackground sets the flow scene's background color.
func WithBackground(c gg.RGBA) Option {
	return func(o *renderOptions) {
		o.background = c
	}
}

// WithInk sets the flow scene's stroke color.
func WithInk(c gg.RGBA) Option {
	return func(o *renderOptions) {
		o.ink = c
	}
}

// WithPearlColor sets the fill color of the flow scene's pearl markers.
func WithPearlColor(c gg.RGBA) Option {
	return func(o *renderOptions) {
		o.pearl = c
	}
}
