package genart

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/genart/internal/noise"
	"github.com/gogpu/genart/internal/palette"
)

// Preview and print settings the demo application ships with.
const (
	PreviewWidth  = 1000
	PreviewHeight = 1000

	DefaultPrintScale = 1.08
	MinPrintScale     = 0.36
	MaxPrintScale     = 10.8
)

// ClampPrintScale limits s to [MinPrintScale, MaxPrintScale].
func ClampPrintScale(s float64) float64 {
	return math.Max(MinPrintScale, math.Min(MaxPrintScale, s))
}

// Params is an immutable description of one composition. It is a sealed
// interface: GradientParams, FlowParams and WheelParams are the only
// implementations.
//
// Params are plain values. A UI keeps its own mutable copy and passes a
// snapshot to every Render call.
type Params interface {
	// Name returns the scene name used in logs and on the command line.
	Name() string

	// Validate reports a configuration error wrapping ErrInvalidConfig.
	Validate() error

	// draw seals the interface.
	draw(c *canvas) error
}

// GradientParams configures the radial-gradient frame composition.
type GradientParams struct {
	// RadialMiddleStop is the position of the orange stop in the shared
	// maroon-orange-blue radial gradient, in [0, 1].
	RadialMiddleStop float64
}

// DefaultGradientParams returns the frame composition with the orange stop
// halfway out.
func DefaultGradientParams() GradientParams {
	return GradientParams{RadialMiddleStop: 0.5}
}

// Name implements Params.
func (GradientParams) Name() string { return "gradient" }

// Validate implements Params. The middle stop must keep the stop offsets
// 0, RadialMiddleStop, 1 non-decreasing.
func (p GradientParams) Validate() error {
	s := p.RadialMiddleStop
	if math.IsNaN(s) || s < 0 || s > 1 {
		return fmt.Errorf("%w: radial middle stop %v outside [0, 1]", ErrInvalidConfig, s)
	}
	return nil
}

// NoiseBasis selects the coherent noise behind the flow field.
type NoiseBasis = noise.Basis

// Noise bases for FlowParams.Basis.
const (
	NoisePerlin  = noise.BasisPerlin
	NoiseSimplex = noise.BasisSimplex
)

// FlowParams configures the flow-field string-art composition. Distances are
// in logical pixels of the unscaled canvas.
type FlowParams struct {
	Separation   float64 // minimum distance between curves; 0 lets curves cross
	Starts       int     // number of seed points
	Length       int     // maximum vertices per curve
	Step         float64 // distance between consecutive vertices
	PearlSize    float64 // mean radius of the endpoint markers
	StrokeWeight float64 // curve line width
	NoiseScale   float64 // spatial frequency of the field
	NoiseFactor  float64 // gain applied to the field before it becomes an angle
	Octaves      int     // fractal layers, at least 1
	Lacunarity   float64 // frequency multiplier per octave
	Persistence  float64 // amplitude multiplier per octave
	Basis        NoiseBasis
}

// DefaultFlowParams returns a flow composition that reads well at preview
// size.
func DefaultFlowParams() FlowParams {
	return FlowParams{
		Separation:   6,
		Starts:       2000,
		Length:       250,
		Step:         2,
		PearlSize:    3,
		StrokeWeight: 1,
		NoiseScale:   0.0025,
		NoiseFactor:  1,
		Octaves:      4,
		Lacunarity:   2,
		Persistence:  0.5,
		Basis:        NoisePerlin,
	}
}

// Name implements Params.
func (FlowParams) Name() string { return "flow" }

// Validate implements Params.
func (p FlowParams) Validate() error {
	switch {
	case p.Separation < 0 || math.IsNaN(p.Separation):
		return fmt.Errorf("%w: separation %v is negative", ErrInvalidConfig, p.Separation)
	case p.Starts < 0:
		return fmt.Errorf("%w: starts %d is negative", ErrInvalidConfig, p.Starts)
	case p.Length < 0:
		return fmt.Errorf("%w: length %d is negative", ErrInvalidConfig, p.Length)
	case p.Octaves < 1:
		return fmt.Errorf("%w: octaves %d, need at least 1", ErrInvalidConfig, p.Octaves)
	case p.Persistence < 0 || math.IsNaN(p.Persistence):
		return fmt.Errorf("%w: persistence %v is negative", ErrInvalidConfig, p.Persistence)
	case p.Basis != NoisePerlin && p.Basis != NoiseSimplex:
		return fmt.Errorf("%w: unknown noise basis %v", ErrInvalidConfig, p.Basis)
	}
	return nil
}

func (p FlowParams) noiseConfig() noise.Config {
	return noise.Config{
		Scale:       p.NoiseScale,
		Factor:      p.NoiseFactor,
		Octaves:     p.Octaves,
		Lacunarity:  p.Lacunarity,
		Persistence: p.Persistence,
		Basis:       p.Basis,
	}
}

// Band half widths of DefaultWheelParams and RandomWheelParams.
const (
	DefaultHueSpread   = 0.2
	DefaultSatSpread   = 0.125
	DefaultLightSpread = 0.125
)

// WheelParams configures the banded HSLuv color wheel. Every anchor array
// must be non-decreasing and inside [0, 1].
type WheelParams struct {
	Hues   [4]float64 // hue anchors around the circle, as turns
	Sats   [4]float64 // saturation anchors
	Lights [3]float64 // lightness anchors

	SatOffset   float64 // phase shift of the saturation sweep, in [0, 1]
	LightOffset float64 // phase shift of the lightness sweep, in [0, 1]

	// Half widths of the bands around each anchor. Zero gives hard-edged
	// bands; DefaultHueSpread and friends give the demo's soft ones.
	HueSpread   float64
	SatSpread   float64
	LightSpread float64
}

// DefaultWheelParams returns the wheel the demo application starts with.
func DefaultWheelParams() WheelParams {
	return WheelParams{
		Hues:   [4]float64{0.2, 0.4, 0.6, 0.8},
		Sats:   [4]float64{0.25, 0.5, 0.75, 1.0},
		Lights: [3]float64{0.25, 0.5, 0.75},

		HueSpread:   DefaultHueSpread,
		SatSpread:   DefaultSatSpread,
		LightSpread: DefaultLightSpread,
	}
}

// RandomWheelParams draws a wheel from the ranges of the demo's "Random"
// button. Each anchor comes from its own interval, so the result always
// validates.
func RandomWheelParams(r *rand.Rand) WheelParams {
	in := func(lo, hi float64) float64 { return lo + r.Float64()*(hi-lo) }
	return WheelParams{
		Hues:        [4]float64{in(0, 0.25), in(0.35, 0.60), in(0.6, 0.77), in(0.82, 1.0)},
		Sats:        [4]float64{in(0.2, 0.3), in(0.3, 0.5), in(0.5, 0.7), in(0.7, 0.9)},
		Lights:      [3]float64{in(0.2, 0.4), in(0.4, 0.6), in(0.6, 0.85)},
		SatOffset:   r.Float64(),
		LightOffset: r.Float64(),
		HueSpread:   DefaultHueSpread,
		SatSpread:   DefaultSatSpread,
		LightSpread: DefaultLightSpread,
	}
}

// Name implements Params.
func (WheelParams) Name() string { return "wheel" }

// Validate implements Params.
func (p WheelParams) Validate() error {
	for _, a := range []struct {
		name    string
		anchors []float64
	}{
		{"hue", p.Hues[:]},
		{"saturation", p.Sats[:]},
		{"lightness", p.Lights[:]},
	} {
		if err := palette.CheckAnchors(a.anchors); err != nil {
			return fmt.Errorf("%w: %s anchors: %w", ErrInvalidConfig, a.name, err)
		}
	}
	for _, v := range []float64{p.SatOffset, p.LightOffset, p.HueSpread, p.SatSpread, p.LightSpread} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: wheel offset or spread is %v", ErrInvalidConfig, v)
		}
	}
	return nil
}

// ParseScene returns the default parameters for the named scene.
func ParseScene(name string) (Params, error) {
	switch name {
	case "gradient":
		return DefaultGradientParams(), nil
	case "flow":
		return DefaultFlowParams(), nil
	case "wheel":
		return DefaultWheelParams(), nil
	default:
		return nil, fmt.Errorf("%w: unknown scene %q", ErrInvalidConfig, name)
	}
}
