// Package noise provides the fractal angle field that steers flow curves.
package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Seed is the fixed seed of every field. Identical parameters always give
// an identical field.
const Seed = 0

// ErrInvalidConfig is returned by New for unusable fractal parameters.
var ErrInvalidConfig = errors.New("noise: invalid field configuration")

// Basis selects the coherent noise summed by the fractal.
type Basis int

const (
	// BasisPerlin is classic gradient noise.
	BasisPerlin Basis = iota
	// BasisSimplex is OpenSimplex noise, with fewer axis-aligned artifacts.
	BasisSimplex
)

// String returns the basis name.
func (b Basis) String() string {
	switch b {
	case BasisPerlin:
		return "perlin"
	case BasisSimplex:
		return "simplex"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// Config describes a fractal noise field.
type Config struct {
	Scale       float64 // spatial frequency applied to pixel coordinates
	Factor      float64 // gain applied to the fractal sum
	Octaves     int     // number of layers, at least 1
	Lacunarity  float64 // frequency multiplier per octave
	Persistence float64 // amplitude multiplier per octave
	Basis       Basis
}

// Field evaluates fractal noise at pixel coordinates.
// A Field holds no mutable state and is safe for concurrent use.
type Field struct {
	cfg  Config
	eval func(x, y float64) float64
}

// New builds a field for cfg.
func New(cfg Config) (*Field, error) {
	if cfg.Octaves < 1 {
		return nil, fmt.Errorf("%w: octaves = %d, need at least 1", ErrInvalidConfig, cfg.Octaves)
	}
	if cfg.Persistence < 0 || math.IsNaN(cfg.Persistence) {
		return nil, fmt.Errorf("%w: persistence = %v", ErrInvalidConfig, cfg.Persistence)
	}

	f := &Field{cfg: cfg}
	switch cfg.Basis {
	case BasisPerlin:
		f.eval = perlinFBM(cfg)
	case BasisSimplex:
		f.eval = simplexFBM(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown basis %v", ErrInvalidConfig, cfg.Basis)
	}
	return f, nil
}

// Config returns the configuration the field was built with.
func (f *Field) Config() Config {
	return f.cfg
}

// Value returns the fractal sum at (x, y), scaled by Factor.
func (f *Field) Value(x, y float64) float64 {
	return f.cfg.Factor * f.eval(x*f.cfg.Scale, y*f.cfg.Scale)
}

// AngleAt returns the flow direction at (x, y) in [0, 2π).
func (f *Field) AngleAt(x, y float64) float64 {
	a := math.Mod(2*math.Pi*f.Value(x, y), 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// perlinFBM uses the octave sum built into go-perlin, which divides each
// layer's amplitude by alpha and multiplies its frequency by beta.
func perlinFBM(cfg Config) func(x, y float64) float64 {
	octaves := int32(cfg.Octaves)
	alpha := 2.0
	if cfg.Persistence > 0 {
		alpha = 1 / cfg.Persistence
	} else {
		// Zero persistence silences every octave after the first.
		octaves = 1
	}
	p := perlin.NewPerlin(alpha, cfg.Lacunarity, octaves, Seed)
	return p.Noise2D
}

func simplexFBM(cfg Config) func(x, y float64) float64 {
	n := opensimplex.New(Seed)
	return func(x, y float64) float64 {
		var sum float64
		amp, freq := 1.0, 1.0
		for i := 0; i < cfg.Octaves; i++ {
			sum += amp * n.Eval2(x*freq, y*freq)
			amp *= cfg.Persistence
			freq *= cfg.Lacunarity
		}
		return sum
	}
}
