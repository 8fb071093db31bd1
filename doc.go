// Package genart renders procedural compositions into RGBA pixel buffers.
//
// # Overview
//
// genart is the drawing core of an interactive generative-art demo. A UI
// shell owns the window, the sliders and the file dialogs; on every refresh
// it hands an immutable parameter value to [Render] and shows the result,
// and on export it renders again at a larger scale and writes a PNG.
// All rasterization goes through github.com/gogpu/gg.
//
// # Quick Start
//
//	import "github.com/gogpu/genart"
//
//	// Preview at 1:1
//	buf, err := genart.Render(1000, 1000, 1, genart.DefaultWheelParams())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Export the same composition at print scale
//	err = genart.Export(1000, 1000, genart.DefaultPrintScale,
//	    genart.DefaultWheelParams(), "color.png")
//
// # Compositions
//
//   - [GradientParams]: a white-to-black background framing five squares
//     filled with one maroon-orange-blue radial gradient.
//   - [FlowParams]: "string art" curves traced through a fractal noise
//     field from Halton-distributed seeds, kept apart by an occupancy grid,
//     each finished with two pearls.
//   - [WheelParams]: a banded HSLuv spectrum, one color per pixel column.
//
// # Determinism
//
// Render has no hidden state. Noise fields use a fixed seed, pearl sizes
// come from a generator seeded per render (see [WithPearlSeed]), and trace
// order follows the Halton sequence, so identical calls produce
// byte-identical buffers. Separate calls share nothing and may run
// concurrently.
//
// # Pixel Format
//
// A [Buffer] stores straight (non-premultiplied) RGBA, 8 bits per channel,
// row-major with no padding.
package genart
