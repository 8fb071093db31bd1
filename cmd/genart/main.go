// Command genart renders one of the genart compositions and saves it as PNG.
//
// It does what the demo application's Save button does, without a window:
//
//	genart -scene wheel -scale 4 -output output/color.png
//	genart -scene wheel -random -seed 42
//	genart -scene flow -basis simplex -v
//	genart -scene gradient -scale 4 -thumb 256
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/genart"
)

func main() {
	var (
		scene   = flag.String("scene", "wheel", "composition: gradient, flow or wheel")
		width   = flag.Int("width", genart.PreviewWidth, "logical image width")
		height  = flag.Int("height", genart.PreviewHeight, "logical image height")
		scale   = flag.Float64("scale", genart.DefaultPrintScale, "print scale (clamped to [0.36, 10.8])")
		output  = flag.String("output", "output/color.png", "output file")
		random  = flag.Bool("random", false, "randomize the wheel anchors")
		seed    = flag.Uint64("seed", 0, "seed for -random (0 uses the clock)")
		stop    = flag.Float64("stop", 0.5, "gradient: radial middle stop")
		basis   = flag.String("basis", "perlin", "flow: noise basis, perlin or simplex")
		thumb   = flag.Int("thumb", 0, "also write a thumbnail this many pixels wide (0 disables)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		genart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	params, err := genart.ParseScene(*scene)
	if err != nil {
		log.Fatalf("genart: %v", err)
	}
	switch p := params.(type) {
	case genart.GradientParams:
		p.RadialMiddleStop = *stop
		params = p
	case genart.FlowParams:
		switch *basis {
		case "perlin":
			p.Basis = genart.NoisePerlin
		case "simplex":
			p.Basis = genart.NoiseSimplex
		default:
			log.Fatalf("genart: unknown basis %q", *basis)
		}
		params = p
	case genart.WheelParams:
		if *random {
			s := *seed
			if s == 0 {
				s = uint64(time.Now().UnixNano())
			}
			params = genart.RandomWheelParams(rand.New(rand.NewPCG(s, s)))
		}
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("genart: %v", err)
		}
	}

	s := genart.ClampPrintScale(*scale)
	buf, err := genart.Render(*width, *height, s, params)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := buf.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	if *thumb > 0 {
		h := max(1, *thumb*buf.Height()/buf.Width())
		small, err := buf.Resize(*thumb, h)
		if err != nil {
			log.Fatalf("Failed to resize: %v", err)
		}
		ext := filepath.Ext(*output)
		path := strings.TrimSuffix(*output, ext) + "_thumb" + ext
		if err := small.SavePNG(path); err != nil {
			log.Fatalf("Failed to save thumbnail: %v", err)
		}
		log.Printf("thumbnail saved to %s (%dx%d)\n", path, *thumb, h)
	}

	log.Printf("%s saved to %s (%dx%d at scale %.2f)\n", params.Name(), *output, *width, *height, s)
}
