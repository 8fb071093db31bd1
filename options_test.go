package genart

import (
	"testing"

	"github.com/gogpu/gg"
)

// TestDefaultOptions tests the option values used when none are given.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.pearlSeed != 0 {
		t.Errorf("pearlSeed = %d, want 0", o.pearlSeed)
	}
	if o.sampleSeed != 0 {
		t.Errorf("sampleSeed = %d, want 0", o.sampleSeed)
	}
	if o.background.A != 1 || o.ink.A != 1 || o.pearl.A != 1 {
		t.Error("default colors should be opaque")
	}
}

// TestOptionsApply tests that each option sets its field.
func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithPearlSeed(11),
		WithSampleSeed(99),
		WithBackground(gg.Black),
		WithInk(gg.White),
		WithPearlColor(gg.Red),
	} {
		opt(&o)
	}

	if o.pearlSeed != 11 {
		t.Errorf("pearlSeed = %d, want 11", o.pearlSeed)
	}
	if o.sampleSeed != 99 {
		t.Errorf("sampleSeed = %d, want 99", o.sampleSeed)
	}
	if o.background != gg.Black {
		t.Errorf("background = %v, want black", o.background)
	}
	if o.ink != gg.White {
		t.Errorf("ink = %v, want white", o.ink)
	}
	if o.pearl != gg.Red {
		t.Errorf("pearl = %v, want red", o.pearl)
	}
}

// TestPearlSeedChangesFlowScene tests that the pearl generator is seeded
// from the option rather than from hidden state.
func TestPearlSeedChangesFlowScene(t *testing.T) {
	p := smallFlowParams()
	a, err := Render(160, 120, 1, p)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	b, err := Render(160, 120, 1, p, WithPearlSeed(0))
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if !a.Equal(b) {
		t.Error("explicit seed 0 should match the default")
	}

	c, err := Render(160, 120, 1, p, WithPearlSeed(12345))
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if a.Equal(c) {
		t.Error("a different pearl seed should change the image")
	}
}
