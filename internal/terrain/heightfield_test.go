package terrain

import (
	"errors"
	"testing"
)

// TestBuildSmallGrid pins the 4x4 scenario: extent 10x10 at the origin, one
// octave at scale 1. The field must hold exactly 16 samples in raster order
// with extrema matching an independent scan.
func TestBuildSmallGrid(t *testing.T) {
	gen := NewGenerator(42)
	spec := GridSpec{
		ExtentX: 10, ExtentZ: 10,
		ResX: 4, ResZ: 4,
		HeightScale: 1,
	}
	params := FBMParams{Octaves: 1, Persistence: 0.5, Lacunarity: 2.0, Scale: 1.0}

	hf, err := gen.BuildHeightField(spec, params)
	if err != nil {
		t.Fatal(err)
	}
	if len(hf.Heights) != 16 {
		t.Fatalf("expected 16 samples, got %d", len(hf.Heights))
	}
	if hf.Width != 4 || hf.Depth != 4 {
		t.Fatalf("expected 4x4, got %dx%d", hf.Width, hf.Depth)
	}

	// Independent extrema scan.
	min, max := hf.Heights[0], hf.Heights[0]
	for _, v := range hf.Heights {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if hf.Min != min || hf.Max != max {
		t.Errorf("extrema [%v, %v] do not match scan [%v, %v]", hf.Min, hf.Max, min, max)
	}
	for _, v := range hf.Heights {
		if v < hf.Min || v > hf.Max {
			t.Errorf("sample %v outside [%v, %v]", v, hf.Min, hf.Max)
		}
	}

	// Spot-check raster order against a direct sample: cell (2, 1) sits at
	// world (2*10/3, 1*10/3).
	synth, err := NewSynthesizer(gen.Source(), params)
	if err != nil {
		t.Fatal(err)
	}
	want := synth.Sample(2.0*10.0/3.0, 1.0*10.0/3.0)
	if got := hf.At(2, 1); got != want {
		t.Errorf("At(2, 1) = %v, expected direct sample %v", got, want)
	}
	if hf.At(2, 1) != hf.Heights[1*hf.Width+2] {
		t.Error("At does not follow row-major raster order")
	}
}

// TestBuildRangeTightness verifies a default-parameter field is not
// degenerate: a 16x16 grid must spread its samples across a real range.
func TestBuildRangeTightness(t *testing.T) {
	gen := NewGenerator(1337)
	spec := GridSpec{
		ExtentX: 256, ExtentZ: 256,
		ResX: 16, ResZ: 16,
		HeightScale: 24,
	}
	hf, err := gen.BuildHeightField(spec, DefaultFBMParams())
	if err != nil {
		t.Fatal(err)
	}
	if !(hf.Min < hf.Max) {
		t.Errorf("expected observedMin < observedMax, got [%v, %v]", hf.Min, hf.Max)
	}
}

// TestBuildValidation verifies bad specs and params fail eagerly with a
// ConfigError and produce no field.
func TestBuildValidation(t *testing.T) {
	gen := NewGenerator(42)
	good := DefaultFBMParams()

	cases := []struct {
		name   string
		spec   GridSpec
		params FBMParams
	}{
		{"resX too small", GridSpec{ExtentX: 10, ExtentZ: 10, ResX: 1, ResZ: 4, HeightScale: 1}, good},
		{"resZ too small", GridSpec{ExtentX: 10, ExtentZ: 10, ResX: 4, ResZ: 0, HeightScale: 1}, good},
		{"bad octaves", GridSpec{ExtentX: 10, ExtentZ: 10, ResX: 4, ResZ: 4, HeightScale: 1}, FBMParams{Octaves: 0, Scale: 1}},
		{"bad scale", GridSpec{ExtentX: 10, ExtentZ: 10, ResX: 4, ResZ: 4, HeightScale: 1}, FBMParams{Octaves: 1, Scale: -1}},
	}
	for _, tc := range cases {
		hf, err := gen.BuildHeightField(tc.spec, tc.params)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected ConfigError, got %T: %v", tc.name, err, err)
		}
		if hf != nil {
			t.Errorf("%s: expected nil field on failure", tc.name)
		}
	}
}

// TestBuildFlatField verifies a zero height scale yields a valid, perfectly
// flat field rather than an error.
func TestBuildFlatField(t *testing.T) {
	gen := NewGenerator(42)
	spec := GridSpec{ExtentX: 10, ExtentZ: 10, ResX: 8, ResZ: 8, HeightScale: 0}
	hf, err := gen.BuildHeightField(spec, DefaultFBMParams())
	if err != nil {
		t.Fatal(err)
	}
	if hf.Min != hf.Max {
		t.Errorf("expected flat field, got range [%v, %v]", hf.Min, hf.Max)
	}
	for i, v := range hf.Heights {
		if v != 0 {
			t.Fatalf("sample %d = %v, expected 0", i, v)
		}
	}
}

// TestBuildDeterministic verifies repeated builds produce identical fields,
// regardless of how rows were scheduled across workers.
func TestBuildDeterministic(t *testing.T) {
	spec := GridSpec{
		OriginX: -50, OriginZ: 30,
		ExtentX: 100, ExtentZ: 100,
		ResX: 33, ResZ: 17,
		HeightScale: 24,
	}
	params := DefaultFBMParams()

	a, err := NewGenerator(99).BuildHeightField(spec, params)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGenerator(99).BuildHeightField(spec, params)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Heights) != len(b.Heights) {
		t.Fatalf("size mismatch: %d != %d", len(a.Heights), len(b.Heights))
	}
	for i := range a.Heights {
		if a.Heights[i] != b.Heights[i] {
			t.Fatalf("sample %d diverged: %v != %v", i, a.Heights[i], b.Heights[i])
		}
	}
	if a.Min != b.Min || a.Max != b.Max {
		t.Errorf("extrema diverged: [%v, %v] != [%v, %v]", a.Min, a.Max, b.Min, b.Max)
	}
}

func BenchmarkBuildHeightField(b *testing.B) {
	gen := NewGenerator(42)
	spec := DefaultGridSpec()
	params := DefaultFBMParams()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.BuildHeightField(spec, params); err != nil {
			b.Fatal(err)
		}
	}
}
