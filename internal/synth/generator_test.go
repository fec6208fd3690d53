package synth

import (
	"math"
	"testing"
	"time"
)

func TestGeneratePointCountAndSpacing(t *testing.T) {
	s := Generate(Params{Mode: ModeRandom, FrequencyPerDay: 24, DurationDays: 30,
		NumSinusoids: 3, MaxAmplitude: 10, NoiseMax: 1, ClipMin: -100, ClipMax: 100, Seed: 1})
	if len(s.Points) != 24*30 {
		t.Fatalf("points = %d, want %d", len(s.Points), 24*30)
	}
	if s.RunID == "" {
		t.Error("missing run id")
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !s.Points[0].TS.Equal(want) {
		t.Errorf("first ts = %v, want %v", s.Points[0].TS, want)
	}
	if got := s.Points[1].TS.Sub(s.Points[0].TS); got != time.Hour {
		t.Errorf("spacing = %v, want 1h", got)
	}
}

func TestGenerateExplicitNumPoints(t *testing.T) {
	s := Generate(Params{NumPoints: 100, DurationDays: 1, NumSinusoids: 2,
		MaxAmplitude: 5, ClipMin: -50, ClipMax: 50, Seed: 2})
	if len(s.Points) != 100 {
		t.Fatalf("points = %d, want 100", len(s.Points))
	}
}

func TestGenerateSeededDeterminism(t *testing.T) {
	p := Default()
	p.DurationDays = 2
	p.Seed = 42
	a := Generate(p)
	b := Generate(p)
	for i := range a.Points {
		if a.Points[i].Value != b.Points[i].Value {
			t.Fatalf("seeded runs diverge at %d: %v vs %v", i, a.Points[i].Value, b.Points[i].Value)
		}
	}
}

func TestGenerateClipping(t *testing.T) {
	p := Default()
	p.DurationDays = 5
	p.ClipMin, p.ClipMax = -10, 10
	p.Seed = 7
	s := Generate(p)
	for _, pt := range s.Points {
		if pt.Value < -10 || pt.Value > 10 {
			t.Fatalf("value %v outside clip range", pt.Value)
		}
	}
}

func TestManualModeUsesDeclaredComponents(t *testing.T) {
	p := Params{Mode: ModeManual, NumPoints: 10, DurationDays: 1, NumSinusoids: 1,
		ManualAmplitudes: []float64{2}, ManualPhases: []float64{0}, ManualOffsets: []float64{5},
		NoiseMin: 0, NoiseMax: 0, ClipMin: -100, ClipMax: 100, Seed: 3}
	s := Generate(p)
	// Single sinusoid, zero phase: first sample is exactly the offset.
	if math.Abs(s.Points[0].Value-5) > 1e-9 {
		t.Errorf("first value = %v, want 5", s.Points[0].Value)
	}
}

func TestUptimeBand(t *testing.T) {
	p := Default()
	p.DurationDays = 3
	p.Seed = 9
	up := Uptime(Generate(p))
	for _, pt := range up.Points {
		if pt.Value < 96.4 || pt.Value > 99.01 {
			t.Fatalf("uptime %v outside 96.5-99 band", pt.Value)
		}
	}
}

func TestUptimeEmptySeries(t *testing.T) {
	up := Uptime(Series{RunID: "x"})
	if len(up.Points) != 0 || up.RunID != "x" {
		t.Errorf("Uptime(empty) = %+v", up)
	}
}
