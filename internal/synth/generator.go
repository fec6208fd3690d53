package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// epoch is the fixed start of every generated series.
var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Point is one generated sample.
type Point struct {
	TS    time.Time
	Value float64
}

// Series is one generation run.
type Series struct {
	RunID  string
	Points []Point
}

// Mode selects how the sinusoid parameters are chosen.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeManual Mode = "manual"
)

// Params drives one generation run. Zero-value fields fall back to the
// defaults of Default().
type Params struct {
	Mode Mode

	// NumPoints overrides the derived point count when > 0; otherwise
	// FrequencyPerDay * DurationDays points are produced.
	NumPoints       int
	FrequencyPerDay int
	DurationDays    int

	NumSinusoids int
	MaxAmplitude float64
	MaxDCOffset  float64

	// Manual-mode arrays, truncated to NumSinusoids. Ignored in random
	// mode; nil entries fall back to the built-in defaults.
	ManualAmplitudes []float64
	ManualPhases     []float64
	ManualOffsets    []float64

	NoiseMin float64
	NoiseMax float64

	ClipMin float64
	ClipMax float64

	// Seed fixes the random source; 0 means time-seeded.
	Seed int64
}

// Default mirrors the historical generator defaults: a year of hourly
// points from ten harmonics.
func Default() Params {
	return Params{
		Mode:            ModeRandom,
		FrequencyPerDay: 24,
		DurationDays:    365,
		NumSinusoids:    10,
		MaxAmplitude:    60,
		MaxDCOffset:     20,
		NoiseMin:        -5,
		NoiseMax:        40,
		ClipMin:         -120,
		ClipMax:         200,
	}
}

var (
	defaultManualAmps = []float64{50, 40, 30, 25, 20, 15, 10, 8, 5, 3}
	defaultManualPhs  = []float64{
		0, math.Pi / 6, math.Pi / 4, math.Pi / 3, math.Pi / 2,
		math.Pi, 3 * math.Pi / 2, math.Pi / 8, math.Pi / 5, math.Pi / 7,
	}
)

// Generate produces a multi-sinusoid series: harmonics of a base
// frequency spanning the window, plus uniform high-frequency noise,
// clipped to [ClipMin, ClipMax]. Timestamps start at the 2025-01-01
// epoch at the resolution implied by the point count.
func Generate(p Params) Series {
	if p.Mode == "" {
		p.Mode = ModeRandom
	}
	if p.FrequencyPerDay <= 0 {
		p.FrequencyPerDay = 24
	}
	if p.DurationDays <= 0 {
		p.DurationDays = 365
	}
	if p.NumSinusoids <= 0 {
		p.NumSinusoids = 10
	}

	var total int
	var dt time.Duration
	if p.NumPoints > 0 {
		total = p.NumPoints
		dt = time.Duration(float64(p.DurationDays) * 24 * float64(time.Hour) / float64(total))
	} else {
		total = p.FrequencyPerDay * p.DurationDays
		dt = time.Duration(24 * float64(time.Hour) / float64(p.FrequencyPerDay))
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	amps, phases, offsets := components(p, rng)

	omegaBase := 2 * math.Pi / float64(total)
	points := make([]Point, total)
	for i := 0; i < total; i++ {
		var v float64
		for k := 0; k < p.NumSinusoids; k++ {
			omegaK := omegaBase * float64(k+1)
			v += amps[k]*math.Sin(omegaK*float64(i)+phases[k]) + offsets[k]
		}
		v += p.NoiseMin + rng.Float64()*(p.NoiseMax-p.NoiseMin)
		v = math.Min(math.Max(v, p.ClipMin), p.ClipMax)
		points[i] = Point{TS: epoch.Add(time.Duration(i) * dt), Value: v}
	}
	return Series{RunID: uuid.NewString(), Points: points}
}

func components(p Params, rng *rand.Rand) (amps, phases, offsets []float64) {
	n := p.NumSinusoids
	amps = make([]float64, n)
	phases = make([]float64, n)
	offsets = make([]float64, n)
	if p.Mode == ModeManual {
		copyOrDefault(amps, p.ManualAmplitudes, defaultManualAmps)
		copyOrDefault(phases, p.ManualPhases, defaultManualPhs)
		copyOrDefault(offsets, p.ManualOffsets, nil)
		return amps, phases, offsets
	}
	for k := 0; k < n; k++ {
		amps[k] = rng.Float64() * p.MaxAmplitude
		phases[k] = rng.Float64() * 2 * math.Pi
		offsets[k] = -p.MaxDCOffset + rng.Float64()*2*p.MaxDCOffset
	}
	return amps, phases, offsets
}

func copyOrDefault(dst, manual, fallback []float64) {
	src := manual
	if src == nil {
		src = fallback
	}
	for i := range dst {
		if i < len(src) {
			dst[i] = src[i]
		}
	}
}

// Uptime rebases a raw series into a 96.5–99 percent band: shift the
// minimum to zero, then map normalized values onto 99 minus up to 2.5
// points. Post-processing only; the input series is not modified.
func Uptime(s Series) Series {
	out := Series{RunID: s.RunID, Points: make([]Point, len(s.Points))}
	if len(s.Points) == 0 {
		return out
	}
	min := s.Points[0].Value
	for _, pt := range s.Points {
		if pt.Value < min {
			min = pt.Value
		}
	}
	max := 0.0
	for i, pt := range s.Points {
		v := pt.Value - min
		out.Points[i] = Point{TS: pt.TS, Value: v}
		if v > max {
			max = v
		}
	}
	for i := range out.Points {
		out.Points[i].Value = 99 - (out.Points[i].Value/(max+1e-9))*2.5
	}
	return out
}
