package monitor

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/clcc/cablegnosis/internal/database/repository"
	"github.com/clcc/cablegnosis/internal/synth"
)

// WindowSize is the number of recent samples a metric pane shows.
const WindowSize = 30

// ErrUnknownMetric is returned for metrics outside the allowed set.
var ErrUnknownMetric = fmt.Errorf("unknown metric")

// Metrics lists the allowed metric names.
func Metrics() []string { return []string{"load", "temp"} }

func allowed(metric string) bool {
	for _, m := range Metrics() {
		if m == metric {
			return true
		}
	}
	return false
}

// Service serves metric windows for the monitoring panes, backed by the
// readings store and the synthetic generator.
type Service struct {
	Readings  *repository.ReadingRepo
	Generator synth.Params
	ExportDir string
}

// Window returns the most recent WindowSize readings for a metric,
// oldest first. Unknown metrics are a typed error, not a crash.
func (s *Service) Window(ctx context.Context, metric string) ([]repository.Reading, error) {
	if !allowed(metric) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	readings, err := s.Readings.Window(ctx, metric, WindowSize)
	if err != nil {
		return nil, fmt.Errorf("window %s: %w", metric, err)
	}
	return readings, nil
}

// UptimeKPI derives the platform-uptime indicator from the most recent
// load window: the raw series is rebased into the 96.5-99 % band and
// the newest point is reported. Returns ok=false when no readings are
// stored yet.
func (s *Service) UptimeKPI(ctx context.Context) (float64, bool, error) {
	readings, err := s.Window(ctx, "load")
	if err != nil {
		return 0, false, err
	}
	if len(readings) == 0 {
		return 0, false, nil
	}
	series := synth.Series{Points: make([]synth.Point, len(readings))}
	for i, r := range readings {
		series.Points[i] = synth.Point{TS: r.TS, Value: r.Value}
	}
	up := synth.Uptime(series)
	return up.Points[len(up.Points)-1].Value, true, nil
}

// SeedIfEmpty generates and stores a synthetic series for every allowed
// metric that has no readings yet. Idempotent across restarts.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	for _, metric := range Metrics() {
		n, err := s.Readings.Count(ctx, metric)
		if err != nil {
			return fmt.Errorf("count %s: %w", metric, err)
		}
		if n > 0 {
			continue
		}
		series := synth.Generate(s.Generator)
		batch := make([]repository.Reading, len(series.Points))
		for i, pt := range series.Points {
			batch[i] = repository.Reading{
				RunID:  series.RunID,
				Metric: metric,
				TS:     pt.TS,
				Value:  pt.Value,
			}
		}
		if err := s.Readings.InsertBatch(ctx, batch); err != nil {
			return fmt.Errorf("seed %s: %w", metric, err)
		}
	}
	return nil
}

// ExportCSV writes a metric's full recent window to
// <ExportDir>/ucy_<metric>.csv with timestamp,value rows and returns
// the file path.
func (s *Service) ExportCSV(ctx context.Context, metric string) (string, error) {
	readings, err := s.Window(ctx, metric)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(s.ExportDir, fmt.Sprintf("ucy_%s.csv", metric))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"timestamp", "value"}); err != nil {
		return "", err
	}
	for _, r := range readings {
		row := []string{
			r.TS.UTC().Format(time.RFC3339),
			strconv.FormatFloat(r.Value, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
