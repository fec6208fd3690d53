package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/clcc/cablegnosis/internal/config"
	"github.com/clcc/cablegnosis/internal/database"
	"github.com/clcc/cablegnosis/internal/database/repository"
	"github.com/clcc/cablegnosis/internal/monitor"
	"github.com/clcc/cablegnosis/internal/nav"
	"github.com/clcc/cablegnosis/internal/registry"
	"github.com/clcc/cablegnosis/internal/search"
	"github.com/clcc/cablegnosis/internal/synth"
	"github.com/clcc/cablegnosis/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if _, err := os.Stat(config.DefaultPath()); os.IsNotExist(err) {
		if err := config.Save(cfg); err != nil {
			log.Printf("write default config: %v", err)
		}
	}

	logger, err := startupLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	reg := registry.Load(registry.Manifest(), logger)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	mon := &monitor.Service{
		Readings: repository.NewReadingRepo(db),
		Generator: synth.Params{
			Mode:            synth.ModeRandom,
			FrequencyPerDay: cfg.Generator.FrequencyPerDay,
			DurationDays:    cfg.Generator.DurationDays,
			NumSinusoids:    cfg.Generator.NumSinusoids,
			MaxAmplitude:    40,
			MaxDCOffset:     10,
			NoiseMin:        -5,
			NoiseMax:        20,
			ClipMin:         -50,
			ClipMax:         150,
			Seed:            cfg.Generator.Seed,
		},
		ExportDir: cfg.Monitoring.ExportDir,
	}
	if err := mon.SeedIfEmpty(ctx); err != nil {
		log.Fatalf("seed readings: %v", err)
	}

	state := nav.NewState(reg)
	if nav.Mode(cfg.Orchestrator.DefaultMode).Enabled() {
		state = nav.Reduce(reg, state, nav.SelectMode{Mode: nav.Mode(cfg.Orchestrator.DefaultMode)})
	}

	index := search.NewIndex(reg)
	keys := tui.NewKeyRegistry(tui.DefaultKeyBindings())

	p := tea.NewProgram(
		tui.NewModel(reg, state, index, mon, keys, cfg.Orchestrator.SearchLimit),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// startupLogger writes structured diagnostics to a file so they never
// corrupt the alternate screen.
func startupLogger() (*zap.Logger, error) {
	dir := filepath.Join(os.Getenv("HOME"), ".local", "share", "cablegnosis")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, "cablegnosis.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	return cfg.Build()
}
