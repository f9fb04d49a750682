package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/Hodka_Go/internal/autoplay"
	"github.com/osse101/Hodka_Go/internal/catalog"
	"github.com/osse101/Hodka_Go/internal/config"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/game"
	"github.com/osse101/Hodka_Go/internal/journal"
	"github.com/osse101/Hodka_Go/internal/metrics"
	"github.com/osse101/Hodka_Go/internal/utils"
)

// runReport is the document written to REPORT_PATH
type runReport struct {
	Report  *autoplay.Report `json:"report"`
	Final   game.Snapshot    `json:"final"`
	Journal []*journal.Entry `json:"journal"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Autoplay failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	slog.Info("Catalog loaded",
		"version", cat.Version(),
		"items", len(cat.Items()),
		"archetypes", len(cat.ArchetypeIDs()))

	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("failed to register metrics collector: %w", err)
	}

	g, err := game.New(ctx, cat, game.OptionsFromConfig(cfg, bus))
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	report, err := autoplay.Run(ctx, g, cfg.AutoplaySteps)
	if err != nil {
		return err
	}

	snap := g.Snapshot()
	slog.Info("Run complete",
		"steps", report.Steps,
		"combats", report.Combats,
		"victories", report.Victories,
		"defeats", report.Defeats,
		"escapes", report.Escapes,
		"returns", report.Returns,
		"balance", snap.Balance,
		"health", snap.Vitals.Health,
		"location", snap.Location)
	recent := g.Journal(0)
	for _, entry := range recent[:min(len(recent), 5)] {
		slog.Debug("Combat transcript",
			"session_id", entry.SessionID,
			"archetype", entry.ArchetypeID,
			"outcome", entry.Outcome,
			"turns", entry.Stats.Turns,
			"lines", len(entry.Log))
	}

	if cfg.ReportPath != "" {
		doc := runReport{Report: report, Final: snap, Journal: recent}
		if err := utils.SaveJSON(cfg.ReportPath, doc); err != nil {
			return fmt.Errorf("failed to write run report: %w", err)
		}
		slog.Info("Run report written", "path", cfg.ReportPath)
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cat, err := catalog.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
		}
		return cat, nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}
