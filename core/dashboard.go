package core

import (
	"fmt"
	"time"

	"github.com/edustats/gradeboard/internal/contract"
	"github.com/edustats/gradeboard/internal/loader"
	"github.com/edustats/gradeboard/internal/outwriter"
)

// ExecuteDashboard runs the dashboard command: the journal aggregation pass
// followed by PNG chart rendering instead of console tables.
func ExecuteDashboard(cfg *contract.Config) error {
	start := time.Now()

	table, err := loadJournalTable(cfg)
	if err != nil {
		return err
	}

	analysis := AnalyzeJournal(table, cfg)
	trend := loader.NewGenerator(cfg.Seed).QuarterTrend()

	if err := outwriter.RenderJournalCharts(table, analysis, trend, cfg); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	fmt.Printf("Rendered dashboard charts to %s in %v\n", cfg.ChartDir, time.Since(start))
	return nil
}
