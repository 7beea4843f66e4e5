package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/codyseavey/tcg-roi/internal/metrics"
	"github.com/codyseavey/tcg-roi/internal/models"
)

// ReportWorker re-runs the watchlist analysis on an interval and keeps
// the latest report in memory for the API.
type ReportWorker struct {
	analysis  *AnalysisService
	snapshots *SnapshotService

	watchlist   []string
	limitPerSet int
	interval    time.Duration

	mu           sync.RWMutex
	lastReport   *models.AnalysisReport
	lastRunTime  time.Time
	runsToday    int
	lastStatsDay time.Time
}

// WorkerStatus reports the worker's scheduling state.
type WorkerStatus struct {
	LastRunTime    time.Time `json:"last_run_time"`
	NextRunTime    time.Time `json:"next_run_time"`
	RunsToday      int       `json:"runs_today"`
	WatchlistSize  int       `json:"watchlist_size"`
	LimitPerSet    int       `json:"limit_per_set"`
	HasCachedRun   bool      `json:"has_cached_run"`
	IntervalMinute float64   `json:"interval_minutes"`
}

// NewReportWorker creates a worker. snapshots may be nil to disable
// persistence.
func NewReportWorker(analysis *AnalysisService, snapshots *SnapshotService, watchlist []string, limitPerSet int, interval time.Duration) *ReportWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ReportWorker{
		analysis:    analysis,
		snapshots:   snapshots,
		watchlist:   watchlist,
		limitPerSet: limitPerSet,
		interval:    interval,
	}
}

// Start begins the background loop. It runs once immediately, then on
// every tick until the context is cancelled.
func (w *ReportWorker) Start(ctx context.Context) {
	log.Printf("Report worker started: analyzing %d sets every %v", len(w.watchlist), w.interval)

	w.RunOnce()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Report worker stopping...")
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

// RunOnce performs a full watchlist analysis, caches the report, records
// a snapshot, and refreshes the gauges.
func (w *ReportWorker) RunOnce() models.AnalysisReport {
	w.resetDailyStatsIfNeeded()

	report := w.analysis.Run(w.watchlist, w.limitPerSet)

	w.mu.Lock()
	w.lastReport = &report
	w.lastRunTime = time.Now()
	w.runsToday++
	w.mu.Unlock()

	metrics.LastRunProducts.Set(float64(report.Summary.TotalProducts))
	metrics.LastRunPositiveROI.Set(float64(report.Summary.PositiveROICount))
	metrics.LastRunAverageROI.Set(report.Summary.AverageROI)
	metrics.LastRunAverageRisk.Set(report.Summary.AverageRisk)

	if w.snapshots != nil {
		if err := w.snapshots.Record(report); err != nil {
			log.Printf("Report worker: failed to record snapshot: %v", err)
		}
	}

	return report
}

// LatestReport returns the most recent cached report, nil before the
// first run completes.
func (w *ReportWorker) LatestReport() *models.AnalysisReport {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastReport
}

// GetStatus returns the current scheduling status.
func (w *ReportWorker) GetStatus() WorkerStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return WorkerStatus{
		LastRunTime:    w.lastRunTime,
		NextRunTime:    w.lastRunTime.Add(w.interval),
		RunsToday:      w.runsToday,
		WatchlistSize:  len(w.watchlist),
		LimitPerSet:    w.limitPerSet,
		HasCachedRun:   w.lastReport != nil,
		IntervalMinute: w.interval.Minutes(),
	}
}

// resetDailyStatsIfNeeded resets runsToday at midnight.
func (w *ReportWorker) resetDailyStatsIfNeeded() {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if w.lastStatsDay.Before(today) {
		if !w.lastStatsDay.IsZero() {
			log.Printf("Report worker: daily stats reset (previous day: %d runs)", w.runsToday)
		}
		w.runsToday = 0
		w.lastStatsDay = today
	}
}
