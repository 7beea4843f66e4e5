package services

import (
	"testing"
	"time"
)

func TestReportWorkerCachesLatestReport(t *testing.T) {
	analysis := newAnalysisService(t, analysisFetcher(t, ""))
	worker := NewReportWorker(analysis, nil, []string{"destined rivals"}, 20, time.Hour)

	if worker.LatestReport() != nil {
		t.Fatal("expected no cached report before the first run")
	}

	report := worker.RunOnce()
	if len(report.Results) == 0 {
		t.Fatal("expected results from the run")
	}

	cached := worker.LatestReport()
	if cached == nil {
		t.Fatal("expected a cached report after the run")
	}
	if len(cached.Results) != len(report.Results) {
		t.Errorf("cached %d results, ran %d", len(cached.Results), len(report.Results))
	}
}

func TestReportWorkerStatus(t *testing.T) {
	analysis := newAnalysisService(t, analysisFetcher(t, ""))
	worker := NewReportWorker(analysis, nil, []string{"destined rivals", "lost origin"}, 20, 30*time.Minute)

	status := worker.GetStatus()
	if status.HasCachedRun {
		t.Error("fresh worker should not report a cached run")
	}
	if status.WatchlistSize != 2 {
		t.Errorf("WatchlistSize = %d, want 2", status.WatchlistSize)
	}

	worker.RunOnce()

	status = worker.GetStatus()
	if !status.HasCachedRun {
		t.Error("expected a cached run after RunOnce")
	}
	if status.RunsToday != 1 {
		t.Errorf("RunsToday = %d, want 1", status.RunsToday)
	}
	if got := status.NextRunTime.Sub(status.LastRunTime); got != 30*time.Minute {
		t.Errorf("next run offset = %v, want 30m", got)
	}
}

func TestNewReportWorkerDefaultsInterval(t *testing.T) {
	worker := NewReportWorker(nil, nil, nil, 20, 0)
	if worker.interval != time.Hour {
		t.Errorf("interval = %v, want 1h", worker.interval)
	}
}
