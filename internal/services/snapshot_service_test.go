package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/codyseavey/tcg-roi/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.AnalysisSnapshot{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func reportAt(taken time.Time, avgROI float64) models.AnalysisReport {
	best := models.AnalysisResult{ProductName: "Destined Rivals Booster Box", ROIPercent: 575}
	return models.AnalysisReport{
		Results: []models.AnalysisResult{best},
		Outcomes: []models.SetOutcome{
			{SetName: "destined rivals", Results: []models.AnalysisResult{best}},
			{SetName: "bad set", Err: errors.New("upstream down")},
		},
		Summary: models.Summary{
			TotalProducts:    1,
			PositiveROICount: 1,
			AverageROI:       avgROI,
			AverageRisk:      3.5,
			Best:             &best,
		},
		GeneratedAt: taken,
	}
}

func TestSnapshotRecordAndLatest(t *testing.T) {
	service := NewSnapshotService(testDB(t))

	if service.Latest() != nil {
		t.Fatal("expected no snapshot before the first record")
	}

	if err := service.Record(reportAt(time.Now(), 120.5)); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	latest := service.Latest()
	if latest == nil {
		t.Fatal("expected a snapshot")
	}
	if latest.SetsRequested != 2 || latest.SetsFailed != 1 {
		t.Errorf("sets requested/failed = %d/%d, want 2/1", latest.SetsRequested, latest.SetsFailed)
	}
	if latest.BestProductName != "Destined Rivals Booster Box" {
		t.Errorf("BestProductName = %q", latest.BestProductName)
	}
	if latest.RunID == "" {
		t.Error("expected a generated run id")
	}
}

func TestSnapshotHistoryPeriods(t *testing.T) {
	service := NewSnapshotService(testDB(t))

	now := time.Now()
	for _, taken := range []time.Time{
		now.AddDate(0, 0, -2),
		now.AddDate(0, 0, -20),
		now.AddDate(0, -6, 0),
	} {
		if err := service.Record(reportAt(taken, 100)); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	tests := []struct {
		period string
		want   int
	}{
		{"week", 1},
		{"month", 2},
		{"year", 3},
		{"all", 3},
		{"bogus", 2}, // falls back to month
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			snapshots, err := service.History(tt.period)
			if err != nil {
				t.Fatalf("History(%q) error: %v", tt.period, err)
			}
			if len(snapshots) != tt.want {
				t.Errorf("History(%q) returned %d snapshots, want %d", tt.period, len(snapshots), tt.want)
			}
		})
	}
}

func TestSnapshotHistoryOrderedOldestFirst(t *testing.T) {
	service := NewSnapshotService(testDB(t))

	now := time.Now()
	for _, taken := range []time.Time{
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -5),
		now.AddDate(0, 0, -3),
	} {
		if err := service.Record(reportAt(taken, 100)); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	snapshots, err := service.History("week")
	if err != nil {
		t.Fatalf("History() error: %v", err)
	}
	for i := 1; i < len(snapshots); i++ {
		if snapshots[i].TakenAt.Before(snapshots[i-1].TakenAt) {
			t.Errorf("snapshots not in ascending order at index %d", i)
		}
	}
}
