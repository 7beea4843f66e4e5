package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codyseavey/tcg-roi/internal/metrics"
	"github.com/codyseavey/tcg-roi/internal/models"
)

// SnapshotService persists per-run analysis aggregates for history.
type SnapshotService struct {
	db *gorm.DB
}

func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// Record stores the aggregates of one completed run.
func (s *SnapshotService) Record(report models.AnalysisReport) error {
	failed := 0
	for _, o := range report.Outcomes {
		if o.Err != nil {
			failed++
		}
	}

	snapshot := models.AnalysisSnapshot{
		RunID:            uuid.NewString(),
		TakenAt:          report.GeneratedAt,
		SetsRequested:    len(report.Outcomes),
		SetsFailed:       failed,
		TotalProducts:    report.Summary.TotalProducts,
		PositiveROICount: report.Summary.PositiveROICount,
		AverageROI:       report.Summary.AverageROI,
		AverageRisk:      report.Summary.AverageRisk,
	}
	if report.Summary.Best != nil {
		snapshot.BestProductName = report.Summary.Best.ProductName
		snapshot.BestROI = report.Summary.Best.ROIPercent
	}

	if err := s.db.Create(&snapshot).Error; err != nil {
		return err
	}

	metrics.SnapshotsRecordedTotal.Inc()
	log.Printf("Snapshot service: recorded run %s (%d products, avg ROI %.1f%%)",
		snapshot.RunID, snapshot.TotalProducts, snapshot.AverageROI)
	return nil
}

// History retrieves snapshots for a given period, oldest first.
func (s *SnapshotService) History(period string) ([]models.AnalysisSnapshot, error) {
	now := time.Now()
	var startDate time.Time

	switch period {
	case "week":
		startDate = now.AddDate(0, 0, -7)
	case "month":
		startDate = now.AddDate(0, -1, 0)
	case "3month":
		startDate = now.AddDate(0, -3, 0)
	case "year":
		startDate = now.AddDate(-1, 0, 0)
	case "all":
		startDate = time.Time{} // No filter
	default:
		startDate = now.AddDate(0, -1, 0) // Default to 1 month
	}

	query := s.db.Order("taken_at ASC")
	if !startDate.IsZero() {
		query = query.Where("taken_at >= ?", startDate)
	}

	var snapshots []models.AnalysisSnapshot
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// Latest returns the most recent snapshot, nil when none exist.
func (s *SnapshotService) Latest() *models.AnalysisSnapshot {
	var snapshot models.AnalysisSnapshot
	if err := s.db.Order("taken_at DESC").First(&snapshot).Error; err != nil {
		return nil
	}
	return &snapshot
}
