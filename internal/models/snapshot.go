package models

import "time"

// AnalysisSnapshot stores the aggregates of one completed analysis run
// for historical tracking.
type AnalysisSnapshot struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	RunID            string    `json:"run_id" gorm:"uniqueIndex;not null"`
	TakenAt          time.Time `json:"taken_at" gorm:"index;not null"`
	SetsRequested    int       `json:"sets_requested"`
	SetsFailed       int       `json:"sets_failed"`
	TotalProducts    int       `json:"total_products"`
	PositiveROICount int       `json:"positive_roi_count"`
	AverageROI       float64   `json:"average_roi"`
	AverageRisk      float64   `json:"average_risk"`
	BestProductName  string    `json:"best_product_name"`
	BestROI          float64   `json:"best_roi"`
	CreatedAt        time.Time `json:"created_at"`
}

// SnapshotHistoryResponse is the API response for snapshot history.
type SnapshotHistoryResponse struct {
	Snapshots []AnalysisSnapshot `json:"snapshots"`
	Period    string             `json:"period"` // "week", "month", "3month", "year", "all"
}
