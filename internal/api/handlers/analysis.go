package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codyseavey/tcg-roi/internal/services"
)

const (
	defaultSetCount = 15
	maxSetCount     = 30
	maxCustomSets   = 15
)

type AnalysisHandler struct {
	analysis     *services.AnalysisService
	resolver     *services.SetResolver
	worker       *services.ReportWorker
	topCardLimit int
}

func NewAnalysisHandler(analysis *services.AnalysisService, resolver *services.SetResolver, worker *services.ReportWorker, topCardLimit int) *AnalysisHandler {
	return &AnalysisHandler{
		analysis:     analysis,
		resolver:     resolver,
		worker:       worker,
		topCardLimit: topCardLimit,
	}
}

// Analyze runs a fresh analysis. With a "sets" query parameter the given
// comma-separated names are analyzed; otherwise the most recently
// released sets are used, count controlled by "limit".
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	setNames, err := h.setsToAnalyze(c)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load available sets: " + err.Error()})
		return
	}
	if len(setNames) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no sets matched the request"})
		return
	}

	report := h.analysis.Run(setNames, h.topCardLimit)

	failed := 0
	for _, o := range report.Outcomes {
		if o.Err != nil {
			failed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          report.Results,
		"summary":       report.Summary,
		"sets_analyzed": len(setNames),
		"sets_failed":   failed,
		"generated_at":  report.GeneratedAt.Format(time.RFC3339),
	})
}

// LatestReport returns the background worker's cached report.
func (h *AnalysisHandler) LatestReport(c *gin.Context) {
	report := h.worker.LatestReport()
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis run has completed yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         report.Results,
		"summary":      report.Summary,
		"generated_at": report.GeneratedAt.Format(time.RFC3339),
	})
}

// Status returns the report worker's scheduling state.
func (h *AnalysisHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.worker.GetStatus())
}

// setsToAnalyze resolves the request parameters to a list of set names.
func (h *AnalysisHandler) setsToAnalyze(c *gin.Context) ([]string, error) {
	if custom := c.Query("sets"); custom != "" {
		var names []string
		for _, part := range strings.Split(custom, ",") {
			if name := strings.ToLower(strings.TrimSpace(part)); name != "" {
				names = append(names, name)
			}
			if len(names) == maxCustomSets {
				break
			}
		}
		return names, nil
	}

	limit := defaultSetCount
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxSetCount {
		limit = maxSetCount
	}

	sets, err := h.resolver.ListSets()
	if err != nil {
		return nil, err
	}

	// Newest releases first.
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].ReleasedAt > sets[j].ReleasedAt
	})
	if len(sets) > limit {
		sets = sets[:limit]
	}

	names := make([]string, len(sets))
	for i, s := range sets {
		names[i] = strings.ToLower(s.Name)
	}
	return names, nil
}
