package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/evidence-for-accountability/ecc-tracker-api/analytics"
	"github.com/evidence-for-accountability/ecc-tracker-api/config"
	"github.com/evidence-for-accountability/ecc-tracker-api/models"
	"github.com/evidence-for-accountability/ecc-tracker-api/store"
)

// Stats exported for testing purposes
type Stats struct {
	Store *store.CaseStore
}

// StatsResponse holds the dataset snapshot counts together with the
// full analytics result
type StatsResponse struct {
	Snapshot  analytics.Snapshot     `json:"snapshot"`
	Analytics models.AnalyticsResult `json:"analytics"`
}

// StatsHandler computes the dashboard KPIs and distributions over the
// whole store
func (h Stats) StatsHandler(w http.ResponseWriter, r *http.Request) {
	cases := h.Store.All()
	resp := StatsResponse{
		Snapshot:  analytics.Count(cases),
		Analytics: analytics.Analyze(cases),
	}

	zap.S().Infow("stats computed",
		"cases", resp.Snapshot.Total,
		"finesLevied", models.FormatBDT(resp.Analytics.TotalFinesLevied),
		"finesCollected", models.FormatBDT(resp.Analytics.TotalFinesCollected),
	)

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal stats", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
