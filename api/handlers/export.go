package handlers

import (
	"net/http"

	"github.com/evidence-for-accountability/ecc-tracker-api/config"
	"github.com/evidence-for-accountability/ecc-tracker-api/models"
	"github.com/evidence-for-accountability/ecc-tracker-api/store"
)

// exportFilename matches the download name the dashboard offers
const exportFilename = "efa_cases.json"

// Export exported for testing purposes
type Export struct {
	Store *store.CaseStore
}

// ExportHandler serializes the full case collection as a pretty-printed
// JSON download
func (h Export) ExportHandler(w http.ResponseWriter, r *http.Request) {
	b, err := models.ExportCases(h.Store.All())
	if err != nil {
		config.ErrorStatus("failed to export cases", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename=`+exportFilename)
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
