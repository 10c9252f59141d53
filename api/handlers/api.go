package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/evidence-for-accountability/ecc-tracker-api/api"
	"github.com/evidence-for-accountability/ecc-tracker-api/config"
	"github.com/evidence-for-accountability/ecc-tracker-api/dataset"
	"github.com/evidence-for-accountability/ecc-tracker-api/models"
	"github.com/evidence-for-accountability/ecc-tracker-api/store"
)

// App stores the router and the session case store, so it can be reused
type App struct {
	Router *mux.Router
	Store  *store.CaseStore
	Config config.Config
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	c := Case{Store: a.Store}
	st := Stats{Store: a.Store}
	ex := Export{Store: a.Store}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.RequestLogger)

	apiCreate.Handle("/cases", http.HandlerFunc(c.ListCasesHandler)).Methods("GET")
	apiCreate.Handle("/cases", http.HandlerFunc(c.CreateCaseHandler)).Methods("POST")
	apiCreate.Handle("/cases/{case_slug}", http.HandlerFunc(c.CaseBySlugHandler)).Methods("GET")

	apiCreate.Handle("/stats", http.HandlerFunc(st.StatsHandler)).Methods("GET")
	apiCreate.Handle("/export", http.HandlerFunc(ex.ExportHandler)).Methods("GET")

	return r
}

// Initialize is invoked by main to seed the session dataset and create
// a router
func (a *App) Initialize() error {

	seedCase, generated, err := dataset.Generate(a.Config.DatasetSeed, a.Config.DatasetCount)
	if err != nil {
		zap.S().With(err).Error("failed to generate the session dataset")
		return err
	}

	cases := append([]models.Case{seedCase}, generated...)
	a.Store, err = store.New(cases...)
	if err != nil {
		zap.S().With(err).Error("failed to seed the case store")
		return err
	}
	zap.S().Infow("ecc-tracker-api seeded the session dataset",
		"seed", a.Config.DatasetSeed,
		"cases", a.Store.Len(),
	)

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
