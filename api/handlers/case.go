package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/evidence-for-accountability/ecc-tracker-api/config"
	"github.com/evidence-for-accountability/ecc-tracker-api/filter"
	"github.com/evidence-for-accountability/ecc-tracker-api/models"
	"github.com/evidence-for-accountability/ecc-tracker-api/store"
)

// Case exported for testing purposes
type Case struct {
	Store *store.CaseStore
}

// CreateCaseRequest holds the raw create-case form values. Everything
// arrives as free text; numbers and dates are coerced with typed
// defaults rather than rejected, so an incomplete form still produces a
// valid record.
type CreateCaseRequest struct {
	Title              string `json:"title"`
	CaseType           string `json:"caseType"`
	Division           string `json:"division"`
	Type               string `json:"type"`
	SiteName           string `json:"siteName"`
	Subject            string `json:"subject"`
	Complainant        string `json:"complainant"`
	Respondent         string `json:"respondent"`
	FilingDate         string `json:"filingDate"`
	HearingDates       string `json:"hearingDates"` // comma separated YYYY-MM-DD
	VerdictDate        string `json:"verdictDate"`
	FiledStatus        string `json:"filedStatus"`
	VerdictSummary     string `json:"verdictSummary"`
	EnfAgency          string `json:"enfAgency"`
	ComplianceDeadline string `json:"complianceDeadline"`
	OfficerName        string `json:"officerName"`
	OfficerDesignation string `json:"officerDesignation"`
	BudgetAllocated    string `json:"budgetAllocated"`
	ImplStatus         string `json:"implStatus"`
	ActionPlan         string `json:"actionPlan"` // one "name: status" per line
	AreaEncroached     string `json:"areaEncroached"`
	AreaRecovered      string `json:"areaRecovered"`
	FineLevied         string `json:"fineLevied"`
	FineCollected      string `json:"fineCollected"`
}

// ListCasesHandler returns the cases matching the free-text query and
// dropdown filters, in store order
func (h Case) ListCasesHandler(w http.ResponseWriter, r *http.Request) {
	sel := filter.Selection{
		Division: r.URL.Query().Get("division"),
		Type:     r.URL.Query().Get("type"),
		Status:   r.URL.Query().Get("status"),
	}
	matched := filter.Apply(h.Store.All(), r.URL.Query().Get("q"), sel)

	b, err := json.Marshal(matched)
	if err != nil {
		config.ErrorStatus("failed to marshal cases", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseBySlugHandler returns one case looked up by its slug (or raw id)
func (h Case) CaseBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["case_slug"]

	c, ok := h.Store.FindBySlug(slug)
	if !ok {
		config.ErrorStatus("failed to find case", http.StatusNotFound, w, fmt.Errorf("no case with slug %q", slug))
		return
	}

	b, err := json.Marshal(c)
	if err != nil {
		config.ErrorStatus("failed to marshal case", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCaseHandler builds a case from the submitted form values and
// prepends it to the store
func (h Case) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	c := req.toCase()

	// a random 4-digit sequence can collide with an existing id; the
	// collision is recoverable, so retry with a fresh draw
	var err error
	for attempt := 0; attempt < 5; attempt++ {
		c.CaseID = newCaseID(c.Division, c.FilingDate)
		c.Slug = models.SlugFromCaseID(c.CaseID)
		err = h.Store.Add(c)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrDuplicateID) {
			config.ErrorStatus("failed to add case", http.StatusInternalServerError, w, err)
			return
		}
	}
	if err != nil {
		config.ErrorStatus("failed to allocate a case id", http.StatusConflict, w, err)
		return
	}

	b, err := json.Marshal(c)
	if err != nil {
		config.ErrorStatus("failed to marshal case", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// newCaseID builds ECC/<DIV3>/<YEAR>/<SEQ4> with a random 4-digit
// sequence. division has been validated against the enum by this
// point; anything else falls back to the DHK prefix so the id stays
// ASCII.
func newCaseID(division, filingDate string) string {
	div := "DHK"
	if len(division) >= 3 && division[0] < utf8.RuneSelf && division[1] < utf8.RuneSelf && division[2] < utf8.RuneSelf {
		div = division[:3]
	}
	year := "2025"
	if len(filingDate) >= 4 {
		year = filingDate[:4]
	}
	return fmt.Sprintf("ECC/%s/%s/%04d", strings.ToUpper(div), year, 1000+rand.Intn(9000))
}

// pickEnum returns value when it is one of the allowed options and the
// form's starting default otherwise
func pickEnum(value string, options []string, fallback string) string {
	for _, o := range options {
		if o == value {
			return o
		}
	}
	return fallback
}

func (req CreateCaseRequest) toCase() models.Case {
	// the division and type dropdowns only ever submit enum values; a
	// raw API caller gets the same defaults the form starts with
	division := pickEnum(req.Division, models.Divisions, "Dhaka")
	encType := pickEnum(req.Type, models.EncroachTypes, "River")

	verdictDate := parseDateOrEmpty(req.VerdictDate)

	// the status must agree with the verdict's presence whatever the
	// form said
	filedStatus := req.FiledStatus
	if verdictDate != "" {
		filedStatus = models.StatusVerdictGiven
	} else if filedStatus == "" || filedStatus == models.StatusVerdictGiven {
		filedStatus = models.StatusFiled
	}

	title := req.Title
	if title == "" {
		respondent := req.Respondent
		if respondent == "" {
			respondent = "Respondent"
		}
		title = "People vs " + respondent
	}

	implStatus := req.ImplStatus
	if implStatus == "" {
		implStatus = models.StatusPending
	}

	return models.Case{
		Title:          title,
		Division:       division,
		Type:           encType,
		SiteName:       req.SiteName,
		Subject:        req.Subject,
		Complainant:    req.Complainant,
		Respondent:     req.Respondent,
		CaseType:       req.CaseType,
		FilingDate:     parseDateOrEmpty(req.FilingDate),
		HearingDates:   parseHearingDates(req.HearingDates),
		VerdictDate:    verdictDate,
		FiledStatus:    filedStatus,
		VerdictSummary: req.VerdictSummary,
		Enforcement: models.Enforcement{
			Agency:               req.EnfAgency,
			ComplianceDeadline:   parseDateOrEmpty(req.ComplianceDeadline),
			OfficerName:          req.OfficerName,
			OfficerDesignation:   req.OfficerDesignation,
			BudgetAllocated:      parseAmount(req.BudgetAllocated),
			ImplementationStatus: implStatus,
			ActionPlan:           parseActionPlan(req.ActionPlan),
		},
		Metrics: models.Metrics{
			AreaEncroachedAcres: parseAcres(req.AreaEncroached),
			AreaRecoveredAcres:  parseAcres(req.AreaRecovered),
			FineLevied:          parseAmount(req.FineLevied),
			FineCollected:       parseAmount(req.FineCollected),
		},
	}
}

// parseDateOrEmpty returns the trimmed value when it is a valid
// YYYY-MM-DD date and the empty string (absent) otherwise
func parseDateOrEmpty(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := models.ParseDate(s); err != nil {
		return ""
	}
	return s
}

func parseHearingDates(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if d := parseDateOrEmpty(part); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// parseAmount coerces a currency field, defaulting to 0 on anything
// unusable
func parseAmount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseAcres(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseActionPlan turns "name: status" lines into ordered phases
func parseActionPlan(s string) []models.Phase {
	var out []models.Phase
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, status, found := strings.Cut(line, ":")
		phase := models.Phase{Phase: len(out) + 1, Name: strings.TrimSpace(name), Status: "Pending"}
		if phase.Name == "" {
			phase.Name = fmt.Sprintf("Phase %d", phase.Phase)
		}
		if found && strings.TrimSpace(status) != "" {
			phase.Status = strings.TrimSpace(status)
		}
		out = append(out, phase)
	}
	return out
}
