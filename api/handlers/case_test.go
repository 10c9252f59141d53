package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/evidence-for-accountability/ecc-tracker-api/analytics"
	"github.com/evidence-for-accountability/ecc-tracker-api/api/handlers"
	"github.com/evidence-for-accountability/ecc-tracker-api/config"
	"github.com/evidence-for-accountability/ecc-tracker-api/models"
)

func newTestApp(t *testing.T) *handlers.App {
	t.Helper()
	a := &handlers.App{}
	a.Config = config.Config{DatasetSeed: config.DefaultDatasetSeed, DatasetCount: config.DefaultDatasetCount}
	if err := a.Initialize(); err != nil {
		t.Fatal(err)
	}
	return a
}

func TestCase_ListCasesHandler(t *testing.T) {
	a := newTestApp(t)

	req, err := http.NewRequest("GET", "/api/v1/cases", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(handlers.Case{Store: a.Store}.ListCasesHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var cases []models.Case
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cases))
	assert.Len(t, cases, config.DefaultDatasetCount+1)
	assert.Equal(t, "ECC/KHL/2023/0045", cases[0].CaseID)
}

func TestCase_ListCasesHandlerFiltered(t *testing.T) {
	a := newTestApp(t)

	req, err := http.NewRequest("GET", "/api/v1/cases?q=agro&division=Khulna&type=Forest&status=Overdue", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.ListCasesHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var cases []models.Case
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cases))
	assert.Len(t, cases, 1)
	assert.Equal(t, "People vs Global Agro Ltd", cases[0].Title)
}

func TestCase_ListCasesHandlerNoMatches(t *testing.T) {
	a := newTestApp(t)

	req, err := http.NewRequest("GET", "/api/v1/cases?q=nonexistent-token-xyz", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.ListCasesHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestCase_CaseBySlugHandler(t *testing.T) {
	a := newTestApp(t)

	req, err := http.NewRequest("GET", "/api/v1/cases/ECC-KHL-2023-0045", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_slug": "ECC-KHL-2023-0045"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.CaseBySlugHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var c models.Case
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.Equal(t, "ECC/KHL/2023/0045", c.CaseID)
	assert.Equal(t, "Overdue", c.Enforcement.ImplementationStatus)
}

func TestCase_CaseBySlugHandlerNotFound(t *testing.T) {
	a := newTestApp(t)

	req, err := http.NewRequest("GET", "/api/v1/cases/ECC-KHL-2023-9999", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_slug": "ECC-KHL-2023-9999"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.CaseBySlugHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCase_CreateCaseHandler(t *testing.T) {
	a := newTestApp(t)
	before := a.Store.Len()

	body := `{
		"title": "People vs Test Barge Co",
		"division": "Barishal",
		"type": "River",
		"siteName": "Meghna River",
		"subject": "Illegal dredging",
		"respondent": "Test Barge Co",
		"filingDate": "2025-02-10",
		"hearingDates": "2025-04-01, 2025-05-01, not-a-date",
		"budgetAllocated": "750000",
		"areaEncroached": "12.5",
		"fineLevied": "1500000",
		"actionPlan": "Notice & Demarcation: Completed\nEviction Drive"
	}`
	req, err := http.NewRequest("POST", "/api/v1/cases", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.CreateCaseHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v, body %v", status, http.StatusCreated, rr.Body.String())
	}

	var c models.Case
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.Regexp(t, `^ECC/BAR/2025/\d{4}$`, c.CaseID)
	assert.Equal(t, models.SlugFromCaseID(c.CaseID), c.Slug)
	assert.Equal(t, models.StatusFiled, c.FiledStatus)
	assert.Empty(t, c.VerdictDate)
	assert.Equal(t, []string{"2025-04-01", "2025-05-01"}, c.HearingDates)
	assert.Equal(t, int64(750000), c.Enforcement.BudgetAllocated)
	assert.Equal(t, "Pending", c.Enforcement.ImplementationStatus)
	assert.Equal(t, 12.5, c.Metrics.AreaEncroachedAcres)
	assert.Equal(t, []models.Phase{
		{Phase: 1, Name: "Notice & Demarcation", Status: "Completed"},
		{Phase: 2, Name: "Eviction Drive", Status: "Pending"},
	}, c.Enforcement.ActionPlan)

	// new case is prepended
	assert.Equal(t, before+1, a.Store.Len())
	assert.Equal(t, c.CaseID, a.Store.All()[0].CaseID)
}

func TestCase_CreateCaseHandlerDefaults(t *testing.T) {
	a := newTestApp(t)

	req, err := http.NewRequest("POST", "/api/v1/cases", strings.NewReader(`{"budgetAllocated":"lots","fineLevied":"-5","areaEncroached":"many"}`))
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.CreateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var c models.Case
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.Regexp(t, `^ECC/DHA/2025/\d{4}$`, c.CaseID)
	assert.Equal(t, "Dhaka", c.Division)
	assert.Equal(t, "River", c.Type)
	assert.Equal(t, "People vs Respondent", c.Title)
	assert.Zero(t, c.Enforcement.BudgetAllocated)
	assert.Zero(t, c.Metrics.FineLevied)
	assert.Zero(t, c.Metrics.AreaEncroachedAcres)
	assert.Equal(t, models.StatusFiled, c.FiledStatus)
}

func TestCase_CreateCaseHandlerVerdictForcesStatus(t *testing.T) {
	a := newTestApp(t)

	body := `{"respondent":"XYZ Ltd","filingDate":"2024-01-01","verdictDate":"2024-09-01","filedStatus":"Filed"}`
	req, err := http.NewRequest("POST", "/api/v1/cases", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.CreateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var c models.Case
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.Equal(t, models.StatusVerdictGiven, c.FiledStatus)
	assert.Equal(t, "2024-09-01", c.VerdictDate)
}

func TestCase_CreateCaseHandlerCoercesUnknownDivision(t *testing.T) {
	a := newTestApp(t)

	body := `{"division":"Narayanganj","type":"Wetland","filingDate":"2025-01-05","fineLevied":"1000000"}`
	req, err := http.NewRequest("POST", "/api/v1/cases", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.CreateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var c models.Case
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.Equal(t, "Dhaka", c.Division)
	assert.Equal(t, "River", c.Type)

	// every stored case lands in a division bucket, so the per-division
	// fines still account for the grand total
	res := analytics.Analyze(a.Store.All())
	var levied, collected int64
	for _, b := range res.FinesByDivision {
		levied += b.Levied
		collected += b.Collected
	}
	assert.Equal(t, res.TotalFinesLevied, levied)
	assert.Equal(t, res.TotalFinesCollected, collected)
}

func TestCase_CreateCaseHandlerMultibyteDivision(t *testing.T) {
	a := newTestApp(t)

	req, err := http.NewRequest("POST", "/api/v1/cases", strings.NewReader(`{"division":"ঢাকা"}`))
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.CreateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var c models.Case
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.Equal(t, "Dhaka", c.Division)
	assert.True(t, utf8.ValidString(c.CaseID))
	assert.Regexp(t, `^ECC/DHA/2025/\d{4}$`, c.CaseID)
}

func TestCase_CreateCaseHandlerBadBody(t *testing.T) {
	a := newTestApp(t)

	req, err := http.NewRequest("POST", "/api/v1/cases", strings.NewReader("{nope"))
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Case{Store: a.Store}.CreateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
