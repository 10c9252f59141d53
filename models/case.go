package models

import "strings"

// Divisions holds the fixed set of administrative divisions a case can
// be filed under. Order matters: analytics emits per-division buckets
// in this order.
var Divisions = []string{"Dhaka", "Chattogram", "Khulna", "Barishal", "Rajshahi", "Sylhet", "Rangpur", "Mymensingh"}

// EncroachTypes holds the two tracked encroachment categories
var EncroachTypes = []string{"River", "Forest"}

// FiledStatuses holds the litigation progress values
var FiledStatuses = []string{"Filed", "In Trial", "Verdict Given"}

// ImplementationStatuses holds the enforcement progress values. Order
// matters: analytics emits status buckets in this order.
var ImplementationStatuses = []string{"Not yet started", "In-progress", "Completed on-time", "Completed - delayed", "Overdue", "Pending"}

// Filed status values referenced by name throughout the core
const (
	StatusFiled        = "Filed"
	StatusInTrial      = "In Trial"
	StatusVerdictGiven = "Verdict Given"
)

// StatusPending is the implementation status a case falls back to when
// none was supplied
const StatusPending = "Pending"

// Case holds the structure for one tracked environmental encroachment
// legal matter. Date fields are ISO YYYY-MM-DD strings; an empty
// verdictDate means no verdict has been reached yet.
type Case struct {
	CaseID         string      `json:"caseId"`
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Division       string      `json:"division"`
	Type           string      `json:"type"`
	SiteName       string      `json:"siteName"`
	Subject        string      `json:"subject"`
	Complainant    string      `json:"complainant"`
	Respondent     string      `json:"respondent"`
	CaseType       string      `json:"caseType"`
	FilingDate     string      `json:"filingDate"`
	HearingDates   []string    `json:"hearingDates"`
	VerdictDate    string      `json:"verdictDate,omitempty"`
	FiledStatus    string      `json:"filedStatus"`
	VerdictSummary string      `json:"verdictSummary"`
	Enforcement    Enforcement `json:"enforcement"`
	Metrics        Metrics     `json:"metrics"`
}

// Enforcement holds the post-verdict execution plan and compliance
// tracking for a case. It has no identity of its own.
type Enforcement struct {
	Agency               string  `json:"agency"`
	ComplianceDeadline   string  `json:"complianceDeadline,omitempty"`
	OfficerName          string  `json:"officerName"`
	OfficerDesignation   string  `json:"officerDesignation"`
	BudgetAllocated      int64   `json:"budgetAllocated"`
	ImplementationStatus string  `json:"implementationStatus"`
	ActionPlan           []Phase `json:"actionPlan"`
}

// Phase holds one step of an enforcement action plan. Phase numbers
// start at 1 and the slice order is the execution order.
type Phase struct {
	Phase  int    `json:"phase"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Metrics holds the recovery numbers for a case
type Metrics struct {
	AreaEncroachedAcres float64 `json:"areaEncroachedAcres"`
	AreaRecoveredAcres  float64 `json:"areaRecoveredAcres"`
	FineLevied          int64   `json:"fineLevied"`
	FineCollected       int64   `json:"fineCollected"`
}

// SlugFromCaseID derives the URL-safe form of a case id
// (ECC/KHL/2023/0045 -> ECC-KHL-2023-0045)
func SlugFromCaseID(caseID string) string {
	return strings.ReplaceAll(caseID, "/", "-")
}
