package models

// AnalyticsResult holds the KPI scalars and distributions computed over
// a case collection
type AnalyticsResult struct {
	ActiveCount           int             `json:"activeCount"`
	AvgTimeToVerdictDays  int             `json:"avgTimeToVerdictDays"`
	ComplianceRatePercent int             `json:"complianceRatePercent"`
	TotalFinesLevied      int64           `json:"totalFinesLevied"`
	TotalFinesCollected   int64           `json:"totalFinesCollected"`
	TotalAreaEncroached   float64         `json:"totalAreaEncroached"`
	TotalAreaRecovered    float64         `json:"totalAreaRecovered"`
	StatusDistribution    []StatusCount   `json:"statusDistribution"`
	FinesByDivision       []DivisionFines `json:"finesByDivision"`
	FilingsByMonth        []MonthCount    `json:"filingsByMonth"`
}

// StatusCount holds one implementation-status bucket
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DivisionFines holds the levied/collected fine totals for one division
type DivisionFines struct {
	Division  string `json:"division"`
	Levied    int64  `json:"levied"`
	Collected int64  `json:"collected"`
}

// MonthCount holds the number of filings in one YYYY-MM month
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
