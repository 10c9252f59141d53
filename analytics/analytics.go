// Package analytics computes the dashboard KPIs and chart aggregations
// over a case collection. Analyze is pure: it never mutates its input
// and tolerates an empty collection.
package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/evidence-for-accountability/ecc-tracker-api/models"
)

// Analyze aggregates the given cases into KPI scalars plus the three
// chart distributions. Apart from filings-by-month, which is sorted by
// month key, results do not depend on input order.
func Analyze(cases []models.Case) models.AnalyticsResult {
	res := models.AnalyticsResult{}

	statusIndex := map[string]int{}
	for _, s := range models.ImplementationStatuses {
		statusIndex[s] = len(res.StatusDistribution)
		res.StatusDistribution = append(res.StatusDistribution, models.StatusCount{Name: s})
	}
	divisionIndex := map[string]int{}
	for _, d := range models.Divisions {
		divisionIndex[d] = len(res.FinesByDivision)
		res.FinesByDivision = append(res.FinesByDivision, models.DivisionFines{Division: d})
	}

	verdictCount := 0
	completedCount := 0
	verdictDaysTotal := 0
	verdictDaysCount := 0
	months := map[string]int{}

	for _, c := range cases {
		switch c.FiledStatus {
		case models.StatusFiled, models.StatusInTrial, models.StatusVerdictGiven:
			res.ActiveCount++
		}

		if c.VerdictDate != "" {
			if d, err := models.DaysBetween(c.FilingDate, c.VerdictDate); err == nil {
				verdictDaysTotal += d
				verdictDaysCount++
			}
		}
		if c.FiledStatus == models.StatusVerdictGiven {
			verdictCount++
			if strings.HasPrefix(c.Enforcement.ImplementationStatus, "Completed") {
				completedCount++
			}
		}

		res.TotalFinesLevied += c.Metrics.FineLevied
		res.TotalFinesCollected += c.Metrics.FineCollected
		res.TotalAreaEncroached += c.Metrics.AreaEncroachedAcres
		res.TotalAreaRecovered += c.Metrics.AreaRecoveredAcres

		status := c.Enforcement.ImplementationStatus
		if status == "" {
			status = models.StatusPending
		}
		i, ok := statusIndex[status]
		if !ok {
			// user-entered statuses get their own trailing bucket
			i = len(res.StatusDistribution)
			statusIndex[status] = i
			res.StatusDistribution = append(res.StatusDistribution, models.StatusCount{Name: status})
		}
		res.StatusDistribution[i].Value++

		if j, ok := divisionIndex[c.Division]; ok {
			res.FinesByDivision[j].Levied += c.Metrics.FineLevied
			res.FinesByDivision[j].Collected += c.Metrics.FineCollected
		}

		if len(c.FilingDate) >= 7 {
			months[c.FilingDate[:7]]++
		}
	}

	if verdictDaysCount > 0 {
		res.AvgTimeToVerdictDays = int(math.Round(float64(verdictDaysTotal) / float64(verdictDaysCount)))
	}
	if verdictCount > 0 {
		res.ComplianceRatePercent = int(math.Round(100 * float64(completedCount) / float64(verdictCount)))
	}

	res.FilingsByMonth = make([]models.MonthCount, 0, len(months))
	for m, n := range months {
		res.FilingsByMonth = append(res.FilingsByMonth, models.MonthCount{Month: m, Count: n})
	}
	sort.Slice(res.FilingsByMonth, func(i, j int) bool {
		return res.FilingsByMonth[i].Month < res.FilingsByMonth[j].Month
	})

	return res
}

// Snapshot holds the home page dataset counts
type Snapshot struct {
	Total  int `json:"total"`
	Forest int `json:"forest"`
	River  int `json:"river"`
}

// Count tallies the dataset snapshot KPIs shown on the landing page
func Count(cases []models.Case) Snapshot {
	s := Snapshot{Total: len(cases)}
	for _, c := range cases {
		if c.Type == "Forest" {
			s.Forest++
		} else {
			s.River++
		}
	}
	return s
}
