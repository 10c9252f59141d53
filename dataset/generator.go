package dataset

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/evidence-for-accountability/ecc-tracker-api/models"
)

// ErrInvalidCount is returned when a negative case count is requested
var ErrInvalidCount = errors.New("invalid case count")

// Sampling windows for the generated dataset (YYYY-MM-DD, inclusive of
// start)
const (
	filingWindowStart  = "2023-01-01"
	filingWindowEnd    = "2025-01-31"
	verdictWindowStart = "2023-07-01"
	verdictWindowEnd   = "2025-09-20"
	firstHearingStart  = "2023-06-01"
	firstHearingEnd    = "2025-06-01"
	lastHearingStart   = "2023-07-01"
	lastHearingEnd     = "2025-08-15"
	deadlineStart      = "2024-02-01"
	deadlineEnd        = "2025-12-31"
)

// Probability and scale constants for the generated dataset. These are
// demo tuning values; changing any of them changes the default dataset
// byte-for-byte.
const (
	noVerdictThreshold   = 0.45 // draw above this => the case has a verdict
	minRecoveredFraction = 0.5  // recovered area in [0.5, 1.0) of encroached
	fineUnit             = 500000
	minCollectedFraction = 0.6 // collected fine fraction when completed
	partialCollectedBase = 0.1 // collected fine fraction otherwise, behind a 50% coin
	phaseOnePendingOdds  = 0.2 // phase 1 stays pending at this rate post-verdict
)

// drawer runs a sequence of draws against one Sampler, remembering the
// first error so call sites stay linear
type drawer struct {
	s   *Sampler
	err error
}

func (d *drawer) pick(pool []string) string {
	if d.err != nil {
		return ""
	}
	v, err := d.s.Pick(pool)
	if err != nil {
		d.err = err
	}
	return v
}

func (d *drawer) date(start, end string) string {
	if d.err != nil {
		return ""
	}
	v, err := d.s.SampleDate(start, end)
	if err != nil {
		d.err = err
	}
	return v
}

// Generate synthesizes n case records from the given seed and returns
// them together with the fixed exemplar case that heads the dataset.
// Draws happen in a fixed order against one shared Stream, so the
// output is reproducible for a given (seed, n); reordering any draw
// changes every record after it.
func Generate(seed uint32, n int) (models.Case, []models.Case, error) {
	if n < 0 {
		return models.Case{}, nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	r := NewStream(seed)
	d := &drawer{s: NewSampler(r)}

	cases := make([]models.Case, 0, n)
	for i := 0; i < n; i++ {
		c, err := generateOne(r, d, i)
		if err != nil {
			return models.Case{}, nil, err
		}
		cases = append(cases, c)
	}
	return SeedCase(), cases, nil
}

func generateOne(r *Stream, d *drawer, i int) (models.Case, error) {
	encType := d.pick(models.EncroachTypes)
	division := d.pick(models.Divisions)

	var siteName string
	if encType == "River" {
		siteName = d.pick(riverNames) + " River"
	} else {
		siteName = d.pick(forestNames)
	}

	filingDate := d.date(filingWindowStart, filingWindowEnd)
	withVerdict := r.Next() > noVerdictThreshold

	var verdictDate, filedStatus string
	if withVerdict {
		verdictDate = d.date(verdictWindowStart, verdictWindowEnd)
		filedStatus = models.StatusVerdictGiven
	} else {
		filedStatus = d.pick(preVerdictFiledStatuses)
	}

	implPool := models.ImplementationStatuses
	if !withVerdict {
		implPool = preVerdictImplStatuses
	}
	implStatus := d.pick(implPool)

	encAcres := math.Round(r.Next()*120) + 5
	recAcres := 0.0
	if strings.Contains(implStatus, "Completed") {
		recAcres = math.Round(encAcres * (minRecoveredFraction + r.Next()*0.5))
	}

	fineLevied := int64(math.Round(r.Next()*8+2)) * fineUnit
	var fineCollected int64
	if strings.HasPrefix(implStatus, "Completed") {
		fineCollected = int64(math.Round(float64(fineLevied) * (minCollectedFraction + r.Next()*0.4)))
	} else if r.Next() > 0.5 {
		fineCollected = int64(math.Round(float64(fineLevied) * (partialCollectedBase + r.Next()*0.2)))
	}

	if d.err != nil {
		return models.Case{}, d.err
	}

	id := fmt.Sprintf("ECC/%s/%s/%04d", strings.ToUpper(division[:3]), filingDate[:4], i+1)

	title := "People vs " + d.pick(respondentNames)

	var subject, caseType, agency string
	if encType == "River" {
		subject = fmt.Sprintf("Illegal sand extraction and riverbank occupation at %s", siteName)
		caseType = "Illegal Sand Extraction & Bank Occupation"
		agency = fmt.Sprintf("%s District Administration (with DoE)", division)
	} else {
		subject = fmt.Sprintf("Illegal occupation and tree felling in %s", siteName)
		caseType = "Illegal Land Grabbing and Deforestation"
		agency = fmt.Sprintf("%s District Administration (with Forest Department)", division)
	}

	complainant := d.pick(complainantNames)
	respondent := d.pick(respondentNames)

	var hearingDates []string
	if withVerdict {
		hearingDates = []string{d.date(firstHearingStart, firstHearingEnd), d.date(lastHearingStart, lastHearingEnd)}
	} else {
		hearingDates = []string{d.date(lastHearingStart, lastHearingEnd)}
	}

	verdictSummary := "Case in progress; hearings scheduled."
	if withVerdict {
		verdictSummary = fmt.Sprintf("Court ordered cessation, recovery of encroached %.0f acres and fines. Compliance by 90 days.", encAcres)
	}

	var complianceDeadline string
	if withVerdict {
		complianceDeadline = d.date(deadlineStart, deadlineEnd)
	}

	officerName := d.pick(officerNames)
	officerDesignation := d.pick(officerDesignations)
	budget := int64(math.Round((r.Next()*2 + 0.5) * 1000000))

	phaseOneStatus := "Pending"
	if withVerdict && r.Next() > phaseOnePendingOdds {
		phaseOneStatus = "Completed"
	}
	actionPlan := []models.Phase{
		{Phase: 1, Name: phaseNames[0], Status: phaseOneStatus},
		{Phase: 2, Name: phaseNames[1], Status: d.pick(evictionStatuses)},
		{Phase: 3, Name: phaseNames[2], Status: d.pick(restorationStatuses)},
		{Phase: 4, Name: phaseNames[3], Status: d.pick(recoveryStatuses)},
		{Phase: 5, Name: phaseNames[4], Status: d.pick(monitoringStatuses)},
	}

	if d.err != nil {
		return models.Case{}, d.err
	}

	return models.Case{
		CaseID:         id,
		Slug:           models.SlugFromCaseID(id),
		Title:          title,
		Division:       division,
		Type:           encType,
		SiteName:       siteName,
		Subject:        subject,
		Complainant:    complainant,
		Respondent:     respondent,
		CaseType:       caseType,
		FilingDate:     filingDate,
		HearingDates:   hearingDates,
		VerdictDate:    verdictDate,
		FiledStatus:    filedStatus,
		VerdictSummary: verdictSummary,
		Enforcement: models.Enforcement{
			Agency:               agency,
			ComplianceDeadline:   complianceDeadline,
			OfficerName:          officerName,
			OfficerDesignation:   officerDesignation,
			BudgetAllocated:      budget,
			ImplementationStatus: implStatus,
			ActionPlan:           actionPlan,
		},
		Metrics: models.Metrics{
			AreaEncroachedAcres: encAcres,
			AreaRecoveredAcres:  recAcres,
			FineLevied:          fineLevied,
			FineCollected:       fineCollected,
		},
	}, nil
}
