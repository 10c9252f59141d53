package dataset

import "github.com/evidence-for-accountability/ecc-tracker-api/models"

// Name pools the generator draws descriptive fields from
var (
	riverNames = []string{"Buriganga", "Turag", "Shitalakkhya", "Karnaphuli", "Meghna", "Padma", "Surma", "Jamuna", "Halda"}

	forestNames = []string{"Bhawal Sal Forest", "Modhupur Sal Forest", "Sundarbans (Satkhira)", "Sundarbans (Sharankhola)", "Teknaf Wildlife Sanctuary", "Khasia Hills Reserve"}

	respondentNames = []string{"Delta Bricks Ltd", "Eastern Aggregates", "City Developers PLC", "North Star Fisheries", "Abdul Matin & Associates", "Green Leaf Timber Co.", "Padma Sand Traders", "Karnaphuli Dredging Co."}

	complainantNames = []string{"Department of Environment", "DoE, Divisional Office", "Forest Department", "River Conservation Trust", "Local Administration", "Citizen Coalition for Rivers"}

	officerNames = []string{"Md. Saiful Islam", "Shahnaz Rahman", "Kazi Nazrul Islam", "Farzana Ahmed", "Ashiqur Rahman", "Nusrat Jahan"}

	officerDesignations = []string{"Deputy Commissioner", "Additional Deputy Commissioner", "Upazila Nirbahi Officer", "Assistant Commissioner (Land)"}

	preVerdictFiledStatuses = []string{models.StatusFiled, models.StatusInTrial}

	// enforcement cannot be completed or overdue before a verdict exists
	preVerdictImplStatuses = []string{"Pending", "Not yet started", "In-progress"}

	evictionStatuses    = []string{"Pending", "In-progress", "Delayed", "Completed"}
	restorationStatuses = []string{"Pending", "Scheduled", "In-progress"}
	recoveryStatuses    = []string{"Pending", "Scheduled", "In-progress"}
	monitoringStatuses  = []string{"Pending", "Planned"}
)

// Fixed action plan phase names, in execution order
var phaseNames = []string{"Notice & Demarcation", "Eviction Drive", "Restoration Assessment", "Recovery & Reforestation", "Monitoring"}

// SeedCase returns the fixed hand-authored exemplar case that always
// heads the dataset
func SeedCase() models.Case {
	return models.Case{
		CaseID:         "ECC/KHL/2023/0045",
		Slug:           "ECC-KHL-2023-0045",
		Title:          "People vs Global Agro Ltd",
		Division:       "Khulna",
		Type:           "Forest",
		SiteName:       "Sundarbans Reserve Forest, Chandpai Range",
		Subject:        "Encroachment of 50 acres of protected forest land",
		Complainant:    "Department of Forest, Ministry of Environment, Forest and Climate Change",
		Respondent:     "Global Agro Ltd. and its Managing Director, Mr. Tareq Ahmed",
		CaseType:       "Illegal Land Grabbing and Deforestation",
		FilingDate:     "2023-03-15",
		HearingDates:   []string{"2023-06-10", "2023-09-05", "2024-04-18"},
		VerdictDate:    "2024-06-25",
		FiledStatus:    models.StatusVerdictGiven,
		VerdictSummary: "The court found Global Agro Ltd. guilty of illegally encroaching upon 50 acres of protected forest land within the Sundarbans Reserve Forest. The respondent was ordered to cease all activities, vacate the land, pay a fine of ৳50,00,000, and bear the full cost of a restoration plan. The Managing Director received a 6-month suspended sentence contingent on compliance by the deadline.",
		Enforcement: models.Enforcement{
			Agency:               "Khulna District Administration (with Department of Forest)",
			ComplianceDeadline:   "2024-09-23",
			OfficerName:          "Mr. Kazi Nazrul Islam",
			OfficerDesignation:   "Deputy Commissioner (DC), Khulna",
			BudgetAllocated:      1500000,
			ImplementationStatus: "Overdue",
			ActionPlan: []models.Phase{
				{Phase: 1, Name: "Notice & Demarcation", Status: "Completed"},
				{Phase: 2, Name: "Eviction Drive", Status: "Delayed (legal challenge)"},
				{Phase: 3, Name: "Restoration Assessment", Status: "Pending"},
				{Phase: 4, Name: "Recovery & Reforestation", Status: "Pending"},
				{Phase: 5, Name: "Monitoring", Status: "Pending"},
			},
		},
		Metrics: models.Metrics{
			AreaEncroachedAcres: 50,
			AreaRecoveredAcres:  0,
			FineLevied:          5000000,
			FineCollected:       0,
		},
	}
}
