package aid

import (
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidDraft() models.AidDraft {
	return models.AidDraft{
		PersonalInfo: models.AidPersonalInfo{
			FullName:    "Amina Njoroge",
			Email:       "amina@example.com",
			Phone:       "+254700111222",
			DateOfBirth: "2006-04-12",
			Address:     "Nairobi",
		},
		SportsInfo: models.AidSportsInfo{
			Discipline:    "swimming",
			Club:          "Riverside Aquatics",
			YearsTraining: "4",
			Achievements:  "Regional finalist 2025",
		},
		FinancialInfo: models.AidFinancialInfo{
			RequestedAmount: "1200",
			HouseholdIncome: "18000",
			NeedStatement:   "Training fees exceed what my family can cover.",
		},
		ReferenceInfo: models.AidReferenceInfo{
			RefereeName:    "Coach Otieno",
			RefereeContact: "otieno@example.com",
			Relationship:   "head coach",
		},
		Documents: []models.AidAttachment{
			{FileName: "income.pdf", ContentType: "application/pdf", Size: 1024, Content: []byte("pdf")},
		},
		TermsAccepted: true,
	}
}

func TestValidateStepAcceptsValidDraft(t *testing.T) {
	draft := createValidDraft()
	for step := FirstStep; step <= LastStep; step++ {
		assert.Empty(t, ValidateStep(step, draft), "step %d should pass", step)
	}
	assert.Empty(t, ValidateAll(draft))
}

func TestValidatePersonalStepBlocksMissingFields(t *testing.T) {
	draft := createValidDraft()
	draft.PersonalInfo = models.AidPersonalInfo{}

	errs := ValidateStep(1, draft)
	assert.Equal(t, "Full name is required", errs["fullName"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Phone number is required", errs["phone"])
	assert.Equal(t, "Date of birth is required", errs["dateOfBirth"])
}

func TestValidatePersonalStepRejectsMalformedEmail(t *testing.T) {
	draft := createValidDraft()
	draft.PersonalInfo.Email = "not-an-email"

	errs := ValidateStep(1, draft)
	assert.Equal(t, "Email is not valid", errs["email"])
}

func TestValidateSportsStepRejectsNonNumericYears(t *testing.T) {
	draft := createValidDraft()
	draft.SportsInfo.YearsTraining = "several"

	errs := ValidateStep(2, draft)
	assert.Equal(t, "Years of training must be a number", errs["yearsTraining"])
}

func TestValidateFinancialStepRejectsNonNumericAmount(t *testing.T) {
	draft := createValidDraft()
	draft.FinancialInfo.RequestedAmount = "abc"

	errs := ValidateStep(3, draft)
	require.Contains(t, errs, "requestedAmount")
	assert.Equal(t, "Amount must be a number", errs["requestedAmount"])
}

func TestValidateFinancialStepRejectsNonFiniteValues(t *testing.T) {
	// strconv.ParseFloat happily parses these, so the gate must catch them
	// itself; NaN in particular slips past a <= 0 comparison.
	for _, value := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf"} {
		draft := createValidDraft()
		draft.FinancialInfo.RequestedAmount = value
		errs := ValidateStep(3, draft)
		assert.Equal(t, "Amount must be a number", errs["requestedAmount"], "amount %q", value)

		draft = createValidDraft()
		draft.FinancialInfo.HouseholdIncome = value
		errs = ValidateStep(3, draft)
		assert.Equal(t, "Household income must be a number", errs["householdIncome"], "income %q", value)
	}
}

func TestValidateSportsStepRejectsNonFiniteYears(t *testing.T) {
	draft := createValidDraft()
	draft.SportsInfo.YearsTraining = "NaN"

	errs := ValidateStep(2, draft)
	assert.Equal(t, "Years of training must be a number", errs["yearsTraining"])
}

func TestValidateFinancialStepRejectsNonPositiveAmount(t *testing.T) {
	draft := createValidDraft()
	draft.FinancialInfo.RequestedAmount = "0"

	errs := ValidateStep(3, draft)
	assert.Equal(t, "Amount must be greater than zero", errs["requestedAmount"])
}

func TestValidateFinancialStepRequiresAmountAndStatement(t *testing.T) {
	draft := createValidDraft()
	draft.FinancialInfo = models.AidFinancialInfo{}

	errs := ValidateStep(3, draft)
	assert.Equal(t, "Requested amount is required", errs["requestedAmount"])
	assert.Equal(t, "Household income is required", errs["householdIncome"])
	assert.Equal(t, "A statement of need is required", errs["needStatement"])
}

func TestValidateReferenceStepBlocksMissingReferee(t *testing.T) {
	draft := createValidDraft()
	draft.ReferenceInfo = models.AidReferenceInfo{}

	errs := ValidateStep(4, draft)
	assert.Equal(t, "Referee name is required", errs["refereeName"])
	assert.Equal(t, "Referee contact is required", errs["refereeContact"])
}

func TestValidateDocumentsStepRequiresAtLeastOne(t *testing.T) {
	draft := createValidDraft()
	draft.Documents = nil

	errs := ValidateStep(5, draft)
	assert.Equal(t, "At least one supporting document is required", errs["documents"])
}

func TestValidateReviewStepRequiresTerms(t *testing.T) {
	draft := createValidDraft()
	draft.TermsAccepted = false

	errs := ValidateStep(6, draft)
	assert.Equal(t, "You must accept the terms to submit", errs["termsAccepted"])
}

func TestValidateAllCollectsAcrossSteps(t *testing.T) {
	draft := createValidDraft()
	draft.PersonalInfo.FullName = ""
	draft.FinancialInfo.RequestedAmount = "abc"
	draft.TermsAccepted = false

	errs := ValidateAll(draft)
	assert.Equal(t, "Full name is required", errs["fullName"])
	assert.Equal(t, "Amount must be a number", errs["requestedAmount"])
	assert.Equal(t, "You must accept the terms to submit", errs["termsAccepted"])
}
