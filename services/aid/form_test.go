package aid

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createWizardFormValues() url.Values {
	return url.Values{
		"personalInfo[fullName]":         {"Amina Njoroge"},
		"personalInfo[email]":            {"amina@example.com"},
		"personalInfo[phone]":            {"+254700111222"},
		"personalInfo[dateOfBirth]":      {"2006-04-12"},
		"sportsInfo[discipline]":         {"swimming"},
		"sportsInfo[club]":               {"Riverside Aquatics"},
		"sportsInfo[yearsTraining]":      {"4"},
		"financialInfo[requestedAmount]": {"1200"},
		"financialInfo[householdIncome]": {"18000"},
		"financialInfo[needStatement]":   {"Training fees exceed what my family can cover."},
		"referenceInfo[refereeName]":     {"Coach Otieno"},
		"referenceInfo[refereeContact]":  {"otieno@example.com"},
		"supportingText":                 {"Thank you for considering my application."},
		"termsAccepted":                  {"on"},
	}
}

func TestDecodeDraftValuesRebuildsSections(t *testing.T) {
	draft := DecodeDraftValues(createWizardFormValues())

	assert.Equal(t, "Amina Njoroge", draft.PersonalInfo.FullName)
	assert.Equal(t, "amina@example.com", draft.PersonalInfo.Email)
	assert.Equal(t, "swimming", draft.SportsInfo.Discipline)
	assert.Equal(t, "4", draft.SportsInfo.YearsTraining)
	assert.Equal(t, "1200", draft.FinancialInfo.RequestedAmount)
	assert.Equal(t, "Coach Otieno", draft.ReferenceInfo.RefereeName)
	assert.Equal(t, "Thank you for considering my application.", draft.SupportingText)
	assert.True(t, draft.TermsAccepted)
}

func TestDecodeDraftValuesCheckboxVariants(t *testing.T) {
	for _, value := range []string{"true", "on", "1", "yes", "TRUE"} {
		draft := DecodeDraftValues(url.Values{"termsAccepted": {value}})
		assert.True(t, draft.TermsAccepted, "value %q should accept terms", value)
	}
	for _, value := range []string{"false", "off", "0", ""} {
		draft := DecodeDraftValues(url.Values{"termsAccepted": {value}})
		assert.False(t, draft.TermsAccepted, "value %q should not accept terms", value)
	}
}

func TestDecodeDraftValuesIgnoresUnknownKeys(t *testing.T) {
	values := url.Values{
		"personalInfo[fullName]": {"Amina Njoroge"},
		"personalInfo[unknown]":  {"dropped"},
		"unknownSection[field]":  {"dropped"},
		"plainUnknown":           {"dropped"},
		"malformed[key][deep]":   {"dropped"},
	}
	draft := DecodeDraftValues(values)

	assert.Equal(t, "Amina Njoroge", draft.PersonalInfo.FullName)
	assert.Empty(t, draft.SupportingText)
}
