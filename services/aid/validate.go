// File: services/aid/validate.go
package aid

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"courtside/models"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// parseFinite parses a numeric field, rejecting NaN and infinities which
// strconv.ParseFloat otherwise accepts.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return v, nil
}

// ValidateStep maps the draft to a field→message error map for one step.
// An empty map means the step gate is open. The full step is re-validated on
// every attempted advance.
func ValidateStep(step int, draft models.AidDraft) map[string]string {
	switch step {
	case 1:
		return validatePersonal(draft.PersonalInfo)
	case 2:
		return validateSports(draft.SportsInfo)
	case 3:
		return validateFinancial(draft.FinancialInfo)
	case 4:
		return validateReference(draft.ReferenceInfo)
	case 5:
		return validateDocuments(draft.Documents)
	case 6:
		return validateReview(draft)
	default:
		return map[string]string{}
	}
}

// ValidateAll re-runs every step gate; used before final submission.
func ValidateAll(draft models.AidDraft) map[string]string {
	errs := map[string]string{}
	for step := FirstStep; step <= LastStep; step++ {
		for field, msg := range ValidateStep(step, draft) {
			if _, exists := errs[field]; !exists {
				errs[field] = msg
			}
		}
	}
	return errs
}

func validatePersonal(info models.AidPersonalInfo) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(info.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(info.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(info.Email) {
		errs["email"] = "Email is not valid"
	}
	if strings.TrimSpace(info.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(info.DateOfBirth) == "" {
		errs["dateOfBirth"] = "Date of birth is required"
	}
	return errs
}

func validateSports(info models.AidSportsInfo) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(info.Discipline) == "" {
		errs["discipline"] = "Discipline is required"
	}
	if strings.TrimSpace(info.Club) == "" {
		errs["club"] = "Club or team is required"
	}
	if strings.TrimSpace(info.YearsTraining) == "" {
		errs["yearsTraining"] = "Years of training is required"
	} else if years, err := parseFinite(info.YearsTraining); err != nil {
		errs["yearsTraining"] = "Years of training must be a number"
	} else if years < 0 {
		errs["yearsTraining"] = "Years of training cannot be negative"
	}
	return errs
}

func validateFinancial(info models.AidFinancialInfo) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(info.RequestedAmount) == "" {
		errs["requestedAmount"] = "Requested amount is required"
	} else if amount, err := parseFinite(info.RequestedAmount); err != nil {
		errs["requestedAmount"] = "Amount must be a number"
	} else if amount <= 0 {
		errs["requestedAmount"] = "Amount must be greater than zero"
	}
	if strings.TrimSpace(info.HouseholdIncome) == "" {
		errs["householdIncome"] = "Household income is required"
	} else if income, err := parseFinite(info.HouseholdIncome); err != nil {
		errs["householdIncome"] = "Household income must be a number"
	} else if income < 0 {
		errs["householdIncome"] = "Household income cannot be negative"
	}
	if strings.TrimSpace(info.NeedStatement) == "" {
		errs["needStatement"] = "A statement of need is required"
	}
	return errs
}

func validateReference(info models.AidReferenceInfo) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(info.RefereeName) == "" {
		errs["refereeName"] = "Referee name is required"
	}
	if strings.TrimSpace(info.RefereeContact) == "" {
		errs["refereeContact"] = "Referee contact is required"
	}
	return errs
}

func validateDocuments(docs []models.AidAttachment) map[string]string {
	errs := map[string]string{}
	if len(docs) == 0 {
		errs["documents"] = "At least one supporting document is required"
	}
	return errs
}

func validateReview(draft models.AidDraft) map[string]string {
	errs := map[string]string{}
	if !draft.TermsAccepted {
		errs["termsAccepted"] = "You must accept the terms to submit"
	}
	return errs
}
