// File: services/aid/form.go
package aid

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"regexp"
	"strings"

	"courtside/models"
)

// The web client flattens the nested draft into bracketed keys, e.g.
// personalInfo[fullName], with files under the "documents" field.
var bracketKeyRegex = regexp.MustCompile(`^(\w+)\[(\w+)\]$`)

// DecodeDraftValues rebuilds a draft from bracketed form values.
// Unrecognized keys are ignored.
func DecodeDraftValues(values url.Values) models.AidDraft {
	draft := models.AidDraft{Documents: []models.AidAttachment{}}

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		value := vals[0]

		m := bracketKeyRegex.FindStringSubmatch(key)
		if m == nil {
			switch key {
			case "supportingText":
				draft.SupportingText = value
			case "termsAccepted":
				draft.TermsAccepted = parseCheckbox(value)
			}
			continue
		}

		section, field := m[1], m[2]
		switch section {
		case "personalInfo":
			setPersonalField(&draft.PersonalInfo, field, value)
		case "sportsInfo":
			setSportsField(&draft.SportsInfo, field, value)
		case "financialInfo":
			setFinancialField(&draft.FinancialInfo, field, value)
		case "referenceInfo":
			setReferenceField(&draft.ReferenceInfo, field, value)
		}
	}
	return draft
}

// DecodeDraftForm rebuilds a draft from a parsed multipart form, reading any
// "documents" files into memory. The attachment cap is applied here: files
// past the fifth are dropped silently.
func DecodeDraftForm(form *multipart.Form) (models.AidDraft, error) {
	draft := DecodeDraftValues(url.Values(form.Value))

	for _, fh := range form.File["documents"] {
		if len(draft.Documents) >= models.MaxAidDocuments {
			break
		}
		att, err := ReadAttachment(fh)
		if err != nil {
			return draft, err
		}
		draft.Documents = append(draft.Documents, att)
	}
	return draft, nil
}

// ReadAttachment loads one uploaded file into an in-memory attachment.
func ReadAttachment(fh *multipart.FileHeader) (models.AidAttachment, error) {
	f, err := fh.Open()
	if err != nil {
		return models.AidAttachment{}, fmt.Errorf("failed to open uploaded file %s: %w", fh.Filename, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return models.AidAttachment{}, fmt.Errorf("failed to read uploaded file %s: %w", fh.Filename, err)
	}

	return models.AidAttachment{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     content,
	}, nil
}

func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

func setPersonalField(info *models.AidPersonalInfo, field, value string) {
	switch field {
	case "fullName":
		info.FullName = value
	case "email":
		info.Email = value
	case "phone":
		info.Phone = value
	case "dateOfBirth":
		info.DateOfBirth = value
	case "address":
		info.Address = value
	}
}

func setSportsField(info *models.AidSportsInfo, field, value string) {
	switch field {
	case "discipline":
		info.Discipline = value
	case "club":
		info.Club = value
	case "yearsTraining":
		info.YearsTraining = value
	case "achievements":
		info.Achievements = value
	}
}

func setFinancialField(info *models.AidFinancialInfo, field, value string) {
	switch field {
	case "requestedAmount":
		info.RequestedAmount = value
	case "householdIncome":
		info.HouseholdIncome = value
	case "needStatement":
		info.NeedStatement = value
	}
}

func setReferenceField(info *models.AidReferenceInfo, field, value string) {
	switch field {
	case "refereeName":
		info.RefereeName = value
	case "refereeContact":
		info.RefereeContact = value
	case "relationship":
		info.Relationship = value
	}
}
