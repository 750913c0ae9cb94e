package models

import "time"

// Financial aid application statuses.
const (
	AidStatusSubmitted = "submitted"
	AidStatusInReview  = "in_review"
	AidStatusApproved  = "approved"
	AidStatusRejected  = "rejected"
)

// MaxAidDocuments caps the number of attachments on a single application.
const MaxAidDocuments = 5

// AidPersonalInfo is step 1 of the application.
type AidPersonalInfo struct {
	FullName    string `bson:"full_name" json:"fullName"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	DateOfBirth string `bson:"date_of_birth" json:"dateOfBirth"` // "YYYY-MM-DD"
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
}

// AidSportsInfo is step 2 of the application.
type AidSportsInfo struct {
	Discipline    string `bson:"discipline" json:"discipline"`
	Club          string `bson:"club" json:"club"`
	YearsTraining string `bson:"years_training" json:"yearsTraining"` // Kept as entered; validated numerically
	Achievements  string `bson:"achievements,omitempty" json:"achievements,omitempty"`
}

// AidFinancialInfo is step 3 of the application.
type AidFinancialInfo struct {
	RequestedAmount string `bson:"requested_amount" json:"requestedAmount"` // Kept as entered; validated numerically
	HouseholdIncome string `bson:"household_income" json:"householdIncome"`
	NeedStatement   string `bson:"need_statement" json:"needStatement"`
}

// AidReferenceInfo is step 4 of the application.
type AidReferenceInfo struct {
	RefereeName    string `bson:"referee_name" json:"refereeName"`
	RefereeContact string `bson:"referee_contact" json:"refereeContact"`
	Relationship   string `bson:"relationship,omitempty" json:"relationship,omitempty"`
}

// AidAttachment is one supporting document on the draft. Content is held
// in memory until submission uploads it to storage.
type AidAttachment struct {
	FileName    string `bson:"file_name" json:"fileName"`
	ContentType string `bson:"content_type" json:"contentType"`
	Size        int64  `bson:"size" json:"size"`
	Content     []byte `bson:"-" json:"-"`
	// PublicID is set once the document has been uploaded.
	PublicID string `bson:"public_id,omitempty" json:"publicId,omitempty"`
}

// AidDraft is the in-progress, unsaved application state accumulated
// across the six wizard steps.
type AidDraft struct {
	PersonalInfo   AidPersonalInfo  `json:"personalInfo"`
	SportsInfo     AidSportsInfo    `json:"sportsInfo"`
	FinancialInfo  AidFinancialInfo `json:"financialInfo"`
	ReferenceInfo  AidReferenceInfo `json:"referenceInfo"`
	Documents      []AidAttachment  `json:"documents"`
	SupportingText string           `json:"supportingText,omitempty"`
	TermsAccepted  bool             `json:"termsAccepted"`
}

// AidSession is the server-held wizard state for one applicant.
type AidSession struct {
	SessionID string    `json:"sessionID"`
	UserID    string    `json:"userID"`
	Step      int       `json:"step"` // 1..6
	Draft     AidDraft  `json:"draft"`
	Submitted bool      `json:"submitted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AidApplication is the persisted record created when a draft is submitted.
type AidApplication struct {
	ID             string           `bson:"id" json:"id"`
	UserID         string           `bson:"user_id,omitempty" json:"user_id,omitempty"`
	PersonalInfo   AidPersonalInfo  `bson:"personal_info" json:"personalInfo"`
	SportsInfo     AidSportsInfo    `bson:"sports_info" json:"sportsInfo"`
	FinancialInfo  AidFinancialInfo `bson:"financial_info" json:"financialInfo"`
	ReferenceInfo  AidReferenceInfo `bson:"reference_info" json:"referenceInfo"`
	Documents      []AidAttachment  `bson:"documents" json:"documents"`
	SupportingText string           `bson:"supporting_text,omitempty" json:"supportingText,omitempty"`
	Status         string           `bson:"status" json:"status"`
	CreatedAt      time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `bson:"updated_at" json:"updated_at"`
}

// AidApplicationFilter carries the admin list filter state for applications.
type AidApplicationFilter struct {
	Status string `form:"status"`
}
