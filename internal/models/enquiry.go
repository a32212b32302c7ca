package models

import "time"

type EnquiryStatus string

const (
	EnquiryStatusPending   EnquiryStatus = "pending"
	EnquiryStatusReviewed  EnquiryStatus = "reviewed"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusArchived  EnquiryStatus = "archived"
)

// Valid reports whether s is one of the known enquiry statuses. There is no
// transition graph: an admin may relabel an enquiry to any valid status.
func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryStatusPending, EnquiryStatusReviewed, EnquiryStatusContacted, EnquiryStatusArchived:
		return true
	}
	return false
}

// Enquiry is a client-submitted project request captured for admin follow-up.
// service_type and contact_preference hold the flattened ", "-joined form of
// the multi-select inputs (see dto.StringList).
type Enquiry struct {
	ID                 uint          `gorm:"primaryKey" json:"id"`
	FullName           string        `gorm:"not null" json:"full_name"`
	Email              string        `gorm:"not null;index" json:"email"`
	Phone              string        `gorm:"not null" json:"phone"`
	Company            string        `json:"company"`
	Location           string        `json:"location"`
	ServiceType        string        `gorm:"not null" json:"service_type"`
	OtherService       string        `json:"other_service"`
	ProjectType        string        `gorm:"not null" json:"project_type"`
	ProjectDescription string        `gorm:"type:text;not null" json:"project_description"`
	DesignStyle        string        `json:"design_style"`
	FilePath           string        `json:"file_path"`
	Deadline           string        `json:"deadline"`
	BudgetRange        string        `json:"budget_range"`
	ContactPreference  string        `json:"contact_preference"`
	BestTime           string        `json:"best_time"`
	HearAbout          string        `json:"hear_about"`
	OtherSource        string        `json:"other_source"`
	AdditionalNotes    string        `gorm:"type:text" json:"additional_notes"`
	Status             EnquiryStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (Enquiry) TableName() string { return "enquiries" }
