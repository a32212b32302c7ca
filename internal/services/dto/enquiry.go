package dto

import (
	"encoding/json"
	"strings"
)

// StringList accepts either a JSON string or an array of strings. The
// enquiry form sends multi-selects as arrays; the storage schema keeps a
// single scalar column, so the list is flattened with Flatten before any
// write. This is deliberately lossy: the read paths only display the value,
// they never re-split it.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// Flatten joins the selections into the stored ", "-separated form.
func (l StringList) Flatten() string {
	return strings.Join(l, ", ")
}

// CreateEnquiryRequest covers both submission paths: the JSON API and the
// direct multipart form (where FilePath is filled in after the reference
// file is stored).
type CreateEnquiryRequest struct {
	FullName           string     `json:"full_name" form:"full_name"`
	Email              string     `json:"email" form:"email"`
	Phone              string     `json:"phone" form:"phone"`
	Company            string     `json:"company" form:"company"`
	Location           string     `json:"location" form:"location"`
	ServiceType        StringList `json:"service_type" form:"service_type"`
	OtherService       string     `json:"other_service" form:"other_service"`
	ProjectType        string     `json:"project_type" form:"project_type"`
	ProjectDescription string     `json:"project_description" form:"project_description"`
	DesignStyle        string     `json:"design_style" form:"design_style"`
	FilePath           string     `json:"-" form:"-"`
	Deadline           string     `json:"deadline" form:"deadline"`
	BudgetRange        string     `json:"budget_range" form:"budget_range"`
	ContactPreference  StringList `json:"contact_preference" form:"contact_preference"`
	BestTime           string     `json:"best_time" form:"best_time"`
	HearAbout          string     `json:"hear_about" form:"hear_about"`
	OtherSource        string     `json:"other_source" form:"other_source"`
	AdditionalNotes    string     `json:"additional_notes" form:"additional_notes"`
}

// UpdateEnquiryStatusRequest is the only mutation the admin panel performs
// on an enquiry.
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status"`
}
