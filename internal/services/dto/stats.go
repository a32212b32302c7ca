package dto

// StatsResponse backs the admin dashboard cards. Content counts include
// only active items; enquiry counts include everything.
type StatsResponse struct {
	EnquiriesTotal   int64 `json:"enquiries_total"`
	EnquiriesPending int64 `json:"enquiries_pending"`
	Slides           int64 `json:"slides"`
	TeamMembers      int64 `json:"team_members"`
	Websites         int64 `json:"websites"`
	Logos            int64 `json:"logos"`
	Graphics         int64 `json:"graphics"`
	Flyers           int64 `json:"flyers"`
}
