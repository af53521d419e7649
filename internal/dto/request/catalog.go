package request

type SessionRangeRequest struct {
	StartDate string `json:"startDate" validate:"required,date_only"`
	EndDate   string `json:"endDate" validate:"required,date_only"`
}
