package dto

type BookDateRangeRequest struct {
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	Title           string `json:"title"`
	ClientName      string `json:"client_name" binding:"required"`
	ProjectName     string `json:"project_name"`
	ProjectLocation string `json:"project_location"`
	TravelDays      int    `json:"travel_days" binding:"gte=0"`
	DepositPaid     bool   `json:"deposit_paid"`
}

type UpdatePaymentRequest struct {
	DepositPaid *bool `json:"deposit_paid" binding:"required"`
}

type SaveEventRequest struct {
	ID          string `json:"id"`
	Date        string `json:"date" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	FullDay     bool   `json:"full_day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type BlockDatesRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}
