package dto

import (
	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	FullDay     bool   `json:"full_day"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	ClientName  string `json:"client_name,omitempty"`
	IsTravel    bool   `json:"is_travel,omitempty"`
}

type BookingSetResponse struct {
	ID          string          `json:"id"`
	ClientName  string          `json:"client_name"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	DepositPaid bool            `json:"deposit_paid"`
	Events      []EventResponse `json:"events"`
}

type AvailabilityResponse struct {
	BlockedDates map[string]string          `json:"blocked_dates"`
	Events       map[string][]EventResponse `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e domain.Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Date:        e.Date,
		Title:       e.Title,
		Description: e.Description,
		Type:        string(e.Type),
		FullDay:     e.FullDay,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
	}
	if e.Client != nil {
		resp.ClientName = e.Client.ClientName
		resp.IsTravel = e.Client.IsTravel
	}
	return resp
}

func ToBookingSetResponse(s domain.BookingSet) BookingSetResponse {
	events := make([]EventResponse, 0, len(s.Events))
	for _, e := range s.Events {
		events = append(events, ToEventResponse(e))
	}

	resp := BookingSetResponse{
		ID:        s.ID,
		StartDate: s.StartDate(),
		EndDate:   s.EndDate(),
		Events:    events,
	}
	if client := s.Client(); client != nil {
		resp.ClientName = client.ClientName
		resp.DepositPaid = client.DepositPaid
	}
	return resp
}

func ToAvailabilityResponse(a domain.Availability) AvailabilityResponse {
	resp := AvailabilityResponse{
		BlockedDates: a.BlockedDates,
		Events:       make(map[string][]EventResponse, len(a.Events)),
	}
	if resp.BlockedDates == nil {
		resp.BlockedDates = map[string]string{}
	}
	for key, evs := range a.Events {
		out := make([]EventResponse, 0, len(evs))
		for _, e := range evs {
			out = append(out, ToEventResponse(e))
		}
		resp.Events[key] = out
	}
	return resp
}
