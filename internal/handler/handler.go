package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/handler/dto"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/ics"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/service"
)

type CalendarSvc interface {
	Snapshot() domain.Availability
	BookDateRange(ctx context.Context, input service.BookDateRangeInput) (domain.BookingSet, error)
	GetBookingSet(bookingSetID string) (domain.BookingSet, error)
	CancelBookingSet(ctx context.Context, bookingSetID string) error
	SetBookingSetPaid(ctx context.Context, bookingSetID string, paid bool) error
	SaveEvent(ctx context.Context, ev domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	EventsOn(dateKey string) []domain.Event
	BlockDateRange(ctx context.Context, startKey, endKey, reason string) error
	UnblockDate(ctx context.Context, dateKey string) error
}

type Handler struct {
	calendar CalendarSvc
}

func NewHandler(calendar CalendarSvc) *Handler {
	return &Handler{calendar: calendar}
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(h.calendar.Snapshot()))
}

func (h *Handler) ExportCalendar(c *ginext.Context) {
	doc, err := ics.Export(h.calendar.Snapshot())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="availability.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.BookDateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := service.BookDateRangeInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Title:     req.Title,
		Client: domain.ClientData{
			ClientName:      req.ClientName,
			ProjectName:     req.ProjectName,
			ProjectLocation: req.ProjectLocation,
			TravelDays:      req.TravelDays,
			DepositPaid:     req.DepositPaid,
		},
	}

	set, err := h.calendar.BookDateRange(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingSetResponse(set))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	set, err := h.calendar.GetBookingSet(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingSetResponse(set))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	if err := h.calendar.CancelBookingSet(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) UpdateBookingPayment(c *ginext.Context) {
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.calendar.SetBookingSetPaid(c.Request.Context(), c.Param("id"), *req.DepositPaid); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

// Events

func (h *Handler) SaveEvent(c *ginext.Context) {
	var req dto.SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ev := domain.Event{
		ID:          req.ID,
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.EventType(req.Type),
		FullDay:     req.FullDay,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	saved, err := h.calendar.SaveEvent(c.Request.Context(), ev)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToEventResponse(saved))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	if err := h.calendar.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListEvents(c *ginext.Context) {
	dateKey := c.Query("date")
	if !domain.ValidDateKey(dateKey) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid or missing date, expected YYYY-MM-DD"})
		return
	}

	events := h.calendar.EventsOn(dateKey)
	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

// Blocked dates

func (h *Handler) BlockDates(c *ginext.Context) {
	var req dto.BlockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if req.EndDate == "" {
		req.EndDate = req.StartDate
	}

	if err := h.calendar.BlockDateRange(c.Request.Context(), req.StartDate, req.EndDate, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ginext.H{"status": "blocked"})
}

func (h *Handler) UnblockDate(c *ginext.Context) {
	if err := h.calendar.UnblockDate(c.Request.Context(), c.Param("date")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "unblocked"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrBookingSetNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDateConflict),
		errors.Is(err, domain.ErrTimeConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
