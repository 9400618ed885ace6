package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/handler/dto"
	hmocks "github.com/LuminaryOps/Production-Rates-sub000/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockCalendarSvc, http.Handler) {
	t.Helper()
	calendar := hmocks.NewMockCalendarSvc(t)

	h := NewHandler(calendar)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/availability", h.GetAvailability)
		api.GET("/calendar.ics", h.ExportCalendar)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.PATCH("/bookings/:id/payment", h.UpdateBookingPayment)
		api.PUT("/events", h.SaveEvent)
		api.GET("/events", h.ListEvents)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/blocks", h.BlockDates)
		api.DELETE("/blocks/:date", h.UnblockDate)
	}

	return calendar, r
}

func bookedEvent(id, date, setID string) domain.Event {
	return domain.Event{
		ID: id, Date: date, Title: "Acme Films",
		Type: domain.EventTypeBooked, FullDay: true,
		Client: &domain.ClientData{ClientName: "Acme Films", BookingSetID: setID},
	}
}

// --- Availability ---

func TestHandler_GetAvailability(t *testing.T) {
	calendar, r := setupRouter(t)

	avail := domain.NewAvailability()
	avail.BlockedDates["2025-06-10"] = "Vacation"
	avail.AddEvent(bookedEvent("e1", "2025-06-11", "set1"))

	calendar.EXPECT().Snapshot().Return(*avail)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Vacation", resp.BlockedDates["2025-06-10"])
	assert.Len(t, resp.Events["2025-06-11"], 1)
}

func TestHandler_ExportCalendar(t *testing.T) {
	calendar, r := setupRouter(t)

	avail := domain.NewAvailability()
	avail.AddEvent(bookedEvent("e1", "2025-06-11", "set1"))
	calendar.EXPECT().Snapshot().Return(*avail)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar.ics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "availability.ics")
	assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	calendar, r := setupRouter(t)

	set := domain.BookingSet{
		ID: "set1",
		Events: []domain.Event{
			bookedEvent("e1", "2025-06-10", "set1"),
			bookedEvent("e2", "2025-06-11", "set1"),
		},
	}
	calendar.EXPECT().BookDateRange(mock.Anything, mock.Anything).Return(set, nil)

	body, _ := json.Marshal(dto.BookDateRangeRequest{
		StartDate:  "2025-06-10",
		EndDate:    "2025-06-11",
		ClientName: "Acme Films",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingSetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "set1", resp.ID)
	assert.Len(t, resp.Events, 2)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	// client_name is required by binding.
	body := []byte(`{"start_date":"2025-06-10","end_date":"2025-06-11"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().BookDateRange(mock.Anything, mock.Anything).
		Return(domain.BookingSet{}, domain.ErrDateConflict)

	body, _ := json.Marshal(dto.BookDateRangeRequest{
		StartDate:  "2025-06-10",
		EndDate:    "2025-06-11",
		ClientName: "Acme Films",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().GetBookingSet("missing").
		Return(domain.BookingSet{}, domain.ErrBookingSetNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().CancelBookingSet(mock.Anything, "set1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/set1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateBookingPayment_Success(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().SetBookingSetPaid(mock.Anything, "set1", true).Return(nil)

	body := []byte(`{"deposit_paid":true}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/set1/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateBookingPayment_MissingFlag(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/set1/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Events ---

func TestHandler_SaveEvent_Create(t *testing.T) {
	calendar, r := setupRouter(t)

	saved := domain.Event{
		ID: "e1", Date: "2025-06-10", Title: "Scout",
		Type: domain.EventTypeRegular, StartTime: "09:00", EndTime: "10:00",
	}
	calendar.EXPECT().SaveEvent(mock.Anything, mock.Anything).Return(saved, nil)

	body, _ := json.Marshal(dto.SaveEventRequest{
		Date: "2025-06-10", Title: "Scout",
		StartTime: "09:00", EndTime: "10:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "e1", resp.ID)
}

func TestHandler_SaveEvent_UpdateReturnsOK(t *testing.T) {
	calendar, r := setupRouter(t)

	saved := domain.Event{
		ID: "e1", Date: "2025-06-10", Title: "Scout",
		Type: domain.EventTypeRegular, FullDay: true,
	}
	calendar.EXPECT().SaveEvent(mock.Anything, mock.Anything).Return(saved, nil)

	body, _ := json.Marshal(dto.SaveEventRequest{
		ID: "e1", Date: "2025-06-10", Title: "Scout", FullDay: true,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SaveEvent_TimeConflict(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().SaveEvent(mock.Anything, mock.Anything).
		Return(domain.Event{}, domain.ErrTimeConflict)

	body, _ := json.Marshal(dto.SaveEventRequest{
		Date: "2025-06-10", Title: "Scout",
		StartTime: "09:00", EndTime: "10:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteEvent_NotFound(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().DeleteEvent(mock.Anything, "missing").Return(domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().EventsOn("2025-06-10").Return([]domain.Event{
		bookedEvent("e1", "2025-06-10", "set1"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?date=2025-06-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListEvents_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?date=June+10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Blocked dates ---

func TestHandler_BlockDates_Success(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().BlockDateRange(mock.Anything, "2025-06-10", "2025-06-12", "Vacation").Return(nil)

	body, _ := json.Marshal(dto.BlockDatesRequest{
		StartDate: "2025-06-10", EndDate: "2025-06-12", Reason: "Vacation",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/blocks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_BlockDates_SingleDay(t *testing.T) {
	calendar, r := setupRouter(t)

	// Missing end_date collapses to a single-day block.
	calendar.EXPECT().BlockDateRange(mock.Anything, "2025-06-10", "2025-06-10", "").Return(nil)

	body := []byte(`{"start_date":"2025-06-10"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/blocks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_UnblockDate_Success(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().UnblockDate(mock.Anything, "2025-06-10").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/blocks/2025-06-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	calendar, r := setupRouter(t)

	calendar.EXPECT().GetBookingSet("set1").Return(domain.BookingSet{}, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/set1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
