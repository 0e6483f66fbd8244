//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"barberbook/internal/handler/dto/request"
	"barberbook/internal/handler/dto/response"
	"barberbook/tests/common/authtest"
	"barberbook/tests/common/dbtest"
	"barberbook/tests/common/httptest"
	"barberbook/tests/e2e"
)

const (
	bookingsURL = "/api/bookings"
	slotsURL    = "/api/stylists/%s/slots?service_id=%s&date=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// nextMonday returns a Monday at least a week out, midnight UTC, so
// slot expectations stay deterministic regardless of when tests run.
func nextMonday() time.Time {
	now := time.Now().UTC()
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	day := now.AddDate(0, 0, days+7)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

type fixtureIDs struct {
	stylistID  uuid.UUID
	serviceID  uuid.UUID
	monday     time.Time
	mondayDate string
}

// seedShop creates a stylist working Mondays 09:00-17:00 and a
// 30-minute service.
func (s *BookingSuite) seedShop() fixtureIDs {
	t := s.T()
	monday := nextMonday()

	stylistID := dbtest.CreateTestUser(t, s.DB, "Sty List", "stylist@example.com", "stylist")
	serviceID := dbtest.CreateTestService(t, s.DB, "Classic Cut", 30, 3500)
	dbtest.CreateTestTemplate(t, s.DB, stylistID, int(time.Monday), 9*60, 17*60)

	return fixtureIDs{
		stylistID:  stylistID,
		serviceID:  serviceID,
		monday:     monday,
		mondayDate: monday.Format("2006-01-02"),
	}
}

func (s *BookingSuite) listSlots(ids fixtureIDs) []time.Time {
	t := s.T()
	url := fmt.Sprintf(slotsURL, ids.stylistID, ids.serviceID, ids.mondayDate)
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.SlotsResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &resp)
	return resp.Slots
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("a booking claims its slot and a cancel frees it", func() {
		t := s.T()
		ids := s.seedShop()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Cust Omer", "customer@example.com", "customer")

		tenAM := ids.monday.Add(10 * time.Hour)

		slots := s.listSlots(ids)
		require.Contains(t, slots, tenAM, "10:00 should be open before booking")

		// Book 10:00.
		reqBody := request.CreateBookingRequest{
			StylistID: ids.stylistID,
			ServiceID: ids.serviceID,
			StartAt:   tenAM,
			Notes:     "first visit",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)

		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "confirmed", created.Status)
		require.Equal(t, "Classic Cut", created.ServiceName)
		require.Equal(t, 30, created.DurationMinutes)
		require.Equal(t, 3500, created.PriceCents)
		require.True(t, created.EndAt.Equal(tenAM.Add(30*time.Minute)))

		// Every start colliding with 10:00-10:30 is gone; neighbors stay.
		slots = s.listSlots(ids)
		require.NotContains(t, slots, tenAM)
		require.NotContains(t, slots, ids.monday.Add(9*time.Hour+45*time.Minute))
		require.NotContains(t, slots, ids.monday.Add(10*time.Hour+15*time.Minute))
		require.Contains(t, slots, ids.monday.Add(9*time.Hour+30*time.Minute))
		require.Contains(t, slots, ids.monday.Add(10*time.Hour+30*time.Minute))

		// A second customer racing for the same slot loses.
		rivalToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Ri Val", "rival@example.com", "customer")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, rivalToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot is no longer available")

		// Cancelling reopens the slot.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID.String()+"/cancel",
			map[string]any{"reason": "plans changed"}, token)

		var cancelled response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
		require.Equal(t, "plans changed", cancelled.CancelReason)
		require.NotNil(t, cancelled.CancelledAt)

		slots = s.listSlots(ids)
		require.Contains(t, slots, tenAM, "cancelled booking should free its slot")

		// And the rival can now take it.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, rivalToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("off-grid and out-of-hours starts are rejected", func() {
		t := s.T()
		ids := s.seedShop()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Cust Omer", "customer@example.com", "customer")

		cases := []struct {
			name    string
			startAt time.Time
		}{
			{name: "not on the 15-minute grid", startAt: ids.monday.Add(10*time.Hour + 10*time.Minute)},
			{name: "before opening", startAt: ids.monday.Add(8 * time.Hour)},
			{name: "runs past closing", startAt: ids.monday.Add(16*time.Hour + 45*time.Minute)},
			{name: "day off", startAt: ids.monday.AddDate(0, 0, 1).Add(10 * time.Hour)},
		}

		for _, tc := range cases {
			reqBody := request.CreateBookingRequest{
				StylistID: ids.stylistID,
				ServiceID: ids.serviceID,
				StartAt:   tc.startAt,
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
			require.Equal(t, http.StatusConflict, w.Code, "%s: %s", tc.name, w.Body.String())
		}
	})

	s.Run("booking in the past is rejected", func() {
		t := s.T()
		ids := s.seedShop()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Cust Omer", "customer@example.com", "customer")

		lastMonday := ids.monday.AddDate(0, 0, -28).Add(10 * time.Hour)
		reqBody := request.CreateBookingRequest{
			StylistID: ids.stylistID,
			ServiceID: ids.serviceID,
			StartAt:   lastMonday,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Start time is in the past")
	})

	s.Run("requires authentication", func() {
		t := s.T()
		ids := s.seedShop()

		reqBody := request.CreateBookingRequest{
			StylistID: ids.stylistID,
			ServiceID: ids.serviceID,
			StartAt:   ids.monday.Add(10 * time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) TestBookingVisibilityAndLifecycleRoles() {
	s.Run("stylist drives the lifecycle, customers only see their own", func() {
		t := s.T()
		ids := s.seedShop()
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Cust Omer", "customer@example.com", "customer")
		stylistToken := authtest.LoginUser(t, s.Router, "stylist@example.com", "password123")

		reqBody := request.CreateBookingRequest{
			StylistID: ids.stylistID,
			ServiceID: ids.serviceID,
			StartAt:   ids.monday.Add(11 * time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, customerToken)

		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		// The customer sees it in their list.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, customerToken)
		var mine []response.BookingListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 1)
		require.Equal(t, created.ID, mine[0].ID)

		// A stranger cannot read it.
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Stran Ger", "stranger@example.com", "customer")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		// The customer cannot complete their own booking.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+created.ID.String()+"/status",
			request.UpdateBookingStatusRequest{Status: "completed"}, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		// The stylist can.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+created.ID.String()+"/status",
			request.UpdateBookingStatusRequest{Status: "completed"}, stylistToken)
		var completed response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &completed)
		require.Equal(t, "completed", completed.Status)

		// Completed is terminal.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+created.ID.String()+"/status",
			request.UpdateBookingStatusRequest{Status: "confirmed"}, stylistToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		// The stylist's agenda endpoint shows it.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/stylists/"+ids.stylistID.String()+"/bookings", nil, stylistToken)
		var agenda []response.BookingListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &agenda)
		require.Len(t, agenda, 1)
	})
}
