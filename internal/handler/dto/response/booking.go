package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"barberbook/internal/usecase/queries"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customerId"`
	StylistID       uuid.UUID  `json:"stylistId"`
	ServiceID       uuid.UUID  `json:"serviceId"`
	ServiceName     string     `json:"serviceName"`
	DurationMinutes int        `json:"durationMinutes"`
	PriceCents      int        `json:"priceCents"`
	StartAt         time.Time  `json:"startAt"`
	EndAt           time.Time  `json:"endAt"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	CancelReason    string     `json:"cancelReason,omitempty"`
	CancelledBy     *uuid.UUID `json:"cancelledBy,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	StylistID   uuid.UUID `json:"stylistId"`
	CustomerID  uuid.UUID `json:"customerId"`
	ServiceName string    `json:"serviceName"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	PriceCents  int       `json:"priceCents"`
	Status      string    `json:"status"`
}

type SlotsResponse struct {
	StylistID uuid.UUID   `json:"stylistId"`
	ServiceID uuid.UUID   `json:"serviceId"`
	Date      string      `json:"date"`
	Slots     []time.Time `json:"slots"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingList(items []queries.BookingListItem) []BookingListItemResponse {
	resp := make([]BookingListItemResponse, 0, len(items))
	_ = copier.Copy(&resp, &items)
	return resp
}

func FromSlotsView(view *queries.SlotsView) *SlotsResponse {
	return &SlotsResponse{
		StylistID: view.StylistID,
		ServiceID: view.ServiceID,
		Date:      view.Date,
		Slots:     view.Slots,
	}
}
