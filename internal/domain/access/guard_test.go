//go:build unit

package access

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/catalog"
	"barberbook/internal/domain/user"
)

func newBooking(t *testing.T, customerID, stylistID uuid.UUID) *booking.Booking {
	t.Helper()
	svc, err := catalog.NewService("Haircut", "", "haircut", 30, 3500)
	require.NoError(t, err)
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	b, err := booking.New(customerID, stylistID, svc, now.Add(24*time.Hour), "", booking.StatusConfirmed, now)
	require.NoError(t, err)
	return b
}

func TestCanMutateAvailability(t *testing.T) {
	stylistID := uuid.New()

	tests := []struct {
		name      string
		requester Requester
		want      bool
	}{
		{name: "stylist on own schedule", requester: Requester{ID: stylistID, Role: user.RoleStylist}, want: true},
		{name: "stylist on someone else's schedule", requester: Requester{ID: uuid.New(), Role: user.RoleStylist}, want: false},
		{name: "admin on anyone's schedule", requester: Requester{ID: uuid.New(), Role: user.RoleAdmin}, want: true},
		{name: "customer never", requester: Requester{ID: stylistID, Role: user.RoleCustomer}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutateAvailability(tt.requester, stylistID))
		})
	}
}

func TestCanViewBooking(t *testing.T) {
	customerID := uuid.New()
	stylistID := uuid.New()
	b := newBooking(t, customerID, stylistID)

	assert.True(t, CanViewBooking(Requester{ID: customerID, Role: user.RoleCustomer}, b))
	assert.True(t, CanViewBooking(Requester{ID: stylistID, Role: user.RoleStylist}, b))
	assert.True(t, CanViewBooking(Requester{ID: uuid.New(), Role: user.RoleAdmin}, b))
	assert.False(t, CanViewBooking(Requester{ID: uuid.New(), Role: user.RoleCustomer}, b))
	assert.False(t, CanViewBooking(Requester{ID: uuid.New(), Role: user.RoleStylist}, b))
}

func TestCanChangeStatus(t *testing.T) {
	customerID := uuid.New()
	stylistID := uuid.New()
	b := newBooking(t, customerID, stylistID)

	tests := []struct {
		name      string
		requester Requester
		target    booking.Status
		want      bool
	}{
		{name: "own stylist completes", requester: Requester{ID: stylistID, Role: user.RoleStylist}, target: booking.StatusCompleted, want: true},
		{name: "other stylist cannot complete", requester: Requester{ID: uuid.New(), Role: user.RoleStylist}, target: booking.StatusCompleted, want: false},
		{name: "admin confirms", requester: Requester{ID: uuid.New(), Role: user.RoleAdmin}, target: booking.StatusConfirmed, want: true},
		{name: "customer cannot confirm own booking", requester: Requester{ID: customerID, Role: user.RoleCustomer}, target: booking.StatusConfirmed, want: false},
		{name: "customer cancels own booking", requester: Requester{ID: customerID, Role: user.RoleCustomer}, target: booking.StatusCancelled, want: true},
		{name: "customer cannot cancel another's booking", requester: Requester{ID: uuid.New(), Role: user.RoleCustomer}, target: booking.StatusCancelled, want: false},
		{name: "own stylist cancels", requester: Requester{ID: stylistID, Role: user.RoleStylist}, target: booking.StatusCancelled, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanChangeStatus(tt.requester, b, tt.target))
		})
	}
}

func TestCanManageCatalog(t *testing.T) {
	assert.True(t, CanManageCatalog(Requester{ID: uuid.New(), Role: user.RoleAdmin}))
	assert.False(t, CanManageCatalog(Requester{ID: uuid.New(), Role: user.RoleStylist}))
	assert.False(t, CanManageCatalog(Requester{ID: uuid.New(), Role: user.RoleCustomer}))
}
