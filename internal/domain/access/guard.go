// Package access holds the pure authorization predicates. Handlers
// authenticate; usecases call in here before mutating anything.
package access

import (
	"github.com/google/uuid"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/user"
)

// Requester is the authenticated principal extracted from the token.
type Requester struct {
	ID   uuid.UUID
	Role user.Role
}

// CanMutateAvailability allows a stylist to edit their own templates
// and exceptions, and an admin to edit anyone's.
func CanMutateAvailability(r Requester, stylistID uuid.UUID) bool {
	switch r.Role {
	case user.RoleAdmin:
		return true
	case user.RoleStylist:
		return r.ID == stylistID
	}
	return false
}

// CanViewBooking allows the customer who made the booking, the stylist
// it is with, and admins.
func CanViewBooking(r Requester, b *booking.Booking) bool {
	if r.Role == user.RoleAdmin {
		return true
	}
	return r.ID == b.CustomerID() || r.ID == b.StylistID()
}

// CanChangeStatus gates non-cancel lifecycle moves (confirm, complete)
// to the booking's stylist and admins. Cancellation is the one move a
// customer may make, and only on their own booking; it is still
// subject to the cancellation window, which is not this package's
// concern.
func CanChangeStatus(r Requester, b *booking.Booking, target booking.Status) bool {
	if target == booking.StatusCancelled {
		return CanCancel(r, b)
	}
	switch r.Role {
	case user.RoleAdmin:
		return true
	case user.RoleStylist:
		return r.ID == b.StylistID()
	}
	return false
}

// CanCancel allows the booking's customer, its stylist, and admins.
func CanCancel(r Requester, b *booking.Booking) bool {
	if r.Role == user.RoleAdmin {
		return true
	}
	if r.Role == user.RoleStylist && r.ID == b.StylistID() {
		return true
	}
	return r.Role == user.RoleCustomer && r.ID == b.CustomerID()
}

// CanManageCatalog restricts service catalog writes to admins.
func CanManageCatalog(r Requester) bool {
	return r.Role == user.RoleAdmin
}
