package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/audit"
	domain "github.com/mainbersama/venue-booking/internal/domain/booking"
	"github.com/mainbersama/venue-booking/internal/httperr"
)

type DestroyBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDestroyBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DestroyBooking {
	return &DestroyBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes the booking only when userID is its booker. An ownership
// mismatch surfaces as not found, same as a missing booking.
func (uc *DestroyBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) error {

	b, err := uc.repo.GetBookingForBooker(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
