package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/audit"
	domain "github.com/mainbersama/venue-booking/internal/domain/booking"
	"github.com/mainbersama/venue-booking/internal/httperr"
)

type UnjoinBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUnjoinBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UnjoinBooking {
	return &UnjoinBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute detaches the user from the booking. Detaching a user who never
// joined is a no-op, not an error.
func (uc *UnjoinBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) error {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		return err
	}

	if err := uc.repo.RemovePlayer(ctx, b.ID, userID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_unjoined",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
