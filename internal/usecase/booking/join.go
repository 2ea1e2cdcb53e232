package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/audit"
	domain "github.com/mainbersama/venue-booking/internal/domain/booking"
	"github.com/mainbersama/venue-booking/internal/httperr"
)

type JoinBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewJoinBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *JoinBooking {
	return &JoinBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *JoinBooking) Execute(
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

	// The pivot's composite key makes a repeat join collide; the collision
	// means the user is already in, which is the outcome we wanted.
	if err := uc.repo.AddPlayer(ctx, b.ID, userID); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_joined",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
