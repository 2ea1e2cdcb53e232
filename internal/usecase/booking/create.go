package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/audit"
	domain "github.com/mainbersama/venue-booking/internal/domain/booking"
	"github.com/mainbersama/venue-booking/internal/httperr"
	"github.com/mainbersama/venue-booking/internal/models"
)

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Booking, error) {

	if _, err := uc.repo.GetField(ctx, in.FieldID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("field_not_found")
		}
		return nil, err
	}

	b := &models.Booking{
		Title:         in.Title,
		PlayDateStart: in.PlayDateStart,
		PlayDateEnd:   in.PlayDateEnd,
		UserID:        in.UserID,
		FieldID:       in.FieldID,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
