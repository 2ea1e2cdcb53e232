package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/mainbersama/venue-booking/internal/domain/booking"
	"github.com/mainbersama/venue-booking/internal/httperr"
	"github.com/mainbersama/venue-booking/internal/models"
)

type GetBookingDetail struct {
	repo domain.Repository
}

func NewGetBookingDetail(repo domain.Repository) *GetBookingDetail {
	return &GetBookingDetail{repo: repo}
}

func (uc *GetBookingDetail) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, int64, error) {

	b, err := uc.repo.GetBookingWithRelations(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, httperr.ErrBusiness("booking_not_found")
		}
		return nil, 0, err
	}

	counts, err := uc.repo.CountPlayers(ctx, []uint{b.ID})
	if err != nil {
		return nil, 0, err
	}

	return b, counts[b.ID], nil
}
