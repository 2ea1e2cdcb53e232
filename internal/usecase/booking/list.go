package booking

import (
	"context"

	domain "github.com/mainbersama/venue-booking/internal/domain/booking"
	"github.com/mainbersama/venue-booking/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
) ([]models.Booking, map[uint]int64, error) {

	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	counts, err := uc.repo.CountPlayers(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	return bookings, counts, nil
}
