package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/mainbersama/venue-booking/internal/domain/booking"
	"github.com/mainbersama/venue-booking/internal/httperr"
	"github.com/mainbersama/venue-booking/internal/models"
)

type GetSchedules struct {
	repo domain.Repository
}

func NewGetSchedules(repo domain.Repository) *GetSchedules {
	return &GetSchedules{repo: repo}
}

// Execute returns the authenticated user with the bookings joined as a
// player, each carrying its field summary.
func (uc *GetSchedules) Execute(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	user, err := uc.repo.GetUserWithSchedules(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	return user, nil
}
