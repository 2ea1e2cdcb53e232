package booking

import (
	"context"

	"github.com/mainbersama/venue-booking/internal/models"
)

type Repository interface {
	// -------- Field --------
	GetField(
		ctx context.Context,
		fieldID uint,
	) (*models.Field, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingWithRelations(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingForBooker(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	// -------- Players (schedules pivot) --------
	AddPlayer(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) error

	RemovePlayer(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) error

	CountPlayers(
		ctx context.Context,
		bookingIDs []uint,
	) (map[uint]int64, error)

	// -------- Schedules view --------
	GetUserWithSchedules(
		ctx context.Context,
		userID uint,
	) (*models.User, error)
}
