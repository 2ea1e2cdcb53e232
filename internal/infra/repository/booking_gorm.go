package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/mainbersama/venue-booking/internal/domain/booking"
	"github.com/mainbersama/venue-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Field
// --------------------------------------------------

func (r *BookingGormRepository) GetField(
	ctx context.Context,
	fieldID uint,
) (*models.Field, error) {

	var field models.Field
	if err := r.db.WithContext(ctx).First(&field, fieldID).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingWithRelations(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Preload("Players").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForBooker(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	// Pivot rows go first so the booking FK does not block the delete.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("booking_id = ?", b.ID).
			Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(b).Error
	})
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Preload("Field.Venue").
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Players
// --------------------------------------------------

func (r *BookingGormRepository) AddPlayer(
	ctx context.Context,
	bookingID uint,
	userID uint,
) error {
	return r.db.WithContext(ctx).
		Create(&models.Schedule{UserID: userID, BookingID: bookingID}).Error
}

func (r *BookingGormRepository) RemovePlayer(
	ctx context.Context,
	bookingID uint,
	userID uint,
) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND booking_id = ?", userID, bookingID).
		Delete(&models.Schedule{}).Error
}

func (r *BookingGormRepository) CountPlayers(
	ctx context.Context,
	bookingIDs []uint,
) (map[uint]int64, error) {

	counts := make(map[uint]int64, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		BookingID uint
		Total     int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Select("booking_id", "COUNT(*) AS total").
		Where("booking_id IN ?", bookingIDs).
		Group("booking_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.BookingID] = row.Total
	}
	return counts, nil
}

// --------------------------------------------------
// Schedules view
// --------------------------------------------------

func (r *BookingGormRepository) GetUserWithSchedules(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Schedules").
		Preload("Schedules.Field").
		First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
