package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/mainbersama/venue-booking/internal/domain/booking"
	"github.com/mainbersama/venue-booking/internal/dto"
	"github.com/mainbersama/venue-booking/internal/httperr"
	"github.com/mainbersama/venue-booking/internal/httpresp"
	"github.com/mainbersama/venue-booking/internal/middleware"
	"github.com/mainbersama/venue-booking/internal/models"
	ucbooking "github.com/mainbersama/venue-booking/internal/usecase/booking"
	"github.com/mainbersama/venue-booking/internal/validators"
)

type BookingHandler struct {
	createUC    *ucbooking.CreateBooking
	listUC      *ucbooking.ListBookings
	detailUC    *ucbooking.GetBookingDetail
	joinUC      *ucbooking.JoinBooking
	unjoinUC    *ucbooking.UnjoinBooking
	destroyUC   *ucbooking.DestroyBooking
	schedulesUC *ucbooking.GetSchedules
}

func NewBookingHandler(
	createUC *ucbooking.CreateBooking,
	listUC *ucbooking.ListBookings,
	detailUC *ucbooking.GetBookingDetail,
	joinUC *ucbooking.JoinBooking,
	unjoinUC *ucbooking.UnjoinBooking,
	destroyUC *ucbooking.DestroyBooking,
	schedulesUC *ucbooking.GetSchedules,
) *BookingHandler {
	return &BookingHandler{
		createUC:    createUC,
		listUC:      listUC,
		detailUC:    detailUC,
		joinUC:      joinUC,
		unjoinUC:    unjoinUC,
		destroyUC:   destroyUC,
		schedulesUC: schedulesUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	Title         string `json:"title" binding:"required"`
	PlayDateStart string `json:"play_date_start" binding:"required"`
	PlayDateEnd   string `json:"play_date_end" binding:"required"`
	FieldID       uint   `json:"field_id" binding:"required"`
}

// --------- Helpers ---------

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return 0, false
	}
	return uint(id), true
}

func fieldSummary(f *models.Field) dto.FieldDTO {
	if f == nil {
		return dto.FieldDTO{}
	}
	return dto.FieldDTO{
		ID:      f.ID,
		Name:    f.Name,
		Type:    f.Type,
		VenueID: f.VenueID,
	}
}

// --------- Handlers ---------

func (h *BookingHandler) Index(c *gin.Context) {
	bookings, counts, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	data := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		item := dto.BookingListDTO{
			ID:            b.ID,
			Title:         b.Title,
			UserID:        b.UserID,
			PlayDateStart: b.PlayDateStart,
			PlayDateEnd:   b.PlayDateEnd,
			FieldID:       b.FieldID,
			PlayersCount:  counts[b.ID],
		}
		if b.Field != nil {
			item.Type = b.Field.Type
			if b.Field.Venue != nil {
				item.Venue = dto.VenueSummaryDTO{
					ID:      b.Field.Venue.ID,
					Name:    b.Field.Venue.Name,
					Address: b.Field.Venue.Address,
					Phone:   b.Field.Venue.Phone,
				}
			}
		}
		data = append(data, item)
	}

	httpresp.OK(c, "success get bookings", data)
}

// Store creates a booking against a field. The venue id in the path only
// scopes the route; the field id in the body decides the target.
func (h *BookingHandler) Store(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validators.FieldMessages(err))
		return
	}

	start, err := validators.ParseDateTime(req.PlayDateStart)
	if err != nil {
		httperr.Unprocessable(c, map[string]string{
			"play_date_start": "must be a valid datetime (yyyy-MM-dd HH:mm:ss)",
		})
		return
	}

	end, err := validators.ParseDateTime(req.PlayDateEnd)
	if err != nil {
		httperr.Unprocessable(c, map[string]string{
			"play_date_end": "must be a valid datetime (yyyy-MM-dd HH:mm:ss)",
		})
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), domain.CreateInput{
		UserID:        userID,
		Title:         req.Title,
		FieldID:       req.FieldID,
		PlayDateStart: start,
		PlayDateEnd:   end,
	})
	if err != nil {
		if httperr.IsBusiness(err, "field_not_found") {
			httperr.Unprocessable(c, map[string]string{
				"field_id": "must reference an existing field",
			})
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
		return
	}

	httpresp.Created(c, "booking created", dto.BookingDTO{
		ID:            b.ID,
		Title:         b.Title,
		UserID:        b.UserID,
		PlayDateStart: b.PlayDateStart,
		PlayDateEnd:   b.PlayDateEnd,
		FieldID:       b.FieldID,
	})
}

func (h *BookingHandler) Show(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	b, playersCount, err := h.detailUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Could not load the booking.")
		return
	}

	players := make([]dto.PlayerDTO, 0, len(b.Players))
	for _, p := range b.Players {
		players = append(players, dto.PlayerDTO{
			ID:    p.ID,
			Name:  p.Name,
			Email: p.Email,
			Role:  p.Role,
		})
	}

	httpresp.OK(c, "success get booking by id", dto.BookingDetailDTO{
		ID:            b.ID,
		Title:         b.Title,
		UserID:        b.UserID,
		PlayDateStart: b.PlayDateStart,
		PlayDateEnd:   b.PlayDateEnd,
		FieldID:       b.FieldID,
		Field:         fieldSummary(b.Field),
		Players:       players,
		PlayersCount:  playersCount,
	})
}

func (h *BookingHandler) Join(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := h.joinUC.Execute(c.Request.Context(), id, userID); err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_join_booking", "Could not join the booking.")
		return
	}

	httpresp.Created(c, "success join schedules", nil)
}

func (h *BookingHandler) Unjoin(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := h.unjoinUC.Execute(c.Request.Context(), id, userID); err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_unjoin_booking", "Could not leave the booking.")
		return
	}

	httpresp.OK(c, "success unjoin schedules", nil)
}

func (h *BookingHandler) Destroy(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := h.destroyUC.Execute(c.Request.Context(), id, userID); err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_booking", "Could not delete the booking.")
		return
	}

	httpresp.OK(c, "booking deleted", nil)
}

func (h *BookingHandler) Schedules(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.schedulesUC.Execute(c.Request.Context(), userID)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_schedules", "Could not load the schedules.")
		return
	}

	schedules := make([]dto.ScheduleItemDTO, 0, len(user.Schedules))
	for _, b := range user.Schedules {
		schedules = append(schedules, dto.ScheduleItemDTO{
			ID:            b.ID,
			Title:         b.Title,
			PlayDateStart: b.PlayDateStart,
			PlayDateEnd:   b.PlayDateEnd,
			FieldID:       b.FieldID,
			Field:         fieldSummary(b.Field),
		})
	}

	httpresp.OK(c, "success get schedules", dto.UserSchedulesDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Schedules: schedules,
	})
}
