package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/audit"
	"github.com/mainbersama/venue-booking/internal/dto"
	"github.com/mainbersama/venue-booking/internal/httperr"
	"github.com/mainbersama/venue-booking/internal/httpresp"
	"github.com/mainbersama/venue-booking/internal/middleware"
	"github.com/mainbersama/venue-booking/internal/models"
	"github.com/mainbersama/venue-booking/internal/validators"
)

type FieldHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewFieldHandler(db *gorm.DB, a *audit.Dispatcher) *FieldHandler {
	return &FieldHandler{db: db, audit: a}
}

// --------- Requests ---------

type FieldRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=soccer minisoccer futsal basketball volleyball"`
}

// --------- Helpers ---------

func (h *FieldHandler) getVenue(c *gin.Context) (*models.Venue, bool) {
	var venue models.Venue
	if err := h.db.First(&venue, "id = ?", c.Param("venue_id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "venue_not_found", "Venue not found.")
		} else {
			httperr.Internal(c, "failed_to_get_venue", "Could not load the venue.")
		}
		return nil, false
	}
	return &venue, true
}

func (h *FieldHandler) getField(c *gin.Context) (*models.Field, bool) {
	var field models.Field
	if err := h.db.
		Where("id = ? AND venue_id = ?", c.Param("id"), c.Param("venue_id")).
		First(&field).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "field_not_found", "Field not found.")
		} else {
			httperr.Internal(c, "failed_to_get_field", "Could not load the field.")
		}
		return nil, false
	}
	return &field, true
}

// --------- Handlers ---------

func (h *FieldHandler) Index(c *gin.Context) {
	venue, ok := h.getVenue(c)
	if !ok {
		return
	}

	q := h.db.Where("venue_id = ?", venue.ID)

	// The name filter has always been validated as a number even though the
	// column is a string. Kept as is; see DESIGN.md.
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		n, err := strconv.Atoi(name)
		if err != nil {
			httperr.Unprocessable(c, map[string]string{
				"name": "must be a number",
			})
			return
		}
		q = q.Where("name = ?", strconv.Itoa(n))
	}

	var fields []models.Field
	if err := q.Order("id ASC").Find(&fields).Error; err != nil {
		httperr.Internal(c, "failed_to_list_fields", "Could not list fields.")
		return
	}

	httpresp.OK(c, "success get fields", fields)
}

func (h *FieldHandler) Store(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validators.FieldMessages(err))
		return
	}

	venue, ok := h.getVenue(c)
	if !ok {
		return
	}

	field := models.Field{
		Name:    req.Name,
		Type:    req.Type,
		VenueID: venue.ID,
	}

	if err := h.db.Create(&field).Error; err != nil {
		httperr.Internal(c, "failed_to_create_field", "Could not create the field.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "field_created",
		Entity:   "field",
		EntityID: &field.ID,
	})

	httpresp.Created(c, "field created", field)
}

func (h *FieldHandler) Show(c *gin.Context) {
	field, ok := h.getField(c)
	if !ok {
		return
	}

	var rows []models.Booking
	if err := h.db.
		Select("id", "title", "user_id", "play_date_start", "play_date_end").
		Where("field_id = ?", field.ID).
		Order("play_date_start ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_get_field", "Could not load the field.")
		return
	}

	bookings := make([]dto.BookingSummaryDTO, 0, len(rows))
	for _, b := range rows {
		bookings = append(bookings, dto.BookingSummaryDTO{
			ID:            b.ID,
			Title:         b.Title,
			UserID:        b.UserID,
			PlayDateStart: b.PlayDateStart,
			PlayDateEnd:   b.PlayDateEnd,
		})
	}

	httpresp.OK(c, "success get field by id", dto.FieldDetailDTO{
		ID:       field.ID,
		Name:     field.Name,
		Type:     field.Type,
		VenueID:  field.VenueID,
		Bookings: bookings,
	})
}

func (h *FieldHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validators.FieldMessages(err))
		return
	}

	field, ok := h.getField(c)
	if !ok {
		return
	}

	field.Name = req.Name
	field.Type = req.Type

	if err := h.db.Save(field).Error; err != nil {
		httperr.Internal(c, "failed_to_update_field", "Could not update the field.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "field_updated",
		Entity:   "field",
		EntityID: &field.ID,
	})

	httpresp.OK(c, "field updated", field)
}

func (h *FieldHandler) Destroy(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	field, ok := h.getField(c)
	if !ok {
		return
	}

	if err := h.db.Delete(field).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_field", "Could not delete the field.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "field_deleted",
		Entity:   "field",
		EntityID: &field.ID,
	})

	httpresp.OK(c, "field deleted", nil)
}
