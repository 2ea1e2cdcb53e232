package handlers

import (
	"strings"
	"time"

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

type VenueHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewVenueHandler(db *gorm.DB, a *audit.Dispatcher) *VenueHandler {
	return &VenueHandler{db: db, audit: a}
}

// --------- Requests ---------

type VenueRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
}

// --------- Handlers ---------

func (h *VenueHandler) Index(c *gin.Context) {
	typeFilter := strings.ToLower(strings.TrimSpace(c.Query("type")))
	if typeFilter != "" && !validators.IsValidFieldType(typeFilter) {
		httperr.Unprocessable(c, map[string]string{
			"type": "must be one of: " + strings.Join(validators.FieldTypes, ", "),
		})
		return
	}

	q := h.db.Select("id", "name", "address", "phone")

	if typeFilter != "" {
		// Only venues that own at least one matching field, with the nested
		// field list restricted to that type.
		var venueIDs []uint
		if err := h.db.Model(&models.Field{}).
			Where("type = ?", typeFilter).
			Distinct().
			Pluck("venue_id", &venueIDs).Error; err != nil {
			httperr.Internal(c, "failed_to_list_venues", "Could not list venues.")
			return
		}
		if len(venueIDs) == 0 {
			httpresp.OK(c, "success get venues", []dto.VenueListDTO{})
			return
		}

		q = q.Where("id IN ?", venueIDs).
			Preload("Fields", func(db *gorm.DB) *gorm.DB {
				return db.Select("id", "name", "type", "venue_id").
					Where("type = ?", typeFilter)
			})
	} else {
		q = q.Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "type", "venue_id")
		})
	}

	var venues []models.Venue
	if err := q.Order("id ASC").Find(&venues).Error; err != nil {
		httperr.Internal(c, "failed_to_list_venues", "Could not list venues.")
		return
	}

	data := make([]dto.VenueListDTO, 0, len(venues))
	for _, v := range venues {
		fields := make([]dto.FieldItemDTO, 0, len(v.Fields))
		for _, f := range v.Fields {
			fields = append(fields, dto.FieldItemDTO{ID: f.ID, Name: f.Name, Type: f.Type})
		}
		data = append(data, dto.VenueListDTO{
			ID:      v.ID,
			Name:    v.Name,
			Address: v.Address,
			Phone:   v.Phone,
			Fields:  fields,
		})
	}

	httpresp.OK(c, "success get venues", data)
}

func (h *VenueHandler) Store(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validators.FieldMessages(err))
		return
	}

	venue := models.Venue{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}

	if err := h.db.Create(&venue).Error; err != nil {
		httperr.Internal(c, "failed_to_create_venue", "Could not create the venue.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "venue_created",
		Entity:   "venue",
		EntityID: &venue.ID,
	})

	httpresp.Created(c, "venue created", venue)
}

func (h *VenueHandler) Show(c *gin.Context) {
	// Named venue_id so the route can share its prefix with the nested
	// field routes.
	id := c.Param("venue_id")

	date := time.Now().Format(validators.DateFormat)
	if q := c.Query("date"); q != "" {
		if _, err := validators.ParseDate(q); err != nil {
			httperr.Unprocessable(c, map[string]string{
				"date": "must be a valid date (yyyy-MM-dd)",
			})
			return
		}
		date = q
	}

	var venue models.Venue
	if err := h.db.
		Select("id", "name", "address", "phone").
		First(&venue, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "venue_not_found", "Venue not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_venue", "Could not load the venue.")
		return
	}

	var fieldIDs []uint
	if err := h.db.Model(&models.Field{}).
		Where("venue_id = ?", venue.ID).
		Pluck("id", &fieldIDs).Error; err != nil {
		httperr.Internal(c, "failed_to_get_venue", "Could not load the venue.")
		return
	}

	// Bookings of every field in the venue on the requested day, flattened.
	bookings := []dto.BookingSummaryDTO{}
	if len(fieldIDs) > 0 {
		day, _ := validators.ParseDate(date)
		next := day.AddDate(0, 0, 1)

		var rows []models.Booking
		if err := h.db.
			Select("id", "title", "user_id", "play_date_start", "play_date_end").
			Where("field_id IN ?", fieldIDs).
			Where("play_date_start >= ? AND play_date_start < ?", day, next).
			Order("play_date_start ASC").
			Find(&rows).Error; err != nil {
			httperr.Internal(c, "failed_to_get_venue", "Could not load the venue.")
			return
		}

		for _, b := range rows {
			bookings = append(bookings, dto.BookingSummaryDTO{
				ID:            b.ID,
				Title:         b.Title,
				UserID:        b.UserID,
				PlayDateStart: b.PlayDateStart,
				PlayDateEnd:   b.PlayDateEnd,
			})
		}
	}

	httpresp.OK(c, "success get venue by id", dto.VenueDetailDTO{
		ID:       venue.ID,
		Name:     venue.Name,
		Address:  venue.Address,
		Phone:    venue.Phone,
		Bookings: bookings,
	})
}

func (h *VenueHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("venue_id")

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validators.FieldMessages(err))
		return
	}

	var venue models.Venue
	if err := h.db.First(&venue, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "venue_not_found", "Venue not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_venue", "Could not load the venue.")
		return
	}

	venue.Name = req.Name
	venue.Address = req.Address
	venue.Phone = req.Phone

	if err := h.db.Save(&venue).Error; err != nil {
		httperr.Internal(c, "failed_to_update_venue", "Could not update the venue.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "venue_updated",
		Entity:   "venue",
		EntityID: &venue.ID,
	})

	httpresp.OK(c, "venue updated", venue)
}
