package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/dto"
	"github.com/mainbersama/venue-booking/internal/models"
)

func seedVenues(t *testing.T, db *gorm.DB) (mixed, futsalOnly, empty models.Venue) {
	t.Helper()

	mixed = models.Venue{Name: "Arena Utama", Address: "Jl. Merdeka 1", Phone: "0811"}
	futsalOnly = models.Venue{Name: "Gor Kedua", Address: "Jl. Merdeka 2", Phone: "0812"}
	empty = models.Venue{Name: "Lapangan Baru", Address: "Jl. Merdeka 3", Phone: "0813"}
	require.NoError(t, db.Create(&mixed).Error)
	require.NoError(t, db.Create(&futsalOnly).Error)
	require.NoError(t, db.Create(&empty).Error)

	require.NoError(t, db.Create(&models.Field{Name: "Court 1", Type: "soccer", VenueID: mixed.ID}).Error)
	require.NoError(t, db.Create(&models.Field{Name: "Court 2", Type: "futsal", VenueID: mixed.ID}).Error)
	require.NoError(t, db.Create(&models.Field{Name: "Court 3", Type: "futsal", VenueID: futsalOnly.ID}).Error)

	return mixed, futsalOnly, empty
}

func decodeVenueList(t *testing.T, body []byte) []dto.VenueListDTO {
	t.Helper()
	var resp struct {
		Message string             `json:"message"`
		Data    []dto.VenueListDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Data
}

func TestVenueIndexTypeFilter(t *testing.T) {
	db := setupDB(t)
	h := NewVenueHandler(db, nil)
	mixed, _, _ := seedVenues(t, db)

	c, w := jsonContext(t, http.MethodGet, "/api/v1/venues?type=soccer", nil)
	h.Index(c)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeVenueList(t, w.Body.Bytes())
	require.Len(t, data, 1)
	assert.Equal(t, mixed.ID, data[0].ID)

	// The nested list is restricted to the filtered type too.
	require.Len(t, data[0].Fields, 1)
	assert.Equal(t, "soccer", data[0].Fields[0].Type)
}

func TestVenueIndexTypeFilterNoMatch(t *testing.T) {
	db := setupDB(t)
	h := NewVenueHandler(db, nil)
	seedVenues(t, db)

	c, w := jsonContext(t, http.MethodGet, "/api/v1/venues?type=basketball", nil)
	h.Index(c)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, decodeVenueList(t, w.Body.Bytes()))
}

func TestVenueIndexInvalidTypeFilter(t *testing.T) {
	db := setupDB(t)
	h := NewVenueHandler(db, nil)

	c, w := jsonContext(t, http.MethodGet, "/api/v1/venues?type=tennis", nil)
	h.Index(c)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestVenueIndexUnfiltered(t *testing.T) {
	db := setupDB(t)
	h := NewVenueHandler(db, nil)
	mixed, _, empty := seedVenues(t, db)

	c, w := jsonContext(t, http.MethodGet, "/api/v1/venues", nil)
	h.Index(c)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeVenueList(t, w.Body.Bytes())
	require.Len(t, data, 3)

	byID := map[uint]dto.VenueListDTO{}
	for _, v := range data {
		byID[v.ID] = v
	}
	assert.Len(t, byID[mixed.ID].Fields, 2)
	assert.Empty(t, byID[empty.ID].Fields)
}
