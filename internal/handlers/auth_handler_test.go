package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/config"
	"github.com/mainbersama/venue-booking/internal/mailer"
	"github.com/mainbersama/venue-booking/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// An in-memory sqlite database lives inside one connection.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.SetupJoinTable(&models.User{}, "Schedules", &models.Schedule{}))
	require.NoError(t, db.SetupJoinTable(&models.Booking{}, "Players", &models.Schedule{}))
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.OtpCode{},
		&models.Venue{},
		&models.Field{},
		&models.Booking{},
		&models.Schedule{},
		&models.AuditLog{},
	))

	return db
}

func jsonContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func newTestAuthHandler(db *gorm.DB) *AuthHandler {
	h := NewAuthHandler(db, &config.Config{JWTSecret: "test-secret"}, mailer.NewLog(zap.NewNop()), nil, nil)
	h.domainCheck = func(string) bool { return true }
	return h
}

func registerBody(email string) gin.H {
	return gin.H{
		"name":                  "Dina",
		"email":                 email,
		"password":              "secret1",
		"password_confirmation": "secret1",
	}
}

func TestRegisterCreatesUserAndOtp(t *testing.T) {
	db := setupDB(t)
	h := newTestAuthHandler(db)

	c, w := jsonContext(t, http.MethodPost, "/api/v1/register", registerBody("dina@example.com"))
	h.Register(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "dina@example.com").First(&user).Error)
	assert.False(t, user.IsVerified)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "secret1", user.Password)

	var code models.OtpCode
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&code).Error)
	assert.GreaterOrEqual(t, code.OtpCode, 100000)
	assert.LessOrEqual(t, code.OtpCode, 999999)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	h := newTestAuthHandler(db)

	require.NoError(t, db.Create(&models.User{
		Name:     "Dina",
		Email:    "dina@example.com",
		Password: "hashed",
		Role:     "user",
	}).Error)

	c, w := jsonContext(t, http.MethodPost, "/api/v1/register", registerBody("dina@example.com"))
	h.Register(c)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		ErrorCode string            `json:"error_code"`
		Fields    map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.ErrorCode)
	assert.Equal(t, "email already registered", resp.Fields["email"])

	var users, codes int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.OtpCode{}).Count(&codes)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(0), codes)
}

func TestRegisterLookupFailure(t *testing.T) {
	db := setupDB(t)
	h := newTestAuthHandler(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	c, w := jsonContext(t, http.MethodPost, "/api/v1/register", registerBody("dina@example.com"))
	h.Register(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOtpConfirmation(t *testing.T) {
	db := setupDB(t)
	h := newTestAuthHandler(db)

	user := models.User{Name: "Dina", Email: "dina@example.com", Password: "hashed", Role: "user"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.OtpCode{OtpCode: 123456, UserID: user.ID}).Error)

	body := gin.H{"email": "dina@example.com", "otp_code": 123456}

	c, w := jsonContext(t, http.MethodPost, "/api/v1/otp-confirmation", body)
	h.OtpConfirmation(c)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.True(t, got.IsVerified)

	// Resubmitting the same pair is a harmless repeat.
	c, w = jsonContext(t, http.MethodPost, "/api/v1/otp-confirmation", body)
	h.OtpConfirmation(c)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&got, user.ID).Error)
	assert.True(t, got.IsVerified)
}

func TestOtpConfirmationWrongCode(t *testing.T) {
	db := setupDB(t)
	h := newTestAuthHandler(db)

	user := models.User{Name: "Dina", Email: "dina@example.com", Password: "hashed", Role: "user"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.OtpCode{OtpCode: 123456, UserID: user.ID}).Error)

	c, w := jsonContext(t, http.MethodPost, "/api/v1/otp-confirmation", gin.H{
		"email":    "dina@example.com",
		"otp_code": 654321,
	})
	h.OtpConfirmation(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.False(t, got.IsVerified)
}
