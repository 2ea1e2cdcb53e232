package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/audit"
	"github.com/mainbersama/venue-booking/internal/config"
	"github.com/mainbersama/venue-booking/internal/httperr"
	"github.com/mainbersama/venue-booking/internal/httpresp"
	"github.com/mainbersama/venue-booking/internal/limiter"
	"github.com/mainbersama/venue-booking/internal/mailer"
	"github.com/mainbersama/venue-booking/internal/models"
	"github.com/mainbersama/venue-booking/internal/otp"
	"github.com/mainbersama/venue-booking/internal/validators"
)

const tokenTTL = 12 * time.Hour

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	mailer  mailer.Mailer
	limiter *limiter.LoginLimiter
	audit   *audit.Dispatcher

	// Replaceable so tests do not depend on live DNS.
	domainCheck func(string) bool
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	m mailer.Mailer,
	l *limiter.LoginLimiter,
	a *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:          db,
		config:      cfg,
		mailer:      m,
		limiter:     l,
		audit:       a,
		domainCheck: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
	Role                 string `json:"role" binding:"omitempty,oneof=user owner"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type OtpConfirmationRequest struct {
	Email   string `json:"email" binding:"required,email"`
	OtpCode int    `json:"otp_code" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validators.FieldMessages(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.domainCheck(email) {
		httperr.Unprocessable(c, map[string]string{
			"email": "the email domain does not appear to be valid",
		})
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not look up the account.")
		return
	}
	if count > 0 {
		httperr.Unprocessable(c, map[string]string{
			"email": "email already registered",
		})
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	code, err := otp.Generate()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_otp", "Could not generate a verification code.")
		return
	}

	// Same ordering as always: the mail goes out before the rows exist, so
	// a failed insert after a sent mail is possible.
	if err := h.mailer.SendOTP(c.Request.Context(), email, req.Name, code); err != nil {
		httperr.Internal(c, "failed_to_send_otp", "Could not send the verification mail.")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.OtpCode{OtpCode: code, UserID: user.ID}).Error
	})
	if err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Unprocessable(c, map[string]string{
				"email": "email already registered",
			})
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, "register success, please verify your otp code", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.limiter.Allow(c.Request.Context(), email) {
		httperr.TooManyRequests(c, "too_many_attempts", "Too many login attempts, try again later.")
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.BadRequest(c, "invalid_credentials", "Email or password is wrong.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not look up the account.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httperr.BadRequest(c, "invalid_credentials", "Email or password is wrong.")
		return
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := h.generateToken(&user, expiresAt)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	h.limiter.Reset(c.Request.Context(), email)

	httpresp.OK(c, "login success", gin.H{
		"type":       "bearer",
		"token":      token,
		"expires_at": expiresAt,
	})
}

func (h *AuthHandler) OtpConfirmation(c *gin.Context) {
	var req OtpConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validators.FieldMessages(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.
		Select("users.*").
		Joins("JOIN otp_codes ON otp_codes.user_id = users.id").
		Where("users.email = ? AND otp_codes.otp_code = ?", email, req.OtpCode).
		First(&user).Error; err != nil {

		httperr.NotFound(c, "invalid_otp", "Invalid otp code or email.")
		return
	}

	// Re-verifying an already verified user is a harmless save.
	user.IsVerified = true
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_verify_user", "Could not verify the account.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_verified",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, "your OTP code valid, verification success", nil)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"jti":  uuid.NewString(),
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
