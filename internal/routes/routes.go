package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/audit"
	"github.com/mainbersama/venue-booking/internal/config"
	"github.com/mainbersama/venue-booking/internal/handlers"
	infraRepo "github.com/mainbersama/venue-booking/internal/infra/repository"
	"github.com/mainbersama/venue-booking/internal/limiter"
	"github.com/mainbersama/venue-booking/internal/mailer"
	"github.com/mainbersama/venue-booking/internal/middleware"
	ucBooking "github.com/mainbersama/venue-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	m mailer.Mailer,
	loginLimiter *limiter.LoginLimiter,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	bookingDetailUC := ucBooking.NewGetBookingDetail(bookingRepo)
	joinBookingUC := ucBooking.NewJoinBooking(bookingRepo, auditDispatcher)
	unjoinBookingUC := ucBooking.NewUnjoinBooking(bookingRepo, auditDispatcher)
	destroyBookingUC := ucBooking.NewDestroyBooking(bookingRepo, auditDispatcher)
	schedulesUC := ucBooking.NewGetSchedules(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, m, loginLimiter, auditDispatcher)
	venueHandler := handlers.NewVenueHandler(db, auditDispatcher)
	fieldHandler := handlers.NewFieldHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		bookingDetailUC,
		joinBookingUC,
		unjoinBookingUC,
		destroyBookingUC,
		schedulesUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/otp-confirmation", authHandler.OtpConfirmation)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// VENUES + FIELDS (owner)
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRole("owner"))
			{
				owner.GET("/venues", venueHandler.Index)
				owner.POST("/venues", venueHandler.Store)
				owner.GET("/venues/:venue_id", venueHandler.Show)
				owner.PUT("/venues/:venue_id", venueHandler.Update)

				owner.GET("/venues/:venue_id/fields", fieldHandler.Index)
				owner.POST("/venues/:venue_id/fields", fieldHandler.Store)
				owner.GET("/venues/:venue_id/fields/:id", fieldHandler.Show)
				owner.PUT("/venues/:venue_id/fields/:id", fieldHandler.Update)
				owner.DELETE("/venues/:venue_id/fields/:id", fieldHandler.Destroy)
			}

			// ------------------------------
			// BOOKINGS (user)
			// ------------------------------
			user := secured.Group("/")
			user.Use(middleware.RequireRole("user"))
			{
				user.GET("/bookings", bookingHandler.Index)
				user.POST("/venues/:venue_id/bookings", bookingHandler.Store)
				user.GET("/bookings/:id", bookingHandler.Show)
				user.DELETE("/bookings/:id", bookingHandler.Destroy)
				user.POST("/bookings/:id/join", bookingHandler.Join)
				user.POST("/bookings/:id/unjoin", bookingHandler.Unjoin)
				user.GET("/schedules", bookingHandler.Schedules)
			}
		}
	}
}
