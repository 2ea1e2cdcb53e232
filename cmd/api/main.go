package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mainbersama/venue-booking/internal/config"
	dbpkg "github.com/mainbersama/venue-booking/internal/db"
	"github.com/mainbersama/venue-booking/internal/limiter"
	"github.com/mainbersama/venue-booking/internal/logger"
	"github.com/mainbersama/venue-booking/internal/mailer"
	"github.com/mainbersama/venue-booking/internal/middleware"
	"github.com/mainbersama/venue-booking/internal/routes"
)

func main() {

	cfg := config.Load()

	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Close()
	log := logger.Get()

	db := dbpkg.NewDB(cfg)

	loginLimiter := limiter.New(cfg.RedisAddr)

	var m mailer.Mailer
	if cfg.SMTPHost != "" {
		m = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	} else {
		m = mailer.NewLog(log)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, m, loginLimiter)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
