package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/navalhaclub/booking-api/internal/cache"
	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/db"
	"github.com/navalhaclub/booking-api/internal/logging"
	"github.com/navalhaclub/booking-api/internal/media"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/payments"
	"github.com/navalhaclub/booking-api/internal/routes"
)

func main() {
	cfg := config.Load()

	log := logging.NewLogger(cfg.Environment)
	defer log.Sync()

	database := db.NewDB(cfg, log)

	rdb := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, log)
	slotCache := cache.NewSlotCache(rdb)

	checkout, err := payments.NewCheckout(cfg.MercadoPagoToken)
	if err != nil {
		log.Fatal("mercadopago setup failed", zap.Error(err))
	}

	storage := media.NewStorage(media.StorageConfig{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
		PublicURL: cfg.MediaPublicURL,
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Deps{
		DB:       database,
		Log:      log,
		Cache:    slotCache,
		Checkout: checkout,
		Storage:  storage,
	})

	log.Info("booking api listening",
		zap.String("addr", cfg.Addr()),
		zap.String("env", cfg.Environment),
	)

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
