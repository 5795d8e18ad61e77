package api

import (
	authdelivery "stayhub-backend/internal/auth/delivery"
	authUsecase "stayhub-backend/internal/auth/usecase"
	bookingdelivery "stayhub-backend/internal/booking/delivery"
	bookingUsecase "stayhub-backend/internal/booking/usecase"
	mediadelivery "stayhub-backend/internal/media/delivery"
	mediaUsecase "stayhub-backend/internal/media/usecase"
	placedelivery "stayhub-backend/internal/place/delivery"
	placeUsecase "stayhub-backend/internal/place/usecase"
	"stayhub-backend/pkg/config"
	"stayhub-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	codec          *token.Codec
	cfg            *config.Config
	authHandler    *authdelivery.AuthHandler
	placeHandler   *placedelivery.PlaceHandler
	bookingHandler *bookingdelivery.BookingHandler
	mediaHandler   *mediadelivery.MediaHandler
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	placeUc placeUsecase.PlaceUsecase,
	bookingUc bookingUsecase.BookingUsecase,
	mediaUc mediaUsecase.MediaUsecase,
	codec *token.Codec,
	cfg *config.Config,
	log *zap.Logger,
) *Handler {
	return &Handler{
		codec:          codec,
		cfg:            cfg,
		authHandler:    authdelivery.NewAuthHandler(authUc, cfg, log),
		placeHandler:   placedelivery.NewPlaceHandler(placeUc, log),
		bookingHandler: bookingdelivery.NewBookingHandler(bookingUc, log),
		mediaHandler:   mediadelivery.NewMediaHandler(mediaUc, log),
	}
}

func (h *Handler) Start(addr string) error {
	if h.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Ingested media is served straight from the upload directory
	r.Static("/uploads", h.cfg.UploadDir)

	SetupRoutes(r, h.codec, h.authHandler, h.placeHandler, h.bookingHandler, h.mediaHandler)

	return r.Run(addr)
}
