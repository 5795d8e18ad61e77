package api

import (
	"net/http"

	authdelivery "stayhub-backend/internal/auth/delivery"
	bookingdelivery "stayhub-backend/internal/booking/delivery"
	mediadelivery "stayhub-backend/internal/media/delivery"
	"stayhub-backend/internal/middleware"
	placedelivery "stayhub-backend/internal/place/delivery"
	"stayhub-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	codec *token.Codec,
	authHandler *authdelivery.AuthHandler,
	placeHandler *placedelivery.PlaceHandler,
	bookingHandler *bookingdelivery.BookingHandler,
	mediaHandler *mediadelivery.MediaHandler,
) {
	authRequired := authdelivery.AuthMiddleware(codec)

	// credential endpoints get a tight limit, ingestion a looser one
	credentialLimiter := middleware.NewRateLimiter(30, 10)
	ingestionLimiter := middleware.NewRateLimiter(60, 20)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		api.POST("/register", credentialLimiter.Middleware(), authHandler.Register)
		api.POST("/login", credentialLimiter.Middleware(), authHandler.Login)
		api.POST("/logout", authRequired, authHandler.Logout)
		api.GET("/profile", authRequired, authHandler.Profile)

		// Media ingestion (protected; the legacy endpoints were public)
		api.POST("/upload-by-link", authRequired, ingestionLimiter.Middleware(), mediaHandler.UploadByLink)
		api.POST("/upload-photos", authRequired, ingestionLimiter.Middleware(), mediaHandler.UploadPhotos)

		// Place routes; single-place read is public
		api.POST("/places", authRequired, placeHandler.Create)
		api.GET("/places", authRequired, placeHandler.ListAll)
		api.GET("/places/:id", placeHandler.GetByID)
		api.PUT("/places/:id", authRequired, placeHandler.Update)
		api.GET("/user-places", authRequired, placeHandler.ListMine)

		// Booking routes (protected, scoped to the caller)
		api.POST("/bookings", authRequired, bookingHandler.Create)
		api.GET("/bookings", authRequired, bookingHandler.ListMine)
	}
}
