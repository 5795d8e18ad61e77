package delivery

import (
	"errors"
	"net/http"

	authdelivery "stayhub-backend/internal/auth/delivery"
	bookingdto "stayhub-backend/internal/booking/dto"
	"stayhub-backend/internal/booking/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	log            *zap.Logger
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		log:            log,
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	identity, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req bookingdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingUsecase.Create(identity.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDates):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking dates"})
		case errors.Is(err, usecase.ErrPlaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		default:
			h.log.Error("create booking failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	identity, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	bookings, err := h.bookingUsecase.ListByUser(identity.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		h.log.Error("list bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
