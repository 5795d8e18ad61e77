package delivery

import (
	"errors"
	"net/http"

	authdelivery "stayhub-backend/internal/auth/delivery"
	placedto "stayhub-backend/internal/place/dto"
	"stayhub-backend/internal/place/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlaceHandler struct {
	placeUsecase usecase.PlaceUsecase
	log          *zap.Logger
}

func NewPlaceHandler(placeUsecase usecase.PlaceUsecase, log *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUsecase: placeUsecase,
		log:          log,
	}
}

func (h *PlaceHandler) Create(c *gin.Context) {
	identity, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req placedto.PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place, err := h.placeUsecase.Create(identity.UserID, &req)
	if err != nil {
		h.respondError(c, err, "create place")
		return
	}

	c.JSON(http.StatusCreated, place)
}

func (h *PlaceHandler) GetByID(c *gin.Context) {
	place, err := h.placeUsecase.GetByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "get place")
		return
	}

	c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) ListAll(c *gin.Context) {
	identity, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	places, err := h.placeUsecase.ListAll(identity.UserID)
	if err != nil {
		h.respondError(c, err, "list places")
		return
	}

	c.JSON(http.StatusOK, places)
}

func (h *PlaceHandler) ListMine(c *gin.Context) {
	identity, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	places, err := h.placeUsecase.ListByOwner(identity.UserID)
	if err != nil {
		h.respondError(c, err, "list own places")
		return
	}

	c.JSON(http.StatusOK, places)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	identity, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req placedto.PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place, err := h.placeUsecase.Update(identity.UserID, c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err, "update place")
		return
	}

	c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) respondError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrPlaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		h.log.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
