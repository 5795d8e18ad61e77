package delivery

import (
	"errors"
	"net/http"

	"stayhub-backend/internal/media/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MediaHandler struct {
	mediaUsecase usecase.MediaUsecase
	log          *zap.Logger
}

func NewMediaHandler(mediaUsecase usecase.MediaUsecase, log *zap.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUsecase: mediaUsecase,
		log:          log,
	}
}

type uploadByLinkRequest struct {
	Link string `json:"link" binding:"required"`
}

func (h *MediaHandler) UploadByLink(c *gin.Context) {
	var req uploadByLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "link is required"})
		return
	}

	filename, err := h.mediaUsecase.DownloadByLink(c.Request.Context(), req.Link)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyLink):
			c.JSON(http.StatusBadRequest, gin.H{"error": "link is required"})
		case errors.Is(err, usecase.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds size limit"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to download image"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"filename": filename})
}

func (h *MediaHandler) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}

	filenames, err := h.mediaUsecase.SavePhotos(form.File["photos"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoFiles):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		case errors.Is(err, usecase.ErrTooManyFiles):
			c.JSON(http.StatusBadRequest, gin.H{"error": "too many files"})
		case errors.Is(err, usecase.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds size limit"})
		case errors.Is(err, usecase.ErrNotAnImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "only image files are accepted"})
		default:
			h.log.Error("photo upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"filenames": filenames})
}
