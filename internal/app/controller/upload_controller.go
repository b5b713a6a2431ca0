package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/foodreview-backend/internal/errors"
	"github.com/ikkim/foodreview-backend/internal/middleware"
	"github.com/ikkim/foodreview-backend/internal/storage"
)

const restaurantImageFolder = "restaurants"

type UploadController struct {
	storage storage.ImageStorage
}

func NewUploadController(storage storage.ImageStorage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// GeneratePresignedURL generates a presigned URL for uploading a restaurant image to S3
// POST /api/v1/uploads/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeneratePresignedURLRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := ctrl.storage.PresignUpload(c.Request.Context(), req.Filename, req.ContentType, restaurantImageFolder)
	if err != nil {
		var notAllowed *storage.ErrContentTypeNotAllowed
		if stderrors.As(err, &notAllowed) {
			log.Warn("Invalid content type", map[string]interface{}{
				"content_type": req.ContentType,
			})
			apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only image files are allowed (JPEG, PNG, GIF, WEBP)")
			return
		}
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename":     req.Filename,
			"content_type": req.ContentType,
		})
		apperrors.InternalError(c, "Failed to generate upload URL")
		return
	}

	log.Info("Presigned URL generated successfully", map[string]interface{}{
		"key": response.Key,
	})
	c.JSON(http.StatusOK, response)
}
