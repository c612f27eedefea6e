package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flavorshare/backend/internal/middleware"
	"github.com/flavorshare/backend/internal/service"
)

// imageFolder is the object-store prefix recipe images are uploaded under.
const imageFolder = "recipes"

// ImageHandler serves the direct image upload/delete endpoints. The
// best-effort release on recipe deletion goes through the service layer,
// not through these handlers.
type ImageHandler struct {
	images service.IImageService
	auth   middleware.TokenValidator
}

func NewImageHandler(images service.IImageService, auth middleware.TokenValidator) *ImageHandler {
	return &ImageHandler{images: images, auth: auth}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware(h.auth))
	{
		recipes.POST("/upload-image", h.UploadImage)
		// Wildcard so object keys containing slashes resolve.
		recipes.DELETE("/delete-image/*publicId", h.DeleteImage)
	}
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeValidation})
		return
	}

	ref, err := h.images.Upload(c.Request.Context(), req.Image, imageFolder)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ref)
}

// DeleteImage is the direct endpoint: unlike the release that rides along
// recipe deletion, a relay failure here surfaces to the caller.
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")

	if err := h.images.Delete(c.Request.Context(), publicID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "image removed"})
}
