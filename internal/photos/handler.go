package photos

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/sheetdb"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/roles"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/security"
)

// 12 MB raw upload cap, before normalization.
const maxUploadBytes = 12 << 20

// Uploader is the slice of the register API the photo flow needs.
type Uploader interface {
	UploadPhoto(ctx context.Context, upload sheetdb.PhotoUpload) (string, error)
}

type Handler struct {
	uploader Uploader
}

func NewHandler(uploader Uploader) *Handler {
	return &Handler{uploader: uploader}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/assets/:id/photo", security.Authorize(roles.Editor), h.UploadPhoto)
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	assetID := c.Param("id")

	file, err := c.FormFile("photo")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing photo file"})
		return
	}
	if file.Size > maxUploadBytes {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Photo is too large"})
		return
	}

	opened, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to read photo", "details": err.Error()})
		return
	}
	defer opened.Close()

	raw, err := io.ReadAll(opened)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to read photo", "details": err.Error()})
		return
	}

	normalized, err := NormalizePhoto(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unsupported image format", "details": err.Error()})
		return
	}

	url, err := h.uploader.UploadPhoto(c.Request.Context(), sheetdb.PhotoUpload{
		FileName:   fmt.Sprintf("%s.jpg", assetID),
		Base64Data: base64.StdEncoding.EncodeToString(normalized),
		MimeType:   "image/jpeg",
		AssetID:    assetID,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload photo", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
