package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// saveUpload stores an uploaded file under the upload directory with a
// random filename and returns its public URL.
func (h *Handlers) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	filename := uuid.New().String() + ext
	dst := filepath.Join(h.Config.UploadDir, filename)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/uploads/%s", h.Config.BaseURL, filename), nil
}

// UploadImage is the handler for POST /api/admin/upload. It accepts one
// file in the image field and returns the URL it was published under.
func (h *Handlers) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	url, err := h.saveUpload(c, file)
	if err != nil {
		h.Log.Error("saving upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
