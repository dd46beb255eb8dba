package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/wahanakarya/cms_api/internal/service"
)

// maxUploadSize bounds a single media upload (10 MiB).
const maxUploadSize = 10 << 20

// UploadHandler handles admin media file uploads.
type UploadHandler struct {
	uploads *service.UploadService
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload handles POST /v1/admin/uploads (multipart, field "file").
func (h *UploadHandler) Upload(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		respondError(c, http.StatusBadRequest, "file exceeds the 10MB limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")
		respondError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		log.Error().Err(err).Msg("failed to read uploaded file")
		respondError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.uploads.UploadMedia(c.Request.Context(), fileHeader.Filename, data, contentType)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("media upload failed")
		respondError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
