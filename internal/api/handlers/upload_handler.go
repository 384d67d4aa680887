package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/services"
	"github.com/jobhunt/backend/internal/utils"
)

type UploadHandler struct {
	svc services.UploadService
}

func NewUploadHandler(svc services.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Handle returns a gin handler that stores the multipart "file" field
// under the given kind's prefix.
func (h *UploadHandler) Handle(kind services.UploadKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		const op = "UploadHandler.Handle"

		header, err := c.FormFile("file")
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "file field is required", err))
			return
		}

		f, err := header.Open()
		if err != nil {
			writeError(c, utils.E(utils.CodeInternal, op, "Error in uploading", err))
			return
		}
		defer f.Close()

		url, err := h.svc.Upload(c.Request.Context(), kind, header.Filename, header.Size, f)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "File uploaded successfully!",
			"url":     url,
		})
	}
}
