package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/services"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResumeHandler struct {
	svc services.ResumeService
}

func NewResumeHandler(svc services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

func (h *ResumeHandler) Create(c *gin.Context) {
	const op = "ResumeHandler.Create"

	var rs models.Resume
	if err := c.ShouldBindJSON(&rs); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	rs.ID = primitive.NilObjectID

	if err := h.svc.Create(c.Request.Context(), &rs); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Resume created successfully",
		"resume":  rs,
		"pdfPath": fmt.Sprintf("/api/resume/%s/pdf", rs.ID.Hex()),
	})
}

func (h *ResumeHandler) PDF(c *gin.Context) {
	const op = "ResumeHandler.PDF"

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, op, "PDF file not found", err))
		return
	}

	rs, out, err := h.svc.Render(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rs.Name+".pdf"))
	c.Data(http.StatusOK, "application/pdf", out)
}
