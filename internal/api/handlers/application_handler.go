package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/services"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type ApplyRequest struct {
	SOP string `json:"sop"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	p, ok := requireType(c, models.TypeApplicant, "You don't have permissions to apply for a job")
	if !ok {
		return
	}

	jobID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, "ApplicationHandler.Apply", "Job does not exist", err))
		return
	}

	// the statement of purpose is optional, so an empty body is fine
	var req ApplyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Apply", "invalid request body", err))
			return
		}
	}

	if _, err := h.svc.Apply(c.Request.Context(), p, jobID, req.SOP); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Job application successful"})
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	p, ok := requireType(c, models.TypeRecruiter, "You don't have permissions to view job applications")
	if !ok {
		return
	}

	jobID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, "ApplicationHandler.ListForJob", "Job does not exist", err))
		return
	}

	var statuses []models.ApplicationStatus
	for _, s := range c.QueryArray("status") {
		statuses = append(statuses, models.ApplicationStatus(s))
	}

	apps, err := h.svc.ListForJob(c.Request.Context(), p, jobID, statuses)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	apps, err := h.svc.ListMine(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

type UpdateApplicationRequest struct {
	Status        models.ApplicationStatus `json:"status" binding:"required"`
	DateOfJoining *time.Time               `json:"dateOfJoining"`
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, "ApplicationHandler.UpdateStatus", "Application not found", err))
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.UpdateStatus", "invalid request body", err))
		return
	}

	msg, err := h.svc.UpdateStatus(c.Request.Context(), p, id, req.Status, req.DateOfJoining)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: msg})
}

func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	p, ok := requireType(c, models.TypeRecruiter, "You are not allowed to access applicants list")
	if !ok {
		return
	}

	var jobID *primitive.ObjectID
	if raw := c.Query("jobId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.ListApplicants", "jobId must be a valid id", err))
			return
		}
		jobID = &id
	}

	var statuses []models.ApplicationStatus
	for _, s := range c.QueryArray("status") {
		statuses = append(statuses, models.ApplicationStatus(s))
	}

	out, err := h.svc.ListApplicants(c.Request.Context(), p, jobID, statuses, parseSortKeys(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
