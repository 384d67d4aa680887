package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/services"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingHandler struct {
	svc services.RatingService
}

func NewRatingHandler(svc services.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// UpsertRatingRequest carries the receiver under the field matching the
// sender's role: recruiters rate applicants, applicants rate jobs.
type UpsertRatingRequest struct {
	ApplicantID string  `json:"applicantId"`
	JobID       string  `json:"jobId"`
	Rating      float64 `json:"rating" binding:"required"`
}

func (h *RatingHandler) Upsert(c *gin.Context) {
	const op = "RatingHandler.Upsert"

	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req UpsertRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}

	rawReceiver := req.JobID
	if p.Type == models.TypeRecruiter {
		rawReceiver = req.ApplicantID
	}
	receiverID, err := primitive.ObjectIDFromHex(rawReceiver)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "receiver id must be a valid id", err))
		return
	}

	msg, err := h.svc.Upsert(c.Request.Context(), p, receiverID, req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: msg})
}

type ratingResponse struct {
	Rating float64 `json:"rating"`
}

func (h *RatingHandler) Get(c *gin.Context) {
	const op = "RatingHandler.Get"

	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	receiverID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "id must be a valid id", err))
		return
	}

	value, err := h.svc.Get(c.Request.Context(), p, receiverID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratingResponse{Rating: value})
}
