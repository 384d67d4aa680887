package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/services"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler covers recruiter verification: the admin review
// endpoints plus the public document fetch.
type AdminHandler struct {
	svc services.UserService
}

func NewAdminHandler(svc services.UserService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type VerifyRequest struct {
	ID     string            `json:"id" binding:"required"`
	Status models.UserStatus `json:"status" binding:"required"`
}

func (h *AdminHandler) Verify(c *gin.Context) {
	const op = "AdminHandler.Verify"

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "id must be a valid id", err))
		return
	}

	if err := h.svc.SetUserStatus(c.Request.Context(), id, req.Status); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID, "status": req.Status})
}

func (h *AdminHandler) ListRecruiters(c *gin.Context) {
	recruiters, err := h.svc.ListRecruiters(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recruiters)
}

type recruiterStatusResponse struct {
	Status models.UserStatus `json:"status"`
}

func (h *AdminHandler) RecruiterStatus(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, recruiterStatusResponse{Status: p.Status})
}

// VerificationDocument streams the recruiter's stored document. Only
// hosted URLs are supported; anything else reads as missing.
func (h *AdminHandler) VerificationDocument(c *gin.Context) {
	const op = "AdminHandler.VerificationDocument"

	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, op, "Recruiter not found", err))
		return
	}

	url, err := h.svc.VerificationDocument(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	if !strings.HasPrefix(url, "http") {
		writeError(c, utils.E(utils.CodeNotFound, op, "Verification document not found", nil))
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, nil)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to fetch verification document", err))
		return
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		writeError(c, utils.E(utils.CodeUnavailable, op, "failed to fetch verification document", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		writeError(c, utils.E(utils.CodeNotFound, op, "Verification document not found", nil))
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", resp.Header.Get("Content-Type"))
	_, _ = io.Copy(c.Writer, resp.Body)
}
