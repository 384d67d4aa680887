package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/services"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me returns the caller's own profile in the shape matching their role.
func (h *UserHandler) Me(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	h.writeProfile(c, p.ID, p.Type)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, "UserHandler.GetByID", "User does not exist", err))
		return
	}

	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	h.writeProfile(c, u.ID, u.Type)
}

func (h *UserHandler) writeProfile(c *gin.Context, userID primitive.ObjectID, t models.UserType) {
	if t == models.TypeRecruiter {
		p, err := h.svc.GetRecruiterProfile(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
		return
	}

	p, err := h.svc.GetApplicantProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileRequest is the union of both profile shapes; the
// caller's role decides which fields apply.
type UpdateProfileRequest struct {
	Name *string `json:"name"`

	// recruiter fields
	ContactNumber        *string `json:"contactNumber"`
	Bio                  *string `json:"bio"`
	VerificationDocument *string `json:"verificationDocument"`

	// applicant fields
	Education *[]models.Education `json:"education"`
	Skills    *[]string           `json:"skills"`
	Resume    *string             `json:"resume"`
	Profile   *string             `json:"profile"`
}

func (h *UserHandler) Update(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.Update", "invalid request body", err))
		return
	}

	var err error
	if p.Type == models.TypeRecruiter {
		err = h.svc.UpdateRecruiterProfile(c.Request.Context(), p.ID, services.RecruiterPatch{
			Name:                 req.Name,
			ContactNumber:        req.ContactNumber,
			Bio:                  req.Bio,
			VerificationDocument: req.VerificationDocument,
		})
	} else {
		err = h.svc.UpdateApplicantProfile(c.Request.Context(), p.ID, services.ApplicantPatch{
			Name:      req.Name,
			Education: req.Education,
			Skills:    req.Skills,
			Resume:    req.Resume,
			Profile:   req.Profile,
		})
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "User information updated successfully"})
}
