package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/api/middleware"
	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requirePrincipal(c *gin.Context) (models.Principal, bool) {
	p, ok := middleware.Principal(c)
	if !ok {
		writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
		return models.Principal{}, false
	}
	return p, true
}

// requireType enforces a role gate with the endpoint's own rejection
// message (role rejections are 401 in the public contract).
func requireType(c *gin.Context, t models.UserType, message string) (models.Principal, bool) {
	p, ok := requirePrincipal(c)
	if !ok {
		return models.Principal{}, false
	}
	if p.Type != t {
		writeError(c, utils.E(utils.CodeForbidden, "Auth", message, nil))
		return models.Principal{}, false
	}
	return p, true
}
