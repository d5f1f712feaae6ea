package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/customerhub/internal/domain/errors"
	"github.com/polkiloo/customerhub/internal/domain/model"
	"github.com/polkiloo/customerhub/internal/server/http/dto"
	"github.com/polkiloo/customerhub/internal/server/http/middleware"
)

const (
	MessageInvalidBody       = "Invalid request body"
	MessageMissingFields     = "Name, email and password are required"
	MessageMissingLogin      = "Email and password are required"
	MessageWeakPassword      = "Password must be longer than 4 characters"
	MessageUserExists        = "User already exists"
	MessageInvalidUser       = "Invalid user"
	MessageInvalidPassword   = "Invalid password"
	MessageCustomerNotFound  = "Customer not found"
	MessageCustomerUpdated   = "Customer updated successfully"
	MessageCustomerDeleted   = "Customer deleted successfully"
	MessageInternal          = "Internal server error"
	MessageProtectedResource = "Access granted to protected route"
)

// CurrentClaims extracts claims of the authenticated caller from context.
func CurrentClaims(c *gin.Context) (model.Claims, bool) {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return model.Claims{}, false
	}
	claims, ok := val.(model.Claims)
	return claims, ok
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{Success: status < http.StatusBadRequest, Message: message})
}

// respondInternal hides err from the client and leaves it for the request logger.
func respondInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	respondMessage(c, http.StatusInternalServerError, MessageInternal)
}

func respondNotFoundOr(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrNotFound) {
		respondMessage(c, http.StatusNotFound, MessageCustomerNotFound)
		return
	}
	respondInternal(c, err)
}
