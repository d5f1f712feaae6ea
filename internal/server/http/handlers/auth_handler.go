package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/customerhub/internal/domain/errors"
	"github.com/polkiloo/customerhub/internal/server/http/dto"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, MessageInvalidBody)
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingField):
			respondMessage(c, http.StatusBadRequest, MessageMissingFields)
		case errors.Is(err, domainErrors.ErrWeakPassword):
			respondMessage(c, http.StatusBadRequest, MessageWeakPassword)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondMessage(c, http.StatusBadRequest, MessageUserExists)
		default:
			respondInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{JWTToken: token})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, MessageInvalidBody)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingField):
			respondMessage(c, http.StatusBadRequest, MessageMissingLogin)
		case errors.Is(err, domainErrors.ErrInvalidUser):
			respondMessage(c, http.StatusBadRequest, MessageInvalidUser)
		case errors.Is(err, domainErrors.ErrInvalidPassword):
			respondMessage(c, http.StatusBadRequest, MessageInvalidPassword)
		default:
			respondInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{JWTToken: token})
}

// Protected handles GET /protected-route. It only confirms the token was accepted.
func (h *AuthHandler) Protected(c *gin.Context) {
	c.String(http.StatusOK, MessageProtectedResource)
}
