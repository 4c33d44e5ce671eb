package handlers

import (
	"log"
	"net/http"

	request "pharma_express/internal/adapter/http/dto/request"
	response "pharma_express/internal/adapter/http/dto/response"
	"pharma_express/internal/domain/entities"
	"pharma_express/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles account registration and session lifecycle.

type AuthHandler struct {
	usecase   usecase.IAuthUseCase
	selection usecase.ISelectionUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase, selection usecase.ISelectionUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc, selection: selection}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	err := h.usecase.Register(c.Request.Context(), entities.Registration{
		Name:     payload.Name,
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		Policy:   payload.Policy,
	})
	if err != nil {
		log.Printf("[auth][handler] register failed email=%s err=%v", payload.Email, err)
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusCreated)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	token, sess, err := h.usecase.Login(c.Request.Context(), payload.NormalizedEmail(), payload.Password)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Token:  token,
		UserID: sess.UserID,
		Email:  sess.Email,
	})
}

// Logout deletes the server-side session and drops its selection state.
func (h *AuthHandler) Logout(c *gin.Context) {
	_, sessionID, _ := identity(c)

	if err := h.usecase.Logout(c.Request.Context(), sessionID); err != nil {
		log.Printf("[auth][handler] logout failed session_id=%s err=%v", sessionID, err)
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.selection.Drop(sessionID)

	c.Status(http.StatusNoContent)
}
