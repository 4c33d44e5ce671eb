package handlers

import (
	"errors"
	"net/http"

	"pharma_express/internal/adapter/http/middleware"
	"pharma_express/internal/domain/selection"
	"pharma_express/internal/infrastructure/medapi"
	"pharma_express/internal/usecase"
	"pharma_express/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapError translates use case errors to transport errors. Anything not
// recognized is treated as an unreachable upstream.
func mapError(err error) *pkg.AppError {
	var be *pkg.BackendError
	switch {
	case errors.Is(err, usecase.ErrMissingIdentity):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "No user identity in session", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNoActiveOrder):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_ORDER", "No active order for this month", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoSelectionSession):
		return pkg.NewDomainErrorSimple("NO_SELECTION", "No selection for this session", http.StatusConflict)
	case errors.Is(err, selection.ErrBudgetExceeded):
		return pkg.NewDomainErrorSimple("BUDGET_EXCEEDED", "Budget limit reached", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid category name", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRegistration):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Email and password are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoUserInformation):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "No user information for this account", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrEmailNotRegistered):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Session expired", http.StatusUnauthorized)
	case errors.Is(err, medapi.ErrMalformedResponse):
		return pkg.NewDomainError("BACKEND_ERROR", "Medical API returned a malformed response", err, http.StatusBadGateway)
	case errors.As(err, &be):
		return pkg.NewDomainError("BACKEND_ERROR", "Medical API rejected the request", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "Medical API unreachable", err, http.StatusServiceUnavailable)
	}
}

// identity reads the session attributes injected by the auth middleware.
func identity(c *gin.Context) (userID int, sessionID, email string) {
	userID = c.GetInt(middleware.ContextUserID)
	sessionID = c.GetString(middleware.ContextSessionID)
	email = c.GetString(middleware.ContextEmail)
	return userID, sessionID, email
}
