package handlers

import (
	"net/http"

	request "pharma_express/internal/adapter/http/dto/request"
	response "pharma_express/internal/adapter/http/dto/response"
	"pharma_express/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SelectionHandler mutates the session's budgeted selection.

type SelectionHandler struct {
	selection usecase.ISelectionUseCase
}

func NewSelectionHandler(selection usecase.ISelectionUseCase) *SelectionHandler {
	return &SelectionHandler{selection: selection}
}

// Toggle flips one item. A toggle that would push the total past the budget
// ceiling is rejected and leaves the selection untouched.
func (h *SelectionHandler) Toggle(c *gin.Context) {
	_, sessionID, _ := identity(c)

	var payload request.ToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	on, snap, err := h.selection.Toggle(sessionID, payload.ItemID, payload.Price)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ToggleResponse{
		Selected:  on,
		Selection: response.FromSelectionSnapshot(snap),
	})
}

// GetSelection returns the current snapshot.
func (h *SelectionHandler) GetSelection(c *gin.Context) {
	_, sessionID, _ := identity(c)

	snap, ok := h.selection.Snapshot(sessionID)
	if !ok {
		appErr := mapError(usecase.ErrNoSelectionSession)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSelectionSnapshot(snap))
}
