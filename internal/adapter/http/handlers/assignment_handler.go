package handlers

import (
	"log"
	"net/http"

	response "pharma_express/internal/adapter/http/dto/response"
	"pharma_express/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler serves the benefit screen.

type AssignmentHandler struct {
	usecase   usecase.IAssignmentUseCase
	selection usecase.ISelectionUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase, selection usecase.ISelectionUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc, selection: selection}
}

// GetAssignment runs the screen-open orchestration and returns the resolved
// state together with the primed selection snapshot.
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	_, sessionID, email := identity(c)
	log.Printf("[assignment][handler] resolve start session_id=%s", sessionID)

	detail, err := h.usecase.Resolve(c.Request.Context(), sessionID, email)
	if err != nil {
		log.Printf("[assignment][handler] resolve failed session_id=%s err=%v", sessionID, err)
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.FromAssignmentDetail(detail)
	if snap, ok := h.selection.Snapshot(sessionID); ok {
		sel := response.FromSelectionSnapshot(snap)
		resp.Selection = &sel
	}
	c.JSON(http.StatusOK, resp)
}
