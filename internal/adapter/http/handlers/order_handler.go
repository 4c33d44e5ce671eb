package handlers

import (
	"log"
	"net/http"
	"time"

	request "pharma_express/internal/adapter/http/dto/request"
	response "pharma_express/internal/adapter/http/dto/response"
	"pharma_express/internal/adapter/export"
	"pharma_express/internal/domain/entities"
	"pharma_express/internal/observability/metrics"
	"pharma_express/internal/usecase"
	"pharma_express/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles the order lifecycle endpoints.
//
// Create and update never take an item list from the client: the server-side
// selection for the session is the single source for ids and total.

type OrderHandler struct {
	lifecycle usecase.IOrderLifecycleUseCase
	selection usecase.ISelectionUseCase
}

func NewOrderHandler(lifecycle usecase.IOrderLifecycleUseCase, selection usecase.ISelectionUseCase) *OrderHandler {
	return &OrderHandler{lifecycle: lifecycle, selection: selection}
}

func (h *OrderHandler) GetPhase(c *gin.Context) {
	userID, _, _ := identity(c)

	phase, err := h.lifecycle.ResolveCurrentPhase(c.Request.Context(), userID)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPhase(phase))
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, sessionID, _ := identity(c)

	snap, ok := h.selection.Snapshot(sessionID)
	if !ok {
		appErr := mapError(usecase.ErrNoSelectionSession)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	phase, err := h.lifecycle.CreateOrder(c.Request.Context(), userID, snap.SelectedIDs, snap.Total)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success user_id=%d order_id=%d", userID, phase.OrderID())

	h.rehydrateFromPhase(sessionID, phase)
	c.JSON(http.StatusCreated, h.phaseWithSelection(sessionID, phase))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	userID, sessionID, _ := identity(c)

	var payload request.OrderMutationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	snap, ok := h.selection.Snapshot(sessionID)
	if !ok {
		appErr := mapError(usecase.ErrNoSelectionSession)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	phase, err := h.lifecycle.UpdateOrder(c.Request.Context(), userID, payload.OrderID, snap.SelectedIDs, snap.Total)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.rehydrateFromPhase(sessionID, phase)
	c.JSON(http.StatusOK, h.phaseWithSelection(sessionID, phase))
}

func (h *OrderHandler) FinalizeOrder(c *gin.Context) {
	userID, _, _ := identity(c)

	var payload request.OrderMutationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.lifecycle.FinalizeOrder(c.Request.Context(), payload.OrderID); err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] finalize success user_id=%d order_id=%d", userID, payload.OrderID)

	c.JSON(http.StatusOK, response.PhaseResponse{Phase: string(entities.PhaseMonthCompleted)})
}

func (h *OrderHandler) GetHistory(c *gin.Context) {
	userID, _, _ := identity(c)

	orders, err := h.lifecycle.History(c.Request.Context(), userID)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(orders))
}

// ExportHistory renders the history as a downloadable PDF or XLSX.
func (h *OrderHandler) ExportHistory(c *gin.Context) {
	userID, _, _ := identity(c)
	format := c.DefaultQuery("format", "pdf")
	if format != "pdf" && format != "xlsx" {
		appErr := pkg.NewDomainErrorSimple("INVALID_FORMAT", "Format must be pdf or xlsx", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orders, err := h.lifecycle.History(c.Request.Context(), userID)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	userName := ""
	if len(orders) > 0 {
		userName = orders[0].UserName
	}

	start := time.Now()
	var (
		data        []byte
		contentType string
		filename    string
	)
	switch format {
	case "pdf":
		data, err = export.BuildHistoryPDF(userName, orders)
		contentType = "application/pdf"
		filename = "history.pdf"
	case "xlsx":
		data, err = export.BuildHistoryXLSX(userName, orders)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = "history.xlsx"
	}
	if err != nil {
		metrics.ObserveHistoryExport(format, metrics.ResultError, time.Since(start))
		log.Printf("[order][handler] export failed user_id=%d format=%s err=%v", userID, format, err)
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Could not render history export", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.ObserveHistoryExport(format, metrics.ResultSuccess, time.Since(start))

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// rehydrateFromPhase re-syncs the session's selection with the canonical
// order returned by a mutation.
func (h *OrderHandler) rehydrateFromPhase(sessionID string, phase entities.Phase) {
	if phase.Order != nil {
		h.selection.Rehydrate(sessionID, phase.Order.MedicineIDs)
	}
}

func (h *OrderHandler) phaseWithSelection(sessionID string, phase entities.Phase) gin.H {
	resp := gin.H{"phase": string(phase.Kind)}
	if phase.Order != nil {
		o := response.FromOrder(*phase.Order)
		resp["order"] = o
	}
	if snap, ok := h.selection.Snapshot(sessionID); ok {
		resp["selection"] = response.FromSelectionSnapshot(snap)
	}
	return resp
}
