package routes

import (
	"pharma_express/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathCatalog   = "/categories"
	PathMedicines = "/medicines"
	PathOrders    = "/orders"
	PathSelection = "/selection"
)

func addAuthRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", requireSession, authHandler.Logout)
	}
}

func addBenefitRoutes(
	rg *gin.RouterGroup,
	requireSession gin.HandlerFunc,
	catalogHandler *handlers.CatalogHandler,
	assignmentHandler *handlers.AssignmentHandler,
	orderHandler *handlers.OrderHandler,
	selectionHandler *handlers.SelectionHandler,
) {
	rg.GET(PathCatalog, requireSession, catalogHandler.ListCategories)
	rg.GET(PathMedicines, requireSession, catalogHandler.ListMedicines)

	rg.GET("/assignment", requireSession, assignmentHandler.GetAssignment)

	orders := rg.Group(PathOrders, requireSession)
	{
		orders.GET("/phase", orderHandler.GetPhase)
		orders.POST("", orderHandler.CreateOrder)
		orders.PATCH("", orderHandler.UpdateOrder)
		orders.POST("/finalize", orderHandler.FinalizeOrder)
		orders.GET("/history", orderHandler.GetHistory)
		orders.GET("/history/export", orderHandler.ExportHistory)
	}

	selection := rg.Group(PathSelection, requireSession)
	{
		selection.POST("/toggle", selectionHandler.Toggle)
		selection.GET("", selectionHandler.GetSelection)
	}
}
