package handlers

import (
	"net/http"

	response "pharma_express/internal/adapter/http/dto/response"
	"pharma_express/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the drug catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.Categories(c.Request.Context())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(categories))
}

// ListMedicines filters by the category query parameter; without one it
// returns the whole catalog grouped by category.
func (h *CatalogHandler) ListMedicines(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		sections, err := h.usecase.Sections(c.Request.Context())
		if err != nil {
			appErr := mapError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromSections(sections))
		return
	}

	items, err := h.usecase.MedicinesByCategory(c.Request.Context(), category)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}
