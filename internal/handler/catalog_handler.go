package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VeloraJewelry/storefront_api/internal/models"
	"github.com/VeloraJewelry/storefront_api/internal/service"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
)

// CatalogHandler handles product listing and detail endpoints.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetProducts returns the filtered, sorted product list.
//
// Query parameters: category, search, maxPrice, sort, and repeated
// choice=Option:Choice pairs for the option facet.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	spec := models.FilterSpec{
		Category: c.DefaultQuery("category", models.CategoryAll),
		Search:   c.Query("search"),
		SortKey:  models.SortKey(c.Query("sort")),
	}

	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			utils.Error(c, 400, "INVALID_FILTER", "maxPrice must be a non-negative number")
			return
		}
		spec.MaxPrice = price
	}

	if choices := c.QueryArray("choice"); len(choices) > 0 {
		spec.SelectedOptionChoices = make(map[string][]string)
		for _, raw := range choices {
			option, choice, ok := strings.Cut(raw, ":")
			if !ok || option == "" || choice == "" {
				utils.Error(c, 400, "INVALID_FILTER", "choice must be of the form Option:Choice")
				return
			}
			spec.SelectedOptionChoices[option] = append(spec.SelectedOptionChoices[option], choice)
		}
	}

	products, err := h.catalogService.ListProducts(spec)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	utils.Success(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct returns one product by id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalogService.GetProduct(c.Param("id"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", gin.H{"product": p})
}

// GetCategories returns the category list.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.Categories()
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	utils.Success(c, 200, "Categories retrieved successfully", gin.H{"categories": categories})
}

// selectionRequest is the body of the resolve/availability endpoints.
type selectionRequest struct {
	Selection models.Selection `json:"selection"`
}

// ResolveSelection classifies the selection and returns the matched variant
// with display pricing.
func (h *CatalogHandler) ResolveSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_SELECTION", "Request body must carry a selection object")
		return
	}

	result, err := h.catalogService.Resolve(c.Param("id"), req.Selection)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	utils.Success(c, 200, "Selection resolved", gin.H{"result": result})
}

// GetAvailability returns the per-choice reachability matrix for a selection.
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_SELECTION", "Request body must carry a selection object")
		return
	}

	matrix, err := h.catalogService.Availability(c.Param("id"), req.Selection)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	utils.Success(c, 200, "Availability computed", gin.H{"availability": matrix})
}

// writeCatalogError maps catalog service errors onto the response envelope.
func writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrCatalogUnavailable):
		utils.Error(c, 503, utils.ErrCatalogUnavailable.Error(), "Catalog not yet available, try again shortly")
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, utils.ErrProductNotFound.Error(), "Product not found")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read catalog")
	}
}
