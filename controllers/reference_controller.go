package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/services"
)

// ReferenceController handles the read-only /v1/categories,
// /v1/suppliers and /v1/shippers routes.
type ReferenceController struct {
	service *services.ReferenceService
	log     zerolog.Logger
}

// NewReferenceController creates a reference-data controller.
func NewReferenceController(service *services.ReferenceService, log zerolog.Logger) *ReferenceController {
	return &ReferenceController{
		service: service,
		log:     log.With().Str("controller", "reference").Logger(),
	}
}

// GetAllCategories handles GET /v1/categories/?page=n
func (ctl *ReferenceController) GetAllCategories(c *gin.Context) {
	categories, err := ctl.service.GetAllCategories(c.DefaultQuery("page", "1"))
	if err != nil {
		respondError(c, ctl.log, "get_all_categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /v1/categories/:id
func (ctl *ReferenceController) GetCategory(c *gin.Context) {
	category, err := ctl.service.GetCategory(c.Param("id"))
	if err != nil {
		respondError(c, ctl.log, "get_category", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetAllSuppliers handles GET /v1/suppliers/?page=n
func (ctl *ReferenceController) GetAllSuppliers(c *gin.Context) {
	suppliers, err := ctl.service.GetAllSuppliers(c.DefaultQuery("page", "1"))
	if err != nil {
		respondError(c, ctl.log, "get_all_suppliers", err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// GetSupplier handles GET /v1/suppliers/:id
func (ctl *ReferenceController) GetSupplier(c *gin.Context) {
	supplier, err := ctl.service.GetSupplier(c.Param("id"))
	if err != nil {
		respondError(c, ctl.log, "get_supplier", err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// GetAllShippers handles GET /v1/shippers/?page=n
func (ctl *ReferenceController) GetAllShippers(c *gin.Context) {
	shippers, err := ctl.service.GetAllShippers(c.DefaultQuery("page", "1"))
	if err != nil {
		respondError(c, ctl.log, "get_all_shippers", err)
		return
	}
	c.JSON(http.StatusOK, shippers)
}

// GetShipper handles GET /v1/shippers/:id
func (ctl *ReferenceController) GetShipper(c *gin.Context) {
	shipper, err := ctl.service.GetShipper(c.Param("id"))
	if err != nil {
		respondError(c, ctl.log, "get_shipper", err)
		return
	}
	c.JSON(http.StatusOK, shipper)
}
