package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/services"
)

// ProductController handles the /v1/products routes.
type ProductController struct {
	service *services.ProductService
	log     zerolog.Logger
}

// NewProductController creates a product controller.
func NewProductController(service *services.ProductService, log zerolog.Logger) *ProductController {
	return &ProductController{
		service: service,
		log:     log.With().Str("controller", "product").Logger(),
	}
}

// GetAll handles GET /v1/products/?page=n
func (ctl *ProductController) GetAll(c *gin.Context) {
	page := c.DefaultQuery("page", "1")

	products, err := ctl.service.GetAllProducts(page)
	if err != nil {
		respondError(c, ctl.log, "get_all_products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// Get handles GET /v1/products/:id
func (ctl *ProductController) Get(c *gin.Context) {
	productID := c.Param("id")

	product, err := ctl.service.GetProduct(productID)
	if err != nil {
		respondError(c, ctl.log, "get_product", err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create handles POST /v1/products/
func (ctl *ProductController) Create(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	product, err := ctl.service.AddProduct(req)
	if err != nil {
		respondError(c, ctl.log, "add_product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Added %s successfully!", product.ProductName),
	})
}

// Update handles PATCH /v1/products/:id
func (ctl *ProductController) Update(c *gin.Context) {
	productID := c.Param("id")

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondBadBody(c)
		return
	}

	product, err := ctl.service.UpdateProduct(productID, fields)
	if err != nil {
		respondError(c, ctl.log, "update_product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Updated product %s successfully!", product.ProductName),
	})
}
