package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/services"
)

// CustomerController handles the /v1/customers routes.
type CustomerController struct {
	service *services.CustomerService
	log     zerolog.Logger
}

// NewCustomerController creates a customer controller.
func NewCustomerController(service *services.CustomerService, log zerolog.Logger) *CustomerController {
	return &CustomerController{
		service: service,
		log:     log.With().Str("controller", "customer").Logger(),
	}
}

// GetAll handles GET /v1/customers/?page=n
func (ctl *CustomerController) GetAll(c *gin.Context) {
	page := c.DefaultQuery("page", "1")

	customers, err := ctl.service.GetAllCustomers(page)
	if err != nil {
		respondError(c, ctl.log, "get_all_customers", err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// Get handles GET /v1/customers/:id
func (ctl *CustomerController) Get(c *gin.Context) {
	customerID := c.Param("id")

	customer, err := ctl.service.GetCustomer(customerID)
	if err != nil {
		respondError(c, ctl.log, "get_customer", err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Create handles POST /v1/customers/
func (ctl *CustomerController) Create(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	customer, err := ctl.service.AddCustomer(req)
	if err != nil {
		respondError(c, ctl.log, "add_customer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Added customer %s successfully!", customer.CompanyName),
	})
}

// Update handles PATCH /v1/customers/:id
func (ctl *CustomerController) Update(c *gin.Context) {
	customerID := c.Param("id")

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondBadBody(c)
		return
	}

	customer, err := ctl.service.UpdateCustomer(customerID, fields)
	if err != nil {
		respondError(c, ctl.log, "update_customer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Updated customer %s successfully!", customer.CompanyName),
	})
}

// GetOrders handles GET /v1/customers/:id/orders?page=n
func (ctl *CustomerController) GetOrders(c *gin.Context) {
	customerID := c.Param("id")
	page := c.DefaultQuery("page", "1")

	orders, err := ctl.service.GetCustomerOrders(customerID, page)
	if err != nil {
		respondError(c, ctl.log, "get_customer_orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
