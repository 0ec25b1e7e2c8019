package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/services"
)

// OrderController handles the /v1/orders routes.
type OrderController struct {
	service *services.OrderService
	log     zerolog.Logger
}

// NewOrderController creates an order controller.
func NewOrderController(service *services.OrderService, log zerolog.Logger) *OrderController {
	return &OrderController{
		service: service,
		log:     log.With().Str("controller", "order").Logger(),
	}
}

// GetAll handles GET /v1/orders/?page=n
func (ctl *OrderController) GetAll(c *gin.Context) {
	page := c.DefaultQuery("page", "1")

	orders, err := ctl.service.GetAllOrders(page)
	if err != nil {
		respondError(c, ctl.log, "get_all_orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Get handles GET /v1/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	orderID := c.Param("id")

	order, err := ctl.service.GetOrder(orderID)
	if err != nil {
		respondError(c, ctl.log, "get_order", err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Create handles POST /v1/orders/
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	order, err := ctl.service.AddOrder(req)
	if err != nil {
		respondError(c, ctl.log, "add_order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Added order #%d successfully!", order.OrderID),
	})
}

// Update handles PATCH /v1/orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	orderID := c.Param("id")

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondBadBody(c)
		return
	}

	order, err := ctl.service.UpdateOrder(orderID, fields)
	if err != nil {
		respondError(c, ctl.log, "update_order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Updated order #%d successfully!", order.OrderID),
	})
}
