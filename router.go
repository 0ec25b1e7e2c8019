package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/northwind-labs/northwind-api/config"
	"github.com/northwind-labs/northwind-api/controllers"
	"github.com/northwind-labs/northwind-api/middleware"
	"github.com/northwind-labs/northwind-api/repositories"
	"github.com/northwind-labs/northwind-api/services"
)

// SetupRouter wires repositories, services and controllers around the
// given database handle and returns the configured engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, photos services.PhotoStore, logger zerolog.Logger) *gin.Engine {
	customerRepo := repositories.NewCustomerRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	productRepo := repositories.NewProductRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	referenceRepo := repositories.NewReferenceRepository(db)

	customerService := services.NewCustomerService(customerRepo, orderRepo, logger)
	orderService := services.NewOrderService(orderRepo, logger)
	productService := services.NewProductService(productRepo, logger)
	employeeService := services.NewEmployeeService(employeeRepo, photos, logger)
	referenceService := services.NewReferenceService(referenceRepo, logger)

	customerCtl := controllers.NewCustomerController(customerService, logger)
	orderCtl := controllers.NewOrderController(orderService, logger)
	productCtl := controllers.NewProductController(productService, logger)
	employeeCtl := controllers.NewEmployeeController(employeeService, logger)
	referenceCtl := controllers.NewReferenceController(referenceService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	requireToken := middleware.RequireValidToken(cfg)

	v1 := router.Group("/v1")
	{
		customers := v1.Group("/customers")
		{
			customers.GET("/", customerCtl.GetAll)
			customers.GET("/:id", customerCtl.Get)
			customers.POST("/", requireToken, customerCtl.Create)
			customers.PATCH("/:id", requireToken, customerCtl.Update)
			customers.GET("/:id/orders", customerCtl.GetOrders)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("/", orderCtl.GetAll)
			orders.GET("/:id", orderCtl.Get)
			orders.POST("/", requireToken, orderCtl.Create)
			orders.PATCH("/:id", requireToken, orderCtl.Update)
		}

		products := v1.Group("/products")
		{
			products.GET("/", productCtl.GetAll)
			products.GET("/:id", productCtl.Get)
			products.POST("/", requireToken, productCtl.Create)
			products.PATCH("/:id", requireToken, productCtl.Update)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("/", employeeCtl.GetAll)
			employees.GET("/:id", employeeCtl.Get)
			employees.GET("/:id/photo", employeeCtl.GetPhoto)
			employees.POST("/:id/photo", requireToken, employeeCtl.UploadPhoto)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("/", referenceCtl.GetAllCategories)
			categories.GET("/:id", referenceCtl.GetCategory)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.GET("/", referenceCtl.GetAllSuppliers)
			suppliers.GET("/:id", referenceCtl.GetSupplier)
		}

		shippers := v1.Group("/shippers")
		{
			shippers.GET("/", referenceCtl.GetAllShippers)
			shippers.GET("/:id", referenceCtl.GetShipper)
		}
	}

	return router
}
