package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/northwind-labs/northwind-api/models"
	"github.com/northwind-labs/northwind-api/repositories"
	"github.com/northwind-labs/northwind-api/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Employee{},
		&models.Category{},
		&models.Supplier{},
		&models.Product{},
		&models.Shipper{},
		&models.Order{},
		&models.OrderDetail{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// newCustomerRouter mounts the customer routes over a fresh database.
func newCustomerRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	service := services.NewCustomerService(
		repositories.NewCustomerRepository(db),
		repositories.NewOrderRepository(db),
		zerolog.Nop(),
	)
	ctl := NewCustomerController(service, zerolog.Nop())

	router := setupTestRouter()
	customers := router.Group("/v1/customers")
	{
		customers.GET("/", ctl.GetAll)
		customers.GET("/:id", ctl.Get)
		customers.POST("/", ctl.Create)
		customers.PATCH("/:id", ctl.Update)
		customers.GET("/:id/orders", ctl.GetOrders)
	}
	return router, db
}

// newProductRouter mounts the product routes over a fresh database.
func newProductRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	service := services.NewProductService(repositories.NewProductRepository(db), zerolog.Nop())
	ctl := NewProductController(service, zerolog.Nop())

	router := setupTestRouter()
	products := router.Group("/v1/products")
	{
		products.GET("/", ctl.GetAll)
		products.GET("/:id", ctl.Get)
		products.POST("/", ctl.Create)
		products.PATCH("/:id", ctl.Update)
	}
	return router, db
}

// newOrderRouter mounts the order routes over a fresh database.
func newOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	service := services.NewOrderService(repositories.NewOrderRepository(db), zerolog.Nop())
	ctl := NewOrderController(service, zerolog.Nop())

	router := setupTestRouter()
	orders := router.Group("/v1/orders")
	{
		orders.GET("/", ctl.GetAll)
		orders.GET("/:id", ctl.Get)
		orders.POST("/", ctl.Create)
		orders.PATCH("/:id", ctl.Update)
	}
	return router, db
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
	return result
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var result []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
	return result
}
