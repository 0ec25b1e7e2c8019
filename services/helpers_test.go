package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/northwind-labs/northwind-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.CustomerDemographic{},
		&models.CustomerCustomerDemo{},
		&models.Employee{},
		&models.EmployeeTerritory{},
		&models.Region{},
		&models.Territory{},
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

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func seedShipper(t *testing.T, db *gorm.DB, name string) *models.Shipper {
	t.Helper()
	shipper := &models.Shipper{CompanyName: name}
	if err := db.Create(shipper).Error; err != nil {
		t.Fatalf("Failed to seed shipper: %v", err)
	}
	return shipper
}

func seedCustomer(t *testing.T, db *gorm.DB, id, companyName string) *models.Customer {
	t.Helper()
	customer := &models.Customer{CustomerID: id, CompanyName: companyName}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}
	return customer
}

func seedEmployee(t *testing.T, db *gorm.DB, lastName, firstName string) *models.Employee {
	t.Helper()
	employee := &models.Employee{LastName: lastName, FirstName: firstName}
	if err := db.Create(employee).Error; err != nil {
		t.Fatalf("Failed to seed employee: %v", err)
	}
	return employee
}

func seedOrder(t *testing.T, db *gorm.DB, customerID *string, shipVia int) *models.Order {
	t.Helper()
	order := &models.Order{CustomerID: customerID, ShipVia: shipVia}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}
	return order
}

// makePhotoFile builds a multipart.FileHeader the way an uploaded file
// arrives through a request.
func makePhotoFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("photo", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("Failed to parse multipart form: %v", err)
	}

	files := req.MultipartForm.File["photo"]
	if len(files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(files))
	}
	return files[0]
}

// seedOrderWithDetails creates an order carrying the given number of
// line items, each against its own product.
func seedOrderWithDetails(t *testing.T, db *gorm.DB, customerID *string, shipVia, detailCount int) *models.Order {
	t.Helper()
	order := seedOrder(t, db, customerID, shipVia)
	for i := 1; i <= detailCount; i++ {
		product := &models.Product{
			ProductName:     fmt.Sprintf("Product %d", i),
			QuantityPerUnit: "1 box",
		}
		if err := db.Create(product).Error; err != nil {
			t.Fatalf("Failed to seed product: %v", err)
		}
		detail := &models.OrderDetail{
			OrderID:   order.OrderID,
			ProductID: product.ProductID,
			UnitPrice: 10.0,
			Quantity:  1,
		}
		if err := db.Create(detail).Error; err != nil {
			t.Fatalf("Failed to seed order detail: %v", err)
		}
	}
	return order
}
