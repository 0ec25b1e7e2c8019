package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/northwind-labs/northwind-api/models"
)

// Connect opens a database connection for the given configuration and
// returns the handle. Callers own the handle and pass it explicitly to
// the repositories; there is no package-level database state.
func Connect(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.IsTest() {
		// Tests run against an in-memory sqlite database
		dialector = sqlite.Open(":memory:")
	} else {
		dialector = postgres.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity, including
// the two pure join tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}
