package repositories

import (
	"gorm.io/gorm"

	"github.com/northwind-labs/northwind-api/models"
)

// ReferenceRepository serves the read-only reference entities:
// categories, suppliers and shippers.
type ReferenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a reference-data repository.
func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// GetCategoryPage returns one page of categories in primary-key order.
func (r *ReferenceRepository) GetCategoryPage(page, pageSize int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Order("category_id").
		Scopes(pageScope(page, pageSize)).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID fetches a category by primary key.
func (r *ReferenceRepository) GetCategoryByID(categoryID int) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "category_id = ?", categoryID).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetSupplierPage returns one page of suppliers in primary-key order.
func (r *ReferenceRepository) GetSupplierPage(page, pageSize int) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.
		Order("supplier_id").
		Scopes(pageScope(page, pageSize)).
		Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

// GetSupplierByID fetches a supplier by primary key.
func (r *ReferenceRepository) GetSupplierByID(supplierID int) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "supplier_id = ?", supplierID).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// GetShipperPage returns one page of shippers in primary-key order.
func (r *ReferenceRepository) GetShipperPage(page, pageSize int) ([]models.Shipper, error) {
	var shippers []models.Shipper
	err := r.db.
		Order("shipper_id").
		Scopes(pageScope(page, pageSize)).
		Find(&shippers).Error
	if err != nil {
		return nil, err
	}
	return shippers, nil
}

// GetShipperByID fetches a shipper by primary key.
func (r *ReferenceRepository) GetShipperByID(shipperID int) (*models.Shipper, error) {
	var shipper models.Shipper
	if err := r.db.First(&shipper, "shipper_id = ?", shipperID).Error; err != nil {
		return nil, err
	}
	return &shipper, nil
}
