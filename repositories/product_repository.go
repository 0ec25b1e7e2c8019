package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/northwind-labs/northwind-api/models"
)

// ProductRepository performs product data access with eagerly loaded
// category and supplier relations.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) withRelations() *gorm.DB {
	return r.db.Preload("Category").Preload("Supplier")
}

// GetPage returns one page of products with relations, in primary-key
// order.
func (r *ProductRepository) GetPage(page, pageSize int) ([]models.Product, error) {
	var products []models.Product
	err := r.withRelations().
		Order("product_id").
		Scopes(pageScope(page, pageSize)).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID fetches a product with relations by primary key.
func (r *ProductRepository) GetByID(productID int) (*models.Product, error) {
	var product models.Product
	if err := r.withRelations().First(&product, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Insert persists a new product and fills in its assigned id.
func (r *ProductRepository) Insert(product *models.Product) error {
	return r.db.Omit(clause.Associations).Create(product).Error
}

// Update persists the current state of an already-loaded product.
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Omit(clause.Associations).Save(product).Error
}
