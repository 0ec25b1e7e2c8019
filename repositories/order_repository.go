package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/northwind-labs/northwind-api/models"
)

// OrderRepository performs order data access, eagerly loading the
// relations the nested projection needs.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// withRelations eagerly loads customer, employee, shipper and the
// detail rows. Details are loaded in product-id order so the capped
// sub-list in the projection is deterministic.
func (r *OrderRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("Customer").
		Preload("Employee").
		Preload("Shipper").
		Preload("OrderDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_id")
		})
}

// GetPage returns one page of orders with relations, in primary-key
// order.
func (r *OrderRepository) GetPage(page, pageSize int) ([]models.Order, error) {
	var orders []models.Order
	err := r.withRelations().
		Order("order_id").
		Scopes(pageScope(page, pageSize)).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetPageByCustomer returns one page of a customer's orders with
// relations.
func (r *OrderRepository) GetPageByCustomer(customerID string, page, pageSize int) ([]models.Order, error) {
	var orders []models.Order
	err := r.withRelations().
		Where("customer_id = ?", customerID).
		Order("order_id").
		Scopes(pageScope(page, pageSize)).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID fetches an order with relations by primary key.
func (r *OrderRepository) GetByID(orderID int) (*models.Order, error) {
	var order models.Order
	if err := r.withRelations().First(&order, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Insert persists a new order and fills in its assigned id.
func (r *OrderRepository) Insert(order *models.Order) error {
	return r.db.Omit(clause.Associations).Create(order).Error
}

// Update persists the current state of an already-loaded order. Loaded
// relations are not written back.
func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Omit(clause.Associations).Save(order).Error
}
