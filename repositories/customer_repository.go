package repositories

import (
	"gorm.io/gorm"

	"github.com/northwind-labs/northwind-api/models"
)

// CustomerRepository performs customer data access against an
// explicitly injected database handle.
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository.
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// GetPage returns one page of customers in primary-key order.
func (r *CustomerRepository) GetPage(page, pageSize int) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.
		Order("customer_id").
		Scopes(pageScope(page, pageSize)).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// GetByID fetches a customer by primary key. The caller distinguishes
// a miss with IsNotFound.
func (r *CustomerRepository) GetByID(customerID string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "customer_id = ?", customerID).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Insert persists a new customer. Uniqueness of the primary key is
// owned by the storage constraint; duplicate inserts surface as an
// error the caller checks with IsDuplicateKey.
func (r *CustomerRepository) Insert(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update persists the current state of an already-loaded customer.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}
