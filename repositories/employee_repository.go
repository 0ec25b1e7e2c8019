package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/northwind-labs/northwind-api/models"
)

// EmployeeRepository performs employee data access, loading the
// manager and territory relations used by the projection.
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates an employee repository.
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("ReportingTo").
		Preload("Territories", func(db *gorm.DB) *gorm.DB {
			return db.Order("territory_id")
		})
}

// GetPage returns one page of employees in primary-key order.
func (r *EmployeeRepository) GetPage(page, pageSize int) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.
		Order("employee_id").
		Scopes(pageScope(page, pageSize)).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// GetByID fetches an employee with relations by primary key.
func (r *EmployeeRepository) GetByID(employeeID int) (*models.Employee, error) {
	var employee models.Employee
	if err := r.withRelations().First(&employee, "employee_id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// Update persists the current state of an already-loaded employee.
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Omit(clause.Associations).Save(employee).Error
}
