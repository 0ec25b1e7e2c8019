package models

import "time"

// Employee represents a staff member. ReportsTo is a self-referential
// foreign key to the employee's manager.
type Employee struct {
	EmployeeID      int        `gorm:"primaryKey" json:"employee_id"`
	LastName        string     `gorm:"size:20;not null" json:"last_name"`
	FirstName       string     `gorm:"size:10;not null" json:"first_name"`
	Title           *string    `gorm:"size:30" json:"title"`
	TitleOfCourtesy *string    `gorm:"size:25" json:"title_of_courtesy"`
	BirthDate       *time.Time `json:"birth_date"`
	HireDate        *time.Time `json:"hire_date"`
	Address         *string    `gorm:"size:60" json:"address"`
	City            *string    `gorm:"size:15" json:"city"`
	Region          *string    `gorm:"size:15" json:"region"`
	PostalCode      *string    `gorm:"size:10" json:"postal_code"`
	Country         *string    `gorm:"size:15" json:"country"`
	HomePhone       *string    `gorm:"size:24" json:"home_phone"`
	Extension       *string    `gorm:"size:4" json:"extension"`
	Photo           []byte     `json:"-"`
	Notes           *string    `gorm:"type:text" json:"notes"`
	ReportsTo       *int       `json:"reports_to"`
	PhotoPath       *string    `gorm:"size:255" json:"photo_path"`

	ReportingTo *Employee   `gorm:"foreignKey:ReportsTo" json:"-"`
	Territories []Territory `gorm:"many2many:employee_territories;joinForeignKey:EmployeeID;joinReferences:TerritoryID" json:"-"`
	Orders      []Order     `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"-"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// Flatten converts the employee to its transfer representation. The
// raw photo bytes never appear in a projection; photo_path carries the
// storage key instead.
func (e *Employee) Flatten() map[string]any {
	return map[string]any{
		"employee_id":       e.EmployeeID,
		"last_name":         e.LastName,
		"first_name":        e.FirstName,
		"title":             e.Title,
		"title_of_courtesy": e.TitleOfCourtesy,
		"birth_date":        isoTime(e.BirthDate),
		"hire_date":         isoTime(e.HireDate),
		"address":           e.Address,
		"city":              e.City,
		"region":            e.Region,
		"postal_code":       e.PostalCode,
		"country":           e.Country,
		"home_phone":        e.HomePhone,
		"extension":         e.Extension,
		"notes":             e.Notes,
		"reports_to":        e.ReportsTo,
		"photo_path":        e.PhotoPath,
	}
}

// EmployeeTerritory is the pure join table between employees and
// territories.
type EmployeeTerritory struct {
	EmployeeID  int    `gorm:"primaryKey" json:"employee_id"`
	TerritoryID string `gorm:"primaryKey;size:255" json:"territory_id"`
}

// TableName specifies the table name for the EmployeeTerritory model
func (EmployeeTerritory) TableName() string {
	return "employee_territories"
}
