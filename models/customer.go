package models

// Customer represents a business customer. The primary key is assigned
// by the caller at creation time and never changes afterwards.
type Customer struct {
	CustomerID    string  `gorm:"primaryKey;size:255" json:"customer_id"`
	CompanyName   string  `gorm:"size:40;not null" json:"company_name"`
	ContactName   *string `gorm:"size:30" json:"contact_name"`
	ContractTitle *string `gorm:"size:30" json:"contract_title"`
	Address       *string `gorm:"size:60" json:"address"`
	City          *string `gorm:"size:15" json:"city"`
	Region        *string `gorm:"size:15" json:"region"`
	PostalCode    *string `gorm:"size:10" json:"postal_code"`
	Country       *string `gorm:"size:15" json:"country"`
	Phone         *string `gorm:"size:24" json:"phone"`
	Fax           *string `gorm:"size:24" json:"fax"`

	Demographics []CustomerDemographic `gorm:"many2many:customer_customer_demo;joinForeignKey:CustomerID;joinReferences:CustomerTypeID" json:"-"`
	Orders       []Order               `gorm:"foreignKey:CustomerID;references:CustomerID" json:"-"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Flatten converts the customer to its transfer representation.
func (c *Customer) Flatten() map[string]any {
	return map[string]any{
		"customer_id":    c.CustomerID,
		"company_name":   c.CompanyName,
		"contact_name":   c.ContactName,
		"contract_title": c.ContractTitle,
		"address":        c.Address,
		"city":           c.City,
		"region":         c.Region,
		"postal_code":    c.PostalCode,
		"country":        c.Country,
		"phone":          c.Phone,
		"fax":            c.Fax,
	}
}

// ApplyField overwrites one updatable field from a caller-supplied
// value. Unknown field names and values of the wrong type report false
// and leave the customer untouched; customer_id is immutable and is
// not in the allow-list.
func (c *Customer) ApplyField(name string, value any) bool {
	switch name {
	case "company_name":
		if s, ok := asString(value); ok {
			c.CompanyName = s
			return true
		}
	case "contact_name":
		if p, ok := asStringPtr(value); ok {
			c.ContactName = p
			return true
		}
	case "contract_title":
		if p, ok := asStringPtr(value); ok {
			c.ContractTitle = p
			return true
		}
	case "address":
		if p, ok := asStringPtr(value); ok {
			c.Address = p
			return true
		}
	case "city":
		if p, ok := asStringPtr(value); ok {
			c.City = p
			return true
		}
	case "region":
		if p, ok := asStringPtr(value); ok {
			c.Region = p
			return true
		}
	case "postal_code":
		if p, ok := asStringPtr(value); ok {
			c.PostalCode = p
			return true
		}
	case "country":
		if p, ok := asStringPtr(value); ok {
			c.Country = p
			return true
		}
	case "phone":
		if p, ok := asStringPtr(value); ok {
			c.Phone = p
			return true
		}
	case "fax":
		if p, ok := asStringPtr(value); ok {
			c.Fax = p
			return true
		}
	}
	return false
}

// CustomerDemographic classifies customers by type.
type CustomerDemographic struct {
	CustomerTypeID string  `gorm:"primaryKey;size:255" json:"customer_type_id"`
	CustomerDesc   *string `gorm:"size:255" json:"customer_desc"`

	Customers []Customer `gorm:"many2many:customer_customer_demo;joinForeignKey:CustomerTypeID;joinReferences:CustomerID" json:"-"`
}

// TableName specifies the table name for the CustomerDemographic model
func (CustomerDemographic) TableName() string {
	return "customer_demographics"
}

// CustomerCustomerDemo is the pure join table between customers and
// customer demographics.
type CustomerCustomerDemo struct {
	CustomerID     string `gorm:"primaryKey;size:255" json:"customer_id"`
	CustomerTypeID string `gorm:"primaryKey;size:255" json:"customer_type_id"`
}

// TableName specifies the table name for the CustomerCustomerDemo model
func (CustomerCustomerDemo) TableName() string {
	return "customer_customer_demo"
}
