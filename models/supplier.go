package models

// Supplier provides products.
type Supplier struct {
	SupplierID   int     `gorm:"primaryKey" json:"supplier_id"`
	CompanyName  string  `gorm:"size:40;not null" json:"company_name"`
	ContactName  *string `gorm:"size:30" json:"contact_name"`
	ContactTitle *string `gorm:"size:30" json:"contact_title"`
	Address      *string `gorm:"size:60" json:"address"`
	City         *string `gorm:"size:15" json:"city"`
	Region       *string `gorm:"size:15" json:"region"`
	PostalCode   *string `gorm:"size:10" json:"postal_code"`
	Country      *string `gorm:"size:15" json:"country"`
	Phone        *string `gorm:"size:24" json:"phone"`
	Fax          *string `gorm:"size:24" json:"fax"`
	Homepage     *string `gorm:"size:255" json:"homepage"`

	Products []Product `gorm:"foreignKey:SupplierID;references:SupplierID" json:"-"`
}

// TableName specifies the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}

// Flatten converts the supplier to its transfer representation.
func (s *Supplier) Flatten() map[string]any {
	return map[string]any{
		"supplier_id":   s.SupplierID,
		"company_name":  s.CompanyName,
		"contact_name":  s.ContactName,
		"contact_title": s.ContactTitle,
		"address":       s.Address,
		"city":          s.City,
		"region":        s.Region,
		"postal_code":   s.PostalCode,
		"country":       s.Country,
		"phone":         s.Phone,
		"fax":           s.Fax,
		"homepage":      s.Homepage,
	}
}
