package models

// Shipper delivers orders.
type Shipper struct {
	ShipperID   int     `gorm:"primaryKey" json:"shipper_id"`
	CompanyName string  `gorm:"size:40;not null" json:"company_name"`
	Phone       *string `gorm:"size:24" json:"phone"`

	Orders []Order `gorm:"foreignKey:ShipVia;references:ShipperID" json:"-"`
}

// TableName specifies the table name for the Shipper model
func (Shipper) TableName() string {
	return "shippers"
}

// Flatten converts the shipper to its transfer representation.
func (s *Shipper) Flatten() map[string]any {
	return map[string]any{
		"shipper_id":   s.ShipperID,
		"company_name": s.CompanyName,
		"phone":        s.Phone,
	}
}
