package models

import "time"

// maxNestedOrderDetails caps the detail sub-list embedded in an order
// projection. The nested list is not paginated.
const maxNestedOrderDetails = 10

// Order is a customer purchase. Customer and employee links are
// optional; the shipper link (ship_via) is required.
type Order struct {
	OrderID        int        `gorm:"primaryKey" json:"order_id"`
	CustomerID     *string    `gorm:"size:255" json:"customer_id"`
	EmployeeID     *int       `json:"employee_id"`
	OrderDate      *time.Time `json:"order_date"`
	RequiredDate   *time.Time `json:"required_date"`
	ShippedDate    *time.Time `json:"shipped_date"`
	ShipVia        int        `gorm:"not null" json:"ship_via"`
	Freight        *float64   `json:"freight"`
	ShipName       *string    `gorm:"size:40" json:"ship_name"`
	ShipAddress    *string    `gorm:"size:60" json:"ship_address"`
	ShipCity       *string    `gorm:"size:15" json:"ship_city"`
	ShipRegion     *string    `gorm:"size:15" json:"ship_region"`
	ShipPostalCode *string    `gorm:"size:10" json:"ship_postal_code"`
	ShipCountry    *string    `gorm:"size:15" json:"ship_country"`

	Customer     *Customer     `gorm:"foreignKey:CustomerID" json:"-"`
	Employee     *Employee     `gorm:"foreignKey:EmployeeID" json:"-"`
	Shipper      *Shipper      `gorm:"foreignKey:ShipVia" json:"-"`
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID;references:OrderID" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// Flatten converts the order to its transfer representation without
// relations.
func (o *Order) Flatten() map[string]any {
	return map[string]any{
		"order_id":         o.OrderID,
		"customer_id":      o.CustomerID,
		"employee_id":      o.EmployeeID,
		"order_date":       isoTime(o.OrderDate),
		"required_date":    isoTime(o.RequiredDate),
		"shipped_date":     isoTime(o.ShippedDate),
		"ship_via":         o.ShipVia,
		"freight":          o.Freight,
		"ship_name":        o.ShipName,
		"ship_address":     o.ShipAddress,
		"ship_city":        o.ShipCity,
		"ship_region":      o.ShipRegion,
		"ship_postal_code": o.ShipPostalCode,
		"ship_country":     o.ShipCountry,
	}
}

// FlattenNested builds the composite order projection: the flattened
// order with each loaded relation replaced by its own projection (nil
// when absent) and the detail sub-list capped at ten entries.
func (o *Order) FlattenNested() map[string]any {
	flat := o.Flatten()
	if o.Customer != nil {
		flat["customer"] = o.Customer.Flatten()
	} else {
		flat["customer"] = nil
	}
	if o.Employee != nil {
		flat["employee"] = o.Employee.Flatten()
	} else {
		flat["employee"] = nil
	}
	if o.Shipper != nil {
		flat["shipper"] = o.Shipper.Flatten()
	} else {
		flat["shipper"] = nil
	}

	details := o.OrderDetails
	if len(details) > maxNestedOrderDetails {
		details = details[:maxNestedOrderDetails]
	}
	detailMaps := make([]map[string]any, 0, len(details))
	for i := range details {
		detailMaps = append(detailMaps, details[i].Flatten())
	}
	flat["last_10_order_details"] = detailMaps

	return flat
}

// ApplyField overwrites one updatable field from a caller-supplied
// value; see Customer.ApplyField for the contract. Date fields accept
// ISO-8601 strings.
func (o *Order) ApplyField(name string, value any) bool {
	switch name {
	case "customer_id":
		if p, ok := asStringPtr(value); ok {
			o.CustomerID = p
			return true
		}
	case "employee_id":
		if n, ok := asIntPtr(value); ok {
			o.EmployeeID = n
			return true
		}
	case "order_date":
		if t, ok := asTimePtr(value); ok {
			o.OrderDate = t
			return true
		}
	case "required_date":
		if t, ok := asTimePtr(value); ok {
			o.RequiredDate = t
			return true
		}
	case "shipped_date":
		if t, ok := asTimePtr(value); ok {
			o.ShippedDate = t
			return true
		}
	case "ship_via":
		if n, ok := asInt(value); ok {
			o.ShipVia = n
			return true
		}
	case "freight":
		if f, ok := asFloatPtr(value); ok {
			o.Freight = f
			return true
		}
	case "ship_name":
		if p, ok := asStringPtr(value); ok {
			o.ShipName = p
			return true
		}
	case "ship_address":
		if p, ok := asStringPtr(value); ok {
			o.ShipAddress = p
			return true
		}
	case "ship_city":
		if p, ok := asStringPtr(value); ok {
			o.ShipCity = p
			return true
		}
	case "ship_region":
		if p, ok := asStringPtr(value); ok {
			o.ShipRegion = p
			return true
		}
	case "ship_postal_code":
		if p, ok := asStringPtr(value); ok {
			o.ShipPostalCode = p
			return true
		}
	case "ship_country":
		if p, ok := asStringPtr(value); ok {
			o.ShipCountry = p
			return true
		}
	}
	return false
}

// OrderDetail is one line item of an order. The primary key is the
// composite of order id and product id.
type OrderDetail struct {
	OrderID   int     `gorm:"primaryKey" json:"order_id"`
	ProductID int     `gorm:"primaryKey" json:"product_id"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Discount  float64 `gorm:"not null" json:"discount"`

	Order   *Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName specifies the table name for the OrderDetail model
func (OrderDetail) TableName() string {
	return "order_details"
}

// Flatten converts the order detail to its transfer representation.
func (d *OrderDetail) Flatten() map[string]any {
	return map[string]any{
		"order_id":   d.OrderID,
		"product_id": d.ProductID,
		"unit_price": d.UnitPrice,
		"quantity":   d.Quantity,
		"discount":   d.Discount,
	}
}
