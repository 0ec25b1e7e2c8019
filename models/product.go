package models

// Product is a sellable item. Discontinued is persisted as a 0/1
// integer; projections expose it as a boolean.
type Product struct {
	ProductID       int      `gorm:"primaryKey" json:"product_id"`
	ProductName     string   `gorm:"size:40;not null" json:"product_name"`
	SupplierID      *int     `json:"supplier_id"`
	CategoryID      *int     `json:"category_id"`
	QuantityPerUnit string   `gorm:"size:20" json:"quantity_per_unit"`
	UnitPrice       *float64 `json:"unit_price"`
	UnitsInStock    *int     `json:"units_in_stock"`
	UnitsOnOrder    *int     `json:"units_on_order"`
	ReorderLevel    *int     `json:"reorder_level"`
	Discontinued    int      `gorm:"not null" json:"discontinued"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Flatten converts the product to its transfer representation.
func (p *Product) Flatten() map[string]any {
	return map[string]any{
		"product_id":        p.ProductID,
		"product_name":      p.ProductName,
		"supplier_id":       p.SupplierID,
		"category_id":       p.CategoryID,
		"quantity_per_unit": p.QuantityPerUnit,
		"unit_price":        p.UnitPrice,
		"units_in_stock":    p.UnitsInStock,
		"units_on_order":    p.UnitsOnOrder,
		"reorder_level":     p.ReorderLevel,
		"discontinued":      p.Discontinued == 1,
	}
}

// FlattenNested builds the composite projection with the loaded
// category and supplier, or nil for an absent relation.
func (p *Product) FlattenNested() map[string]any {
	flat := p.Flatten()
	if p.Category != nil {
		flat["category"] = p.Category.Flatten()
	} else {
		flat["category"] = nil
	}
	if p.Supplier != nil {
		flat["supplier"] = p.Supplier.Flatten()
	} else {
		flat["supplier"] = nil
	}
	return flat
}

// ApplyField overwrites one updatable field from a caller-supplied
// value; see Customer.ApplyField for the contract.
func (p *Product) ApplyField(name string, value any) bool {
	switch name {
	case "product_name":
		if s, ok := asString(value); ok {
			p.ProductName = s
			return true
		}
	case "supplier_id":
		if n, ok := asIntPtr(value); ok {
			p.SupplierID = n
			return true
		}
	case "category_id":
		if n, ok := asIntPtr(value); ok {
			p.CategoryID = n
			return true
		}
	case "quantity_per_unit":
		if s, ok := asString(value); ok {
			p.QuantityPerUnit = s
			return true
		}
	case "unit_price":
		if f, ok := asFloatPtr(value); ok {
			p.UnitPrice = f
			return true
		}
	case "units_in_stock":
		if n, ok := asIntPtr(value); ok {
			p.UnitsInStock = n
			return true
		}
	case "units_on_order":
		if n, ok := asIntPtr(value); ok {
			p.UnitsOnOrder = n
			return true
		}
	case "reorder_level":
		if n, ok := asIntPtr(value); ok {
			p.ReorderLevel = n
			return true
		}
	case "discontinued":
		if n, ok := asBoolInt(value); ok {
			p.Discontinued = n
			return true
		}
	}
	return false
}
