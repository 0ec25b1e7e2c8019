package models

// Category groups products. Picture bytes are stored but never
// projected.
type Category struct {
	CategoryID   int     `gorm:"primaryKey" json:"category_id"`
	CategoryName string  `gorm:"size:15;not null" json:"category_name"`
	Description  *string `gorm:"size:255" json:"description"`
	Picture      []byte  `json:"-"`

	Products []Product `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Flatten converts the category to its transfer representation.
func (c *Category) Flatten() map[string]any {
	return map[string]any{
		"category_id":   c.CategoryID,
		"category_name": c.CategoryName,
		"description":   c.Description,
	}
}
