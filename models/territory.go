package models

// Region groups territories geographically.
type Region struct {
	RegionID          int    `gorm:"primaryKey" json:"region_id"`
	RegionDescription string `gorm:"size:255;not null" json:"region_description"`

	Territories []Territory `gorm:"foreignKey:RegionID;references:RegionID" json:"-"`
}

// TableName specifies the table name for the Region model
func (Region) TableName() string {
	return "region"
}

// Flatten converts the region to its transfer representation.
func (r *Region) Flatten() map[string]any {
	return map[string]any{
		"region_id":          r.RegionID,
		"region_description": r.RegionDescription,
	}
}

// Territory is a sales territory inside a region.
type Territory struct {
	TerritoryID          string `gorm:"primaryKey;size:20" json:"territory_id"`
	TerritoryDescription string `gorm:"size:255;not null" json:"territory_description"`
	RegionID             int    `gorm:"not null" json:"region_id"`

	Region    *Region    `gorm:"foreignKey:RegionID" json:"-"`
	Employees []Employee `gorm:"many2many:employee_territories;joinForeignKey:TerritoryID;joinReferences:EmployeeID" json:"-"`
}

// TableName specifies the table name for the Territory model
func (Territory) TableName() string {
	return "territories"
}

// Flatten converts the territory to its transfer representation.
func (t *Territory) Flatten() map[string]any {
	return map[string]any{
		"territory_id":          t.TerritoryID,
		"territory_description": t.TerritoryDescription,
		"region_id":             t.RegionID,
	}
}
