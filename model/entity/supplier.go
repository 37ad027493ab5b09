package entity

import "gorm.io/gorm"

// Supplier represents the supplier_data table.
type Supplier struct {
	SupplierID   string       `gorm:"column:supplier_id;type:varchar(12);primaryKey" json:"supplier_id"`
	SupplierName string       `gorm:"column:supplier_name;type:varchar(200)" json:"supplier_name"`
	Location     string       `gorm:"column:location;type:varchar(50)" json:"location,omitempty"`
	City         string       `gorm:"column:city;type:varchar(50)" json:"city,omitempty"`
	Street       string       `gorm:"column:street;type:varchar(100)" json:"street,omitempty"`
	Building     string       `gorm:"column:building;type:varchar(10)" json:"building,omitempty"`
	// Localization is nullable: NULL means not yet classified.
	Localization *Localization `gorm:"column:localization;type:localization" json:"localization,omitempty"`
}

func (Supplier) TableName() string {
	return "supplier_data"
}

func (s *Supplier) BeforeCreate(*gorm.DB) error {
	if s.SupplierID == "" {
		s.SupplierID = NewID(PrefixSupplier)
	}
	return nil
}
