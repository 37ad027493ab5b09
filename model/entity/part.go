package entity

import "gorm.io/gorm"

// Part represents the part_data table.
type Part struct {
	PartID       string  `gorm:"column:part_id;type:varchar(12);primaryKey" json:"part_id"`
	PartNumber   string  `gorm:"column:part_number;type:varchar(50)" json:"part_number"`
	PartName     string  `gorm:"column:part_name;type:varchar(100)" json:"part_name"`
	PartWeightKG float64 `gorm:"column:part_weight_kg;type:decimal(5,3);check:part_weight_kg >= 0" json:"part_weight_kg"`
	// SupplierID is nullable: a part may exist before its vendor is settled.
	SupplierID *string `gorm:"column:supplier_id;type:varchar(12)" json:"supplier_id,omitempty"`
}

func (Part) TableName() string {
	return "part_data"
}

func (p *Part) BeforeCreate(*gorm.DB) error {
	if p.PartID == "" {
		p.PartID = NewID(PrefixPart)
	}
	return nil
}
