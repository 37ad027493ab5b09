package entity

import "gorm.io/gorm"

// Box represents the box_data table.
type Box struct {
	BoxID       string        `gorm:"column:box_id;type:varchar(12);primaryKey" json:"box_id"`
	BoxNumber   string        `gorm:"column:box_number;type:varchar(50)" json:"box_number"`
	BoxType     *PackagingType `gorm:"column:box_type;type:packaging_type" json:"box_type,omitempty"`
	BoxWeightKG float64       `gorm:"column:box_weight_kg;type:decimal(5,3);check:box_weight_kg >= 0" json:"box_weight_kg"`
	BoxLengthMM int16         `gorm:"column:box_length_mm" json:"box_length_mm"`
	BoxWidthMM  int16         `gorm:"column:box_width_mm" json:"box_width_mm"`
	BoxHeightMM int16         `gorm:"column:box_height_mm" json:"box_height_mm"`
	BoxVolM3    float64       `gorm:"column:box_vol_m3;type:decimal(5,3);check:box_vol_m3 >= 0" json:"box_vol_m3"`
	BoxAreaM2   float64       `gorm:"column:box_area_m2;type:decimal(5,3);check:box_area_m2 >= 0" json:"box_area_m2"`
	BoxStacking int16         `gorm:"column:box_stacking" json:"box_stacking"`
}

func (Box) TableName() string {
	return "box_data"
}

func (b *Box) BeforeCreate(*gorm.DB) error {
	if b.BoxID == "" {
		b.BoxID = NewID(PrefixBox)
	}
	if b.BoxNumber == "" && b.BoxLengthMM > 0 {
		var ptype PackagingType
		if b.BoxType != nil {
			ptype = *b.BoxType
		}
		b.BoxNumber = packagingNumber(ptype, b.BoxLengthMM, b.BoxWidthMM, b.BoxHeightMM)
	}
	return nil
}

// Pallet represents the pallet_data table. Same shape as Box.
type Pallet struct {
	PalletID       string        `gorm:"column:pallet_id;type:varchar(12);primaryKey" json:"pallet_id"`
	PalletNumber   string        `gorm:"column:pallet_number;type:varchar(50)" json:"pallet_number"`
	PalletType     *PackagingType `gorm:"column:pallet_type;type:packaging_type" json:"pallet_type,omitempty"`
	PalletWeightKG float64       `gorm:"column:pallet_weight_kg;type:decimal(5,3);check:pallet_weight_kg >= 0" json:"pallet_weight_kg"`
	PalletLengthMM int16         `gorm:"column:pallet_length_mm" json:"pallet_length_mm"`
	PalletWidthMM  int16         `gorm:"column:pallet_width_mm" json:"pallet_width_mm"`
	PalletHeightMM int16         `gorm:"column:pallet_height_mm" json:"pallet_height_mm"`
	PalletVolM3    float64       `gorm:"column:pallet_vol_m3;type:decimal(5,3);check:pallet_vol_m3 >= 0" json:"pallet_vol_m3"`
	PalletAreaM2   float64       `gorm:"column:pallet_area_m2;type:decimal(5,3);check:pallet_area_m2 >= 0" json:"pallet_area_m2"`
	PalletStacking int16         `gorm:"column:pallet_stacking" json:"pallet_stacking"`
}

func (Pallet) TableName() string {
	return "pallet_data"
}

func (p *Pallet) BeforeCreate(*gorm.DB) error {
	if p.PalletID == "" {
		p.PalletID = NewID(PrefixPallet)
	}
	if p.PalletNumber == "" && p.PalletLengthMM > 0 {
		var ptype PackagingType
		if p.PalletType != nil {
			ptype = *p.PalletType
		}
		p.PalletNumber = packagingNumber(ptype, p.PalletLengthMM, p.PalletWidthMM, p.PalletHeightMM)
	}
	return nil
}

// PartToBox is the junction table between part_data and box_data,
// carrying the packing quantity.
type PartToBox struct {
	PartID     string `gorm:"column:part_id;type:varchar(12);primaryKey" json:"part_id"`
	BoxID      string `gorm:"column:box_id;type:varchar(12);primaryKey" json:"box_id"`
	PartPerBox int    `gorm:"column:part_per_box" json:"part_per_box"`
}

func (PartToBox) TableName() string {
	return "part_to_box"
}

// BoxToPallet is the junction table between box_data and pallet_data,
// carrying the stacking quantity.
type BoxToPallet struct {
	BoxID        string `gorm:"column:box_id;type:varchar(12);primaryKey" json:"box_id"`
	PalletID     string `gorm:"column:pallet_id;type:varchar(12);primaryKey" json:"pallet_id"`
	BoxPerPallet int16  `gorm:"column:box_per_pallet" json:"box_per_pallet"`
}

func (BoxToPallet) TableName() string {
	return "box_to_pallet"
}
