package entity

import "gorm.io/gorm"

// Model represents the model_data table (vehicle models).
type Model struct {
	ModelID   string    `gorm:"column:model_id;type:varchar(12);primaryKey" json:"model_id"`
	ModelCode *ModelCode `gorm:"column:model_code;type:model_codes" json:"model_code,omitempty"`
	ModelName *ModelName `gorm:"column:model_name;type:model_names" json:"model_name,omitempty"`
}

func (Model) TableName() string {
	return "model_data"
}

func (m *Model) BeforeCreate(*gorm.DB) error {
	if m.ModelID == "" {
		m.ModelID = NewID(PrefixModel)
	}
	return nil
}

// Workshop represents the workshop_data table.
type Workshop struct {
	WorkshopID   string       `gorm:"column:workshop_id;type:varchar(12);primaryKey" json:"workshop_id"`
	WorkshopCode *WorkshopCode `gorm:"column:workshop_code;type:workshop_codes" json:"workshop_code,omitempty"`
	WorkshopName *WorkshopName `gorm:"column:workshop_name;type:workshop_names" json:"workshop_name,omitempty"`
}

func (Workshop) TableName() string {
	return "workshop_data"
}

func (w *Workshop) BeforeCreate(*gorm.DB) error {
	if w.WorkshopID == "" {
		w.WorkshopID = NewID(PrefixWorkshop)
	}
	return nil
}

// Line represents the line_data table. Every line belongs to a workshop.
type Line struct {
	LineID     string `gorm:"column:line_id;type:varchar(12);primaryKey" json:"line_id"`
	LineCode   string `gorm:"column:line_code;type:varchar(10)" json:"line_code"`
	LineName   string `gorm:"column:line_name;type:varchar(50)" json:"line_name"`
	WorkshopID string `gorm:"column:workshop_id;type:varchar(12);not null" json:"workshop_id"`
}

func (Line) TableName() string {
	return "line_data"
}

func (l *Line) BeforeCreate(*gorm.DB) error {
	if l.LineID == "" {
		l.LineID = NewID(PrefixLine)
	}
	return nil
}

// PartToModel is the junction table between part_data and model_data,
// carrying the fitment configuration and per-vehicle quantity.
type PartToModel struct {
	PartID         string `gorm:"column:part_id;type:varchar(12);primaryKey" json:"part_id"`
	ModelID        string `gorm:"column:model_id;type:varchar(12);primaryKey" json:"model_id"`
	Configuration  string `gorm:"column:configuration;type:varchar(20)" json:"configuration"`
	PartPerVehicle int16  `gorm:"column:part_per_vehicle" json:"part_per_vehicle"`
}

func (PartToModel) TableName() string {
	return "part_to_model"
}

// PartToLine is the junction table between part_data and line_data.
type PartToLine struct {
	PartID string `gorm:"column:part_id;type:varchar(12);primaryKey" json:"part_id"`
	LineID string `gorm:"column:line_id;type:varchar(12);primaryKey" json:"line_id"`
}

func (PartToLine) TableName() string {
	return "part_to_line"
}
