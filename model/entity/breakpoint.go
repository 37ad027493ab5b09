package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Breakpoint represents the breakpoint_data table: a recorded point in
// time at which part-related attributes changed.
type Breakpoint struct {
	BreakpointID     string         `gorm:"column:breakpoint_id;type:varchar(12);primaryKey" json:"breakpoint_id"`
	InputDate        time.Time      `gorm:"column:input_date" json:"input_date"`
	BreakpointNumber string         `gorm:"column:breakpoint_number;type:varchar(10);not null" json:"breakpoint_number"`
	BreakpointDate   datatypes.Date `gorm:"column:breakpoint_date" json:"breakpoint_date"`
}

func (Breakpoint) TableName() string {
	return "breakpoint_data"
}

func (b *Breakpoint) BeforeCreate(*gorm.DB) error {
	if b.BreakpointID == "" {
		b.BreakpointID = NewID(PrefixBreakpoint)
	}
	if b.InputDate.IsZero() {
		b.InputDate = time.Now()
	}
	return nil
}

// PartToBreakpoint is the junction table between part_data and
// breakpoint_data. It stores the pre-change snapshot of the part.
type PartToBreakpoint struct {
	PartID                   string       `gorm:"column:part_id;type:varchar(12);primaryKey" json:"part_id"`
	BreakpointID             string       `gorm:"column:breakpoint_id;type:varchar(12);primaryKey" json:"breakpoint_id"`
	PartNumberBeforeChange   string       `gorm:"column:part_number_before_change;type:varchar(50)" json:"part_number_before_change"`
	SupplierNameBeforeChange string       `gorm:"column:supplier_name_before_change;type:varchar(200)" json:"supplier_name_before_change"`
	LocalizationBeforeChange *Localization `gorm:"column:localization_before_change;type:localization" json:"localization_before_change,omitempty"`
	LineNameBeforeChange     string       `gorm:"column:line_name_before_change;type:varchar(50)" json:"line_name_before_change"`
}

func (PartToBreakpoint) TableName() string {
	return "part_to_breakpoint"
}
