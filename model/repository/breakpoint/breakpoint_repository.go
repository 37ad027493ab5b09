package breakpoint

import (
	"gorm.io/gorm"

	"mft.GO/core/dberr"
	entity "mft.GO/model/entity"
)

type BreakpointRepository struct {
	db *gorm.DB
}

func NewBreakpointRepository(db *gorm.DB) *BreakpointRepository {
	return &BreakpointRepository{db: db}
}

// Create inserts a breakpoint event. The input date defaults to the
// creation instant in BeforeCreate; the breakpoint number is mandatory.
func (r *BreakpointRepository) Create(b *entity.Breakpoint) error {
	if b.BreakpointNumber == "" {
		return dberr.Domain("breakpoint_data", "breakpoint_number", "")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if b.BreakpointID != "" {
			var n int64
			if err := tx.Model(&entity.Breakpoint{}).Where("breakpoint_id = ?", b.BreakpointID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return dberr.Duplicate("breakpoint_data", b.BreakpointID)
			}
		}
		if err := tx.Create(b).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// Update rewrites all non-key columns of an existing breakpoint.
func (r *BreakpointRepository) Update(b *entity.Breakpoint) error {
	if b.BreakpointNumber == "" {
		return dberr.Domain("breakpoint_data", "breakpoint_number", "")
	}
	res := r.db.Model(&entity.Breakpoint{}).Where("breakpoint_id = ?", b.BreakpointID).
		Select("*").Omit("breakpoint_id").Updates(b)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a breakpoint. Restrict semantics: fails while any part
// snapshot still references it.
func (r *BreakpointRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.PartToBreakpoint{}).Where("breakpoint_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.StillReferenced("breakpoint_data", "part_to_breakpoint", id)
		}
		res := tx.Delete(&entity.Breakpoint{}, "breakpoint_id = ?", id)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *BreakpointRepository) FindByID(id string) (*entity.Breakpoint, error) {
	var b entity.Breakpoint
	if err := r.db.First(&b, "breakpoint_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByNumber returns breakpoint events with the given number, newest first.
func (r *BreakpointRepository) FindByNumber(number string) ([]entity.Breakpoint, error) {
	var out []entity.Breakpoint
	err := r.db.Where("breakpoint_number = ?", number).Order("input_date DESC").Find(&out).Error
	return out, err
}
