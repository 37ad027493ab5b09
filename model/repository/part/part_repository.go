package part

import (
	"gorm.io/gorm"

	"mft.GO/core/dberr"
	entity "mft.GO/model/entity"
)

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

func exists(tx *gorm.DB, model interface{}, column, key string) (bool, error) {
	var n int64
	if err := tx.Model(model).Where(column+" = ?", key).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func validate(p *entity.Part) error {
	if p.PartWeightKG < 0 {
		return dberr.Domain("part_data", "part_weight_kg", "negative")
	}
	return nil
}

// Create inserts a part. The supplier reference is nullable; when set it
// must point at an existing supplier.
func (r *PartRepository) Create(p *entity.Part) error {
	if err := validate(p); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if p.PartID != "" {
			ok, err := exists(tx, &entity.Part{}, "part_id", p.PartID)
			if err != nil {
				return err
			}
			if ok {
				return dberr.Duplicate("part_data", p.PartID)
			}
		}
		if p.SupplierID != nil {
			ok, err := exists(tx, &entity.Supplier{}, "supplier_id", *p.SupplierID)
			if err != nil {
				return err
			}
			if !ok {
				return dberr.MissingRef("part_data", "supplier_id", *p.SupplierID)
			}
		}
		if err := tx.Create(p).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// Update rewrites all non-key columns of an existing part, re-checking the
// supplier reference.
func (r *PartRepository) Update(p *entity.Part) error {
	if err := validate(p); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if p.SupplierID != nil {
			ok, err := exists(tx, &entity.Supplier{}, "supplier_id", *p.SupplierID)
			if err != nil {
				return err
			}
			if !ok {
				return dberr.MissingRef("part_data", "supplier_id", *p.SupplierID)
			}
		}
		res := tx.Model(&entity.Part{}).Where("part_id = ?", p.PartID).
			Select("*").Omit("part_id").Updates(p)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete removes a part. Restrict semantics: fails while any junction row
// still references it.
func (r *PartRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		refs := []struct {
			model interface{}
			table string
		}{
			{&entity.PartToBox{}, "part_to_box"},
			{&entity.PartToModel{}, "part_to_model"},
			{&entity.PartToLine{}, "part_to_line"},
			{&entity.PartToBreakpoint{}, "part_to_breakpoint"},
		}
		for _, ref := range refs {
			var n int64
			if err := tx.Model(ref.model).Where("part_id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return dberr.StillReferenced("part_data", ref.table, id)
			}
		}
		res := tx.Delete(&entity.Part{}, "part_id = ?", id)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *PartRepository) FindByID(id string) (*entity.Part, error) {
	var p entity.Part
	if err := r.db.First(&p, "part_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByNumber looks a part up by its drawing number.
func (r *PartRepository) FindByNumber(number string) (*entity.Part, error) {
	var p entity.Part
	if err := r.db.First(&p, "part_number = ?", number).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// AttachBox links a part to a box with the packing quantity. Both keys must
// exist; a duplicate pair is a uniqueness violation.
func (r *PartRepository) AttachBox(rel *entity.PartToBox) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePair(tx, &entity.Part{}, "part_id", rel.PartID, "part_to_box"); err != nil {
			return err
		}
		if err := requirePair(tx, &entity.Box{}, "box_id", rel.BoxID, "part_to_box"); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&entity.PartToBox{}).
			Where("part_id = ? AND box_id = ?", rel.PartID, rel.BoxID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.Duplicate("part_to_box", rel.PartID+"|"+rel.BoxID)
		}
		if err := tx.Create(rel).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// AttachModel links a part to a vehicle model with fitment configuration.
func (r *PartRepository) AttachModel(rel *entity.PartToModel) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePair(tx, &entity.Part{}, "part_id", rel.PartID, "part_to_model"); err != nil {
			return err
		}
		if err := requirePair(tx, &entity.Model{}, "model_id", rel.ModelID, "part_to_model"); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&entity.PartToModel{}).
			Where("part_id = ? AND model_id = ?", rel.PartID, rel.ModelID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.Duplicate("part_to_model", rel.PartID+"|"+rel.ModelID)
		}
		if err := tx.Create(rel).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// AttachLine links a part to a production line.
func (r *PartRepository) AttachLine(rel *entity.PartToLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePair(tx, &entity.Part{}, "part_id", rel.PartID, "part_to_line"); err != nil {
			return err
		}
		if err := requirePair(tx, &entity.Line{}, "line_id", rel.LineID, "part_to_line"); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&entity.PartToLine{}).
			Where("part_id = ? AND line_id = ?", rel.PartID, rel.LineID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.Duplicate("part_to_line", rel.PartID+"|"+rel.LineID)
		}
		if err := tx.Create(rel).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// AttachBreakpoint records the pre-change snapshot of a part against a
// breakpoint event.
func (r *PartRepository) AttachBreakpoint(rel *entity.PartToBreakpoint) error {
	if rel.LocalizationBeforeChange != nil && !rel.LocalizationBeforeChange.Valid() {
		return dberr.Domain("part_to_breakpoint", "localization_before_change", string(*rel.LocalizationBeforeChange))
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePair(tx, &entity.Part{}, "part_id", rel.PartID, "part_to_breakpoint"); err != nil {
			return err
		}
		if err := requirePair(tx, &entity.Breakpoint{}, "breakpoint_id", rel.BreakpointID, "part_to_breakpoint"); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&entity.PartToBreakpoint{}).
			Where("part_id = ? AND breakpoint_id = ?", rel.PartID, rel.BreakpointID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.Duplicate("part_to_breakpoint", rel.PartID+"|"+rel.BreakpointID)
		}
		if err := tx.Create(rel).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// DetachBox removes a part-box link.
func (r *PartRepository) DetachBox(partID, boxID string) error {
	res := r.db.Delete(&entity.PartToBox{}, "part_id = ? AND box_id = ?", partID, boxID)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BoxesFor returns the box links for a part.
func (r *PartRepository) BoxesFor(partID string) ([]entity.PartToBox, error) {
	var out []entity.PartToBox
	err := r.db.Where("part_id = ?", partID).Find(&out).Error
	return out, err
}

// BreakpointsFor returns the change history snapshots for a part.
func (r *PartRepository) BreakpointsFor(partID string) ([]entity.PartToBreakpoint, error) {
	var out []entity.PartToBreakpoint
	err := r.db.Where("part_id = ?", partID).Find(&out).Error
	return out, err
}

func requirePair(tx *gorm.DB, model interface{}, column, key, junction string) error {
	ok, err := exists(tx, model, column, key)
	if err != nil {
		return err
	}
	if !ok {
		return dberr.MissingRef(junction, column, key)
	}
	return nil
}
