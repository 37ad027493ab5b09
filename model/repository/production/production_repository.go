package production

import (
	"gorm.io/gorm"

	"mft.GO/core/dberr"
	entity "mft.GO/model/entity"
)

// ProductionRepository covers vehicle models, workshops and the lines
// inside them.
type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

func exists(tx *gorm.DB, model interface{}, column, key string) (bool, error) {
	var n int64
	if err := tx.Model(model).Where(column+" = ?", key).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func validateModel(m *entity.Model) error {
	if m.ModelCode != nil && !m.ModelCode.Valid() {
		return dberr.Domain("model_data", "model_code", string(*m.ModelCode))
	}
	if m.ModelName != nil && !m.ModelName.Valid() {
		return dberr.Domain("model_data", "model_name", string(*m.ModelName))
	}
	return nil
}

func validateWorkshop(w *entity.Workshop) error {
	if w.WorkshopCode != nil && !w.WorkshopCode.Valid() {
		return dberr.Domain("workshop_data", "workshop_code", string(*w.WorkshopCode))
	}
	if w.WorkshopName != nil && !w.WorkshopName.Valid() {
		return dberr.Domain("workshop_data", "workshop_name", string(*w.WorkshopName))
	}
	return nil
}

func (r *ProductionRepository) CreateModel(m *entity.Model) error {
	if err := validateModel(m); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if m.ModelID != "" {
			ok, err := exists(tx, &entity.Model{}, "model_id", m.ModelID)
			if err != nil {
				return err
			}
			if ok {
				return dberr.Duplicate("model_data", m.ModelID)
			}
		}
		if err := tx.Create(m).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// UpdateModel rewrites all non-key columns of an existing model.
func (r *ProductionRepository) UpdateModel(m *entity.Model) error {
	if err := validateModel(m); err != nil {
		return err
	}
	res := r.db.Model(&entity.Model{}).Where("model_id = ?", m.ModelID).
		Select("*").Omit("model_id").Updates(m)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductionRepository) DeleteModel(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.PartToModel{}).Where("model_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.StillReferenced("model_data", "part_to_model", id)
		}
		res := tx.Delete(&entity.Model{}, "model_id = ?", id)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ProductionRepository) FindModelByCode(code entity.ModelCode) (*entity.Model, error) {
	var m entity.Model
	if err := r.db.First(&m, "model_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ProductionRepository) CreateWorkshop(w *entity.Workshop) error {
	if err := validateWorkshop(w); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if w.WorkshopID != "" {
			ok, err := exists(tx, &entity.Workshop{}, "workshop_id", w.WorkshopID)
			if err != nil {
				return err
			}
			if ok {
				return dberr.Duplicate("workshop_data", w.WorkshopID)
			}
		}
		if err := tx.Create(w).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// UpdateWorkshop rewrites all non-key columns of an existing workshop.
func (r *ProductionRepository) UpdateWorkshop(w *entity.Workshop) error {
	if err := validateWorkshop(w); err != nil {
		return err
	}
	res := r.db.Model(&entity.Workshop{}).Where("workshop_id = ?", w.WorkshopID).
		Select("*").Omit("workshop_id").Updates(w)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductionRepository) DeleteWorkshop(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.Line{}).Where("workshop_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.StillReferenced("workshop_data", "line_data", id)
		}
		res := tx.Delete(&entity.Workshop{}, "workshop_id = ?", id)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ProductionRepository) FindWorkshopByCode(code entity.WorkshopCode) (*entity.Workshop, error) {
	var w entity.Workshop
	if err := r.db.First(&w, "workshop_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateLine inserts a production line. The workshop reference is required.
func (r *ProductionRepository) CreateLine(l *entity.Line) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if l.LineID != "" {
			ok, err := exists(tx, &entity.Line{}, "line_id", l.LineID)
			if err != nil {
				return err
			}
			if ok {
				return dberr.Duplicate("line_data", l.LineID)
			}
		}
		ok, err := exists(tx, &entity.Workshop{}, "workshop_id", l.WorkshopID)
		if err != nil {
			return err
		}
		if !ok {
			return dberr.MissingRef("line_data", "workshop_id", l.WorkshopID)
		}
		if err := tx.Create(l).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

func (r *ProductionRepository) UpdateLine(l *entity.Line) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &entity.Workshop{}, "workshop_id", l.WorkshopID)
		if err != nil {
			return err
		}
		if !ok {
			return dberr.MissingRef("line_data", "workshop_id", l.WorkshopID)
		}
		res := tx.Model(&entity.Line{}).Where("line_id = ?", l.LineID).
			Select("*").Omit("line_id").Updates(l)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ProductionRepository) DeleteLine(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.PartToLine{}).Where("line_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.StillReferenced("line_data", "part_to_line", id)
		}
		res := tx.Delete(&entity.Line{}, "line_id = ?", id)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// LinesInWorkshop lists the lines belonging to a workshop.
func (r *ProductionRepository) LinesInWorkshop(workshopID string) ([]entity.Line, error) {
	var out []entity.Line
	err := r.db.Where("workshop_id = ?", workshopID).Find(&out).Error
	return out, err
}
