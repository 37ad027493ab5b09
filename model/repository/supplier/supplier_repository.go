package supplier

import (
	"gorm.io/gorm"

	"mft.GO/core/dberr"
	entity "mft.GO/model/entity"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func validate(s *entity.Supplier) error {
	if s.Localization != nil && !s.Localization.Valid() {
		return dberr.Domain("supplier_data", "localization", string(*s.Localization))
	}
	return nil
}

// Create inserts a supplier. A caller-assigned ID that already exists is a
// uniqueness violation; an empty ID gets generated in BeforeCreate.
func (r *SupplierRepository) Create(s *entity.Supplier) error {
	if err := validate(s); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if s.SupplierID != "" {
			var n int64
			if err := tx.Model(&entity.Supplier{}).Where("supplier_id = ?", s.SupplierID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return dberr.Duplicate("supplier_data", s.SupplierID)
			}
		}
		if err := tx.Create(s).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// Update rewrites all non-key columns of an existing supplier.
func (r *SupplierRepository) Update(s *entity.Supplier) error {
	if err := validate(s); err != nil {
		return err
	}
	res := r.db.Model(&entity.Supplier{}).Where("supplier_id = ?", s.SupplierID).
		Select("*").Omit("supplier_id").Updates(s)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a supplier. Restrict semantics: fails while any part still
// references it.
func (r *SupplierRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.Part{}).Where("supplier_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.StillReferenced("supplier_data", "part_data", id)
		}
		res := tx.Delete(&entity.Supplier{}, "supplier_id = ?", id)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *SupplierRepository) FindByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.db.First(&s, "supplier_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByLocalization lists suppliers filtered by the localization flag.
func (r *SupplierRepository) FindByLocalization(loc entity.Localization) ([]entity.Supplier, error) {
	if !loc.Valid() {
		return nil, dberr.Domain("supplier_data", "localization", string(loc))
	}
	var out []entity.Supplier
	err := r.db.Where("localization = ?", loc).Find(&out).Error
	return out, err
}
