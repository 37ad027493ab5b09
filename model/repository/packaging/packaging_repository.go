package packaging

import (
	"gorm.io/gorm"

	"mft.GO/core/dberr"
	entity "mft.GO/model/entity"
)

// PackagingRepository covers the containment chain: boxes, pallets and the
// box_to_pallet junction.
type PackagingRepository struct {
	db *gorm.DB
}

func NewPackagingRepository(db *gorm.DB) *PackagingRepository {
	return &PackagingRepository{db: db}
}

func exists(tx *gorm.DB, model interface{}, column, key string) (bool, error) {
	var n int64
	if err := tx.Model(model).Where(column+" = ?", key).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func validateBox(b *entity.Box) error {
	if b.BoxType != nil && !b.BoxType.Valid() {
		return dberr.Domain("box_data", "box_type", string(*b.BoxType))
	}
	switch {
	case b.BoxWeightKG < 0:
		return dberr.Domain("box_data", "box_weight_kg", "negative")
	case b.BoxVolM3 < 0:
		return dberr.Domain("box_data", "box_vol_m3", "negative")
	case b.BoxAreaM2 < 0:
		return dberr.Domain("box_data", "box_area_m2", "negative")
	}
	return nil
}

func validatePallet(p *entity.Pallet) error {
	if p.PalletType != nil && !p.PalletType.Valid() {
		return dberr.Domain("pallet_data", "pallet_type", string(*p.PalletType))
	}
	switch {
	case p.PalletWeightKG < 0:
		return dberr.Domain("pallet_data", "pallet_weight_kg", "negative")
	case p.PalletVolM3 < 0:
		return dberr.Domain("pallet_data", "pallet_vol_m3", "negative")
	case p.PalletAreaM2 < 0:
		return dberr.Domain("pallet_data", "pallet_area_m2", "negative")
	}
	return nil
}

func (r *PackagingRepository) CreateBox(b *entity.Box) error {
	if err := validateBox(b); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if b.BoxID != "" {
			ok, err := exists(tx, &entity.Box{}, "box_id", b.BoxID)
			if err != nil {
				return err
			}
			if ok {
				return dberr.Duplicate("box_data", b.BoxID)
			}
		}
		if err := tx.Create(b).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

func (r *PackagingRepository) UpdateBox(b *entity.Box) error {
	if err := validateBox(b); err != nil {
		return err
	}
	res := r.db.Model(&entity.Box{}).Where("box_id = ?", b.BoxID).
		Select("*").Omit("box_id").Updates(b)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PackagingRepository) DeleteBox(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, ref := range []struct {
			model interface{}
			table string
		}{
			{&entity.PartToBox{}, "part_to_box"},
			{&entity.BoxToPallet{}, "box_to_pallet"},
		} {
			var n int64
			if err := tx.Model(ref.model).Where("box_id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return dberr.StillReferenced("box_data", ref.table, id)
			}
		}
		res := tx.Delete(&entity.Box{}, "box_id = ?", id)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *PackagingRepository) FindBoxByID(id string) (*entity.Box, error) {
	var b entity.Box
	if err := r.db.First(&b, "box_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PackagingRepository) CreatePallet(p *entity.Pallet) error {
	if err := validatePallet(p); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if p.PalletID != "" {
			ok, err := exists(tx, &entity.Pallet{}, "pallet_id", p.PalletID)
			if err != nil {
				return err
			}
			if ok {
				return dberr.Duplicate("pallet_data", p.PalletID)
			}
		}
		if err := tx.Create(p).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

func (r *PackagingRepository) UpdatePallet(p *entity.Pallet) error {
	if err := validatePallet(p); err != nil {
		return err
	}
	res := r.db.Model(&entity.Pallet{}).Where("pallet_id = ?", p.PalletID).
		Select("*").Omit("pallet_id").Updates(p)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PackagingRepository) DeletePallet(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.BoxToPallet{}).Where("pallet_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.StillReferenced("pallet_data", "box_to_pallet", id)
		}
		res := tx.Delete(&entity.Pallet{}, "pallet_id = ?", id)
		if res.Error != nil {
			return dberr.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *PackagingRepository) FindPalletByID(id string) (*entity.Pallet, error) {
	var p entity.Pallet
	if err := r.db.First(&p, "pallet_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// AttachBoxToPallet links a box to a pallet with the stacking quantity.
func (r *PackagingRepository) AttachBoxToPallet(rel *entity.BoxToPallet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &entity.Box{}, "box_id", rel.BoxID)
		if err != nil {
			return err
		}
		if !ok {
			return dberr.MissingRef("box_to_pallet", "box_id", rel.BoxID)
		}
		ok, err = exists(tx, &entity.Pallet{}, "pallet_id", rel.PalletID)
		if err != nil {
			return err
		}
		if !ok {
			return dberr.MissingRef("box_to_pallet", "pallet_id", rel.PalletID)
		}
		var n int64
		if err := tx.Model(&entity.BoxToPallet{}).
			Where("box_id = ? AND pallet_id = ?", rel.BoxID, rel.PalletID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return dberr.Duplicate("box_to_pallet", rel.BoxID+"|"+rel.PalletID)
		}
		if err := tx.Create(rel).Error; err != nil {
			return dberr.Translate(err)
		}
		return nil
	})
}

// BoxesOnPallet returns the box links for a pallet.
func (r *PackagingRepository) BoxesOnPallet(palletID string) ([]entity.BoxToPallet, error) {
	var out []entity.BoxToPallet
	err := r.db.Where("pallet_id = ?", palletID).Find(&out).Error
	return out, err
}
