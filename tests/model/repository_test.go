package modeltest

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"mft.GO/core/dberr"
	entity "mft.GO/model/entity"
	breakpointRepo "mft.GO/model/repository/breakpoint"
	packagingRepo "mft.GO/model/repository/packaging"
	partRepo "mft.GO/model/repository/part"
	productionRepo "mft.GO/model/repository/production"
	supplierRepo "mft.GO/model/repository/supplier"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Supplier{}, &entity.Part{},
		&entity.Box{}, &entity.Pallet{},
		&entity.Model{}, &entity.Workshop{}, &entity.Line{},
		&entity.Breakpoint{},
		&entity.PartToBox{}, &entity.BoxToPallet{},
		&entity.PartToModel{}, &entity.PartToLine{}, &entity.PartToBreakpoint{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strptr(s string) *string { return &s }

func ptr[T any](v T) *T { return &v }

func TestSupplierRepository_CreateAndFindByID(t *testing.T) {
	db := testDB(t)
	repo := supplierRepo.NewSupplierRepository(db)

	s := &entity.Supplier{SupplierID: "S1", SupplierName: "Gestamp", Localization: ptr(entity.LocalizationYes)}
	if err := repo.Create(s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	found, err := repo.FindByID("S1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.SupplierName != "Gestamp" {
		t.Errorf("SupplierName = %q, want Gestamp", found.SupplierName)
	}
}

func TestSupplierRepository_GeneratedID(t *testing.T) {
	db := testDB(t)
	repo := supplierRepo.NewSupplierRepository(db)

	s := &entity.Supplier{SupplierName: "Faurecia"}
	if err := repo.Create(s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(s.SupplierID) != 12 || s.SupplierID[:4] != entity.PrefixSupplier {
		t.Errorf("generated ID = %q, want 12 chars with SUP_ prefix", s.SupplierID)
	}
}

func TestSupplierRepository_DuplicateKey(t *testing.T) {
	db := testDB(t)
	repo := supplierRepo.NewSupplierRepository(db)

	if err := repo.Create(&entity.Supplier{SupplierID: "S1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(&entity.Supplier{SupplierID: "S1"})
	if !errors.Is(err, dberr.ErrUniqueness) {
		t.Errorf("duplicate Create = %v, want uniqueness violation", err)
	}
}

func TestSupplierRepository_InvalidLocalization(t *testing.T) {
	db := testDB(t)
	repo := supplierRepo.NewSupplierRepository(db)

	err := repo.Create(&entity.Supplier{SupplierID: "S1", Localization: ptr(entity.Localization("maybe"))})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("Create = %v, want domain violation", err)
	}
}

func TestSupplierRepository_UnsetLocalizationStoresNull(t *testing.T) {
	db := testDB(t)
	repo := supplierRepo.NewSupplierRepository(db)

	// Localization left unset must bind NULL, never the empty string:
	// the postgres enum column rejects '' outright.
	if err := repo.Create(&entity.Supplier{SupplierID: "S1", SupplierName: "Gestamp"}); err != nil {
		t.Fatalf("Create without localization: %v", err)
	}

	var n int64
	if err := db.Model(&entity.Supplier{}).
		Where("supplier_id = ? AND localization IS NULL", "S1").Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("rows with NULL localization = %d, want 1", n)
	}

	found, err := repo.FindByID("S1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Localization != nil {
		t.Errorf("Localization = %v, want nil", *found.Localization)
	}
}

func TestPartRepository_SupplierReference(t *testing.T) {
	db := testDB(t)
	suppliers := supplierRepo.NewSupplierRepository(db)
	parts := partRepo.NewPartRepository(db)

	if err := suppliers.Create(&entity.Supplier{SupplierID: "S1"}); err != nil {
		t.Fatalf("Create supplier: %v", err)
	}

	if err := parts.Create(&entity.Part{PartID: "P1", SupplierID: strptr("S1")}); err != nil {
		t.Fatalf("Create part with existing supplier: %v", err)
	}

	err := parts.Create(&entity.Part{PartID: "P2", SupplierID: strptr("S9")})
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("Create with absent supplier = %v, want referential integrity violation", err)
	}

	// Nullable: a part without a supplier is accepted.
	if err := parts.Create(&entity.Part{PartID: "P3"}); err != nil {
		t.Errorf("Create without supplier: %v", err)
	}
}

func TestPartRepository_UpdateRechecksSupplier(t *testing.T) {
	db := testDB(t)
	suppliers := supplierRepo.NewSupplierRepository(db)
	parts := partRepo.NewPartRepository(db)

	if err := suppliers.Create(&entity.Supplier{SupplierID: "S1"}); err != nil {
		t.Fatalf("Create supplier: %v", err)
	}
	if err := parts.Create(&entity.Part{PartID: "P1", SupplierID: strptr("S1")}); err != nil {
		t.Fatalf("Create part: %v", err)
	}

	err := parts.Update(&entity.Part{PartID: "P1", SupplierID: strptr("S9")})
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("Update with absent supplier = %v, want referential integrity violation", err)
	}
}

func TestSupplierRepository_DeleteRestrict(t *testing.T) {
	db := testDB(t)
	suppliers := supplierRepo.NewSupplierRepository(db)
	parts := partRepo.NewPartRepository(db)

	if err := suppliers.Create(&entity.Supplier{SupplierID: "S1"}); err != nil {
		t.Fatalf("Create supplier: %v", err)
	}
	if err := parts.Create(&entity.Part{PartID: "P1", SupplierID: strptr("S1")}); err != nil {
		t.Fatalf("Create part: %v", err)
	}

	err := suppliers.Delete("S1")
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("Delete referenced supplier = %v, want referential integrity violation", err)
	}

	if err := parts.Delete("P1"); err != nil {
		t.Fatalf("Delete part: %v", err)
	}
	if err := suppliers.Delete("S1"); err != nil {
		t.Errorf("Delete unreferenced supplier: %v", err)
	}
}

func TestPackagingRepository_BoxChecks(t *testing.T) {
	db := testDB(t)
	repo := packagingRepo.NewPackagingRepository(db)

	err := repo.CreateBox(&entity.Box{BoxID: "B1", BoxVolM3: -1})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("CreateBox vol=-1 = %v, want domain violation", err)
	}

	if err := repo.CreateBox(&entity.Box{BoxID: "B1", BoxVolM3: 0}); err != nil {
		t.Errorf("CreateBox vol=0: %v", err)
	}

	err = repo.CreateBox(&entity.Box{BoxID: "B2", BoxAreaM2: -0.5})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("CreateBox area<0 = %v, want domain violation", err)
	}

	err = repo.CreateBox(&entity.Box{BoxID: "B3", BoxType: ptr(entity.PackagingType("recyclable"))})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("CreateBox bad type = %v, want domain violation", err)
	}
}

func TestPackagingRepository_PalletChecksAndUpdate(t *testing.T) {
	db := testDB(t)
	repo := packagingRepo.NewPackagingRepository(db)

	p := &entity.Pallet{PalletID: "PL1", PalletType: ptr(entity.PackagingReturnable), PalletVolM3: 2.5}
	if err := repo.CreatePallet(p); err != nil {
		t.Fatalf("CreatePallet: %v", err)
	}

	p.PalletVolM3 = -2.5
	err := repo.UpdatePallet(p)
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("UpdatePallet vol<0 = %v, want domain violation", err)
	}
}

func TestPackagingRepository_BoxToPallet(t *testing.T) {
	db := testDB(t)
	repo := packagingRepo.NewPackagingRepository(db)

	if err := repo.CreateBox(&entity.Box{BoxID: "B1"}); err != nil {
		t.Fatalf("CreateBox: %v", err)
	}
	if err := repo.CreatePallet(&entity.Pallet{PalletID: "PL1"}); err != nil {
		t.Fatalf("CreatePallet: %v", err)
	}

	rel := &entity.BoxToPallet{BoxID: "B1", PalletID: "PL1", BoxPerPallet: 8}
	if err := repo.AttachBoxToPallet(rel); err != nil {
		t.Fatalf("AttachBoxToPallet: %v", err)
	}

	err := repo.AttachBoxToPallet(&entity.BoxToPallet{BoxID: "B1", PalletID: "PL1"})
	if !errors.Is(err, dberr.ErrUniqueness) {
		t.Errorf("duplicate pair = %v, want uniqueness violation", err)
	}

	err = repo.AttachBoxToPallet(&entity.BoxToPallet{BoxID: "B1", PalletID: "PL9"})
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("absent pallet = %v, want referential integrity violation", err)
	}

	err = repo.DeletePallet("PL1")
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("Delete referenced pallet = %v, want referential integrity violation", err)
	}
}

func TestProductionRepository_ModelEnum(t *testing.T) {
	db := testDB(t)
	repo := productionRepo.NewProductionRepository(db)

	err := repo.CreateModel(&entity.Model{ModelID: "M1", ModelCode: ptr(entity.ModelCode("Z99"))})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("CreateModel Z99 = %v, want domain violation", err)
	}

	if err := repo.CreateModel(&entity.Model{ModelID: "M1", ModelCode: ptr(entity.ModelCode("A01")), ModelName: ptr(entity.ModelName("Jolion"))}); err != nil {
		t.Errorf("CreateModel A01: %v", err)
	}
}

func TestProductionRepository_ModelUpdate(t *testing.T) {
	db := testDB(t)
	repo := productionRepo.NewProductionRepository(db)

	if err := repo.CreateModel(&entity.Model{ModelID: "M1", ModelCode: ptr(entity.ModelCode("A01")), ModelName: ptr(entity.ModelName("Jolion"))}); err != nil {
		t.Fatalf("CreateModel: %v", err)
	}

	err := repo.UpdateModel(&entity.Model{ModelID: "M1", ModelCode: ptr(entity.ModelCode("Z99"))})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("UpdateModel Z99 = %v, want domain violation", err)
	}

	if err := repo.UpdateModel(&entity.Model{ModelID: "M1", ModelCode: ptr(entity.ModelCode("A08")), ModelName: ptr(entity.ModelName("H3"))}); err != nil {
		t.Fatalf("UpdateModel: %v", err)
	}
	m, err := repo.FindModelByCode("A08")
	if err != nil {
		t.Fatalf("FindModelByCode: %v", err)
	}
	if m.ModelName == nil || *m.ModelName != "H3" {
		t.Errorf("updated model name = %v, want H3", m.ModelName)
	}

	err = repo.UpdateModel(&entity.Model{ModelID: "M9", ModelCode: ptr(entity.ModelCode("B02"))})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("UpdateModel missing row = %v, want record not found", err)
	}
}

func TestProductionRepository_WorkshopUpdate(t *testing.T) {
	db := testDB(t)
	repo := productionRepo.NewProductionRepository(db)

	if err := repo.CreateWorkshop(&entity.Workshop{WorkshopID: "W1", WorkshopCode: ptr(entity.WorkshopCode("WELD")), WorkshopName: ptr(entity.WorkshopName("Welding"))}); err != nil {
		t.Fatalf("CreateWorkshop: %v", err)
	}

	err := repo.UpdateWorkshop(&entity.Workshop{WorkshopID: "W1", WorkshopName: ptr(entity.WorkshopName("Foundry"))})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("UpdateWorkshop Foundry = %v, want domain violation", err)
	}

	if err := repo.UpdateWorkshop(&entity.Workshop{WorkshopID: "W1", WorkshopCode: ptr(entity.WorkshopCode("PAINT")), WorkshopName: ptr(entity.WorkshopName("Painting"))}); err != nil {
		t.Fatalf("UpdateWorkshop: %v", err)
	}
	w, err := repo.FindWorkshopByCode("PAINT")
	if err != nil {
		t.Fatalf("FindWorkshopByCode: %v", err)
	}
	if w.WorkshopName == nil || *w.WorkshopName != "Painting" {
		t.Errorf("updated workshop name = %v, want Painting", w.WorkshopName)
	}
}

func TestProductionRepository_WorkshopAndLine(t *testing.T) {
	db := testDB(t)
	repo := productionRepo.NewProductionRepository(db)

	err := repo.CreateWorkshop(&entity.Workshop{WorkshopID: "W1", WorkshopName: ptr(entity.WorkshopName("Foundry"))})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("CreateWorkshop Foundry = %v, want domain violation", err)
	}

	if err := repo.CreateWorkshop(&entity.Workshop{WorkshopID: "W1", WorkshopCode: ptr(entity.WorkshopCode("WELD")), WorkshopName: ptr(entity.WorkshopName("Welding"))}); err != nil {
		t.Fatalf("CreateWorkshop: %v", err)
	}

	err = repo.CreateLine(&entity.Line{LineID: "L1", WorkshopID: "W9"})
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("CreateLine absent workshop = %v, want referential integrity violation", err)
	}

	if err := repo.CreateLine(&entity.Line{LineID: "L1", LineCode: "WL-01", WorkshopID: "W1"}); err != nil {
		t.Fatalf("CreateLine: %v", err)
	}

	err = repo.DeleteWorkshop("W1")
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("Delete workshop with line = %v, want referential integrity violation", err)
	}

	lines, err := repo.LinesInWorkshop("W1")
	if err != nil || len(lines) != 1 {
		t.Errorf("LinesInWorkshop = %v, %v; want 1 line", lines, err)
	}
}

func TestPartRepository_Junctions(t *testing.T) {
	db := testDB(t)
	suppliers := supplierRepo.NewSupplierRepository(db)
	parts := partRepo.NewPartRepository(db)
	packaging := packagingRepo.NewPackagingRepository(db)

	if err := suppliers.Create(&entity.Supplier{SupplierID: "S1"}); err != nil {
		t.Fatalf("Create supplier: %v", err)
	}
	if err := parts.Create(&entity.Part{PartID: "P1", SupplierID: strptr("S1")}); err != nil {
		t.Fatalf("Create part: %v", err)
	}
	if err := packaging.CreateBox(&entity.Box{BoxID: "B1"}); err != nil {
		t.Fatalf("CreateBox: %v", err)
	}

	if err := parts.AttachBox(&entity.PartToBox{PartID: "P1", BoxID: "B1", PartPerBox: 24}); err != nil {
		t.Fatalf("AttachBox: %v", err)
	}

	err := parts.AttachBox(&entity.PartToBox{PartID: "P1", BoxID: "B1"})
	if !errors.Is(err, dberr.ErrUniqueness) {
		t.Errorf("duplicate part-box pair = %v, want uniqueness violation", err)
	}

	err = parts.AttachBox(&entity.PartToBox{PartID: "P1", BoxID: "B9"})
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("absent box = %v, want referential integrity violation", err)
	}

	// The part is now referenced and cannot be deleted.
	err = parts.Delete("P1")
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("Delete linked part = %v, want referential integrity violation", err)
	}

	if err := parts.DetachBox("P1", "B1"); err != nil {
		t.Fatalf("DetachBox: %v", err)
	}
	if err := parts.Delete("P1"); err != nil {
		t.Errorf("Delete unlinked part: %v", err)
	}
}

func TestPartRepository_ModelAndLinePairs(t *testing.T) {
	db := testDB(t)
	parts := partRepo.NewPartRepository(db)
	production := productionRepo.NewProductionRepository(db)

	if err := parts.Create(&entity.Part{PartID: "P1"}); err != nil {
		t.Fatalf("Create part: %v", err)
	}
	if err := production.CreateModel(&entity.Model{ModelID: "M1", ModelCode: ptr(entity.ModelCode("A01"))}); err != nil {
		t.Fatalf("CreateModel: %v", err)
	}
	if err := production.CreateWorkshop(&entity.Workshop{WorkshopID: "W1", WorkshopCode: ptr(entity.WorkshopCode("AS"))}); err != nil {
		t.Fatalf("CreateWorkshop: %v", err)
	}
	if err := production.CreateLine(&entity.Line{LineID: "L1", WorkshopID: "W1"}); err != nil {
		t.Fatalf("CreateLine: %v", err)
	}

	if err := parts.AttachModel(&entity.PartToModel{PartID: "P1", ModelID: "M1", Configuration: "4x4", PartPerVehicle: 2}); err != nil {
		t.Fatalf("AttachModel: %v", err)
	}
	err := parts.AttachModel(&entity.PartToModel{PartID: "P1", ModelID: "M1"})
	if !errors.Is(err, dberr.ErrUniqueness) {
		t.Errorf("duplicate part-model pair = %v, want uniqueness violation", err)
	}

	if err := parts.AttachLine(&entity.PartToLine{PartID: "P1", LineID: "L1"}); err != nil {
		t.Fatalf("AttachLine: %v", err)
	}
	err = parts.AttachLine(&entity.PartToLine{PartID: "P1", LineID: "L1"})
	if !errors.Is(err, dberr.ErrUniqueness) {
		t.Errorf("duplicate part-line pair = %v, want uniqueness violation", err)
	}
}

func TestBreakpointRepository_DefaultInputDate(t *testing.T) {
	db := testDB(t)
	repo := breakpointRepo.NewBreakpointRepository(db)

	b := &entity.Breakpoint{BreakpointNumber: "BP-17"}
	if err := repo.Create(b); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.InputDate.IsZero() {
		t.Error("InputDate not defaulted on create")
	}

	err := repo.Create(&entity.Breakpoint{})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("Create without number = %v, want domain violation", err)
	}
}

func TestBreakpointRepository_Update(t *testing.T) {
	db := testDB(t)
	repo := breakpointRepo.NewBreakpointRepository(db)

	if err := repo.Create(&entity.Breakpoint{BreakpointID: "BP1", BreakpointNumber: "BP-17"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Update(&entity.Breakpoint{BreakpointID: "BP1"})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("Update without number = %v, want domain violation", err)
	}

	if err := repo.Update(&entity.Breakpoint{BreakpointID: "BP1", BreakpointNumber: "BP-18"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	b, err := repo.FindByID("BP1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if b.BreakpointNumber != "BP-18" {
		t.Errorf("BreakpointNumber = %q, want BP-18", b.BreakpointNumber)
	}

	err = repo.Update(&entity.Breakpoint{BreakpointID: "BP9", BreakpointNumber: "BP-19"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Update missing row = %v, want record not found", err)
	}
}

func TestPartRepository_BreakpointSnapshot(t *testing.T) {
	db := testDB(t)
	parts := partRepo.NewPartRepository(db)
	breakpoints := breakpointRepo.NewBreakpointRepository(db)

	if err := parts.Create(&entity.Part{PartID: "P1", PartNumber: "2803501XKQ00A"}); err != nil {
		t.Fatalf("Create part: %v", err)
	}
	if err := breakpoints.Create(&entity.Breakpoint{BreakpointID: "BP1", BreakpointNumber: "BP-17"}); err != nil {
		t.Fatalf("Create breakpoint: %v", err)
	}

	err := parts.AttachBreakpoint(&entity.PartToBreakpoint{
		PartID: "P1", BreakpointID: "BP1", LocalizationBeforeChange: ptr(entity.Localization("sometimes")),
	})
	if !errors.Is(err, dberr.ErrDomain) {
		t.Errorf("bad localization snapshot = %v, want domain violation", err)
	}

	rel := &entity.PartToBreakpoint{
		PartID:                   "P1",
		BreakpointID:             "BP1",
		PartNumberBeforeChange:   "2803501XKQ00A",
		SupplierNameBeforeChange: "Gestamp",
		LocalizationBeforeChange: ptr(entity.LocalizationNo),
		LineNameBeforeChange:     "Welding line 1",
	}
	if err := parts.AttachBreakpoint(rel); err != nil {
		t.Fatalf("AttachBreakpoint: %v", err)
	}

	err = parts.AttachBreakpoint(&entity.PartToBreakpoint{PartID: "P1", BreakpointID: "BP1"})
	if !errors.Is(err, dberr.ErrUniqueness) {
		t.Errorf("duplicate snapshot pair = %v, want uniqueness violation", err)
	}

	err = breakpoints.Delete("BP1")
	if !errors.Is(err, dberr.ErrReferentialIntegrity) {
		t.Errorf("Delete referenced breakpoint = %v, want referential integrity violation", err)
	}

	history, err := parts.BreakpointsFor("P1")
	if err != nil || len(history) != 1 {
		t.Fatalf("BreakpointsFor = %v, %v; want 1 snapshot", history, err)
	}
	if history[0].SupplierNameBeforeChange != "Gestamp" {
		t.Errorf("snapshot supplier = %q, want Gestamp", history[0].SupplierNameBeforeChange)
	}
}
