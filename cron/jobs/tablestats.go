// Package jobs holds compiled-in cron jobs. Importing it (blank import in
// the CLI entrypoint) registers them with the cron registry.
package jobs

import (
	"log"

	"mft.GO/config"
	"mft.GO/cron"
	entity "mft.GO/model/entity"
)

func init() {
	cron.Register("tablestats", "0 3 * * *", TableStatsJob)
}

// TableStatsJob logs row counts per logistics table for capacity tracking.
func TableStatsJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("tablestats: database connection failed: %v", err)
		return
	}

	tables := []struct {
		name  string
		model interface{}
	}{
		{"supplier_data", &entity.Supplier{}},
		{"part_data", &entity.Part{}},
		{"box_data", &entity.Box{}},
		{"pallet_data", &entity.Pallet{}},
		{"model_data", &entity.Model{}},
		{"workshop_data", &entity.Workshop{}},
		{"line_data", &entity.Line{}},
		{"breakpoint_data", &entity.Breakpoint{}},
		{"part_to_box", &entity.PartToBox{}},
		{"box_to_pallet", &entity.BoxToPallet{}},
		{"part_to_model", &entity.PartToModel{}},
		{"part_to_line", &entity.PartToLine{}},
		{"part_to_breakpoint", &entity.PartToBreakpoint{}},
	}
	for _, tbl := range tables {
		var n int64
		if err := db.Model(tbl.model).Count(&n).Error; err != nil {
			log.Printf("tablestats: %s: %v", tbl.name, err)
			continue
		}
		log.Printf("tablestats: %s rows=%d", tbl.name, n)
	}
}
