// Package catalog seeds and serves the closed reference catalogs of the
// schema: the six vehicle models and six workshops.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"mft.GO/config"
	"mft.GO/core/cache"
	"mft.GO/core/dberr"
	entity "mft.GO/model/entity"
	productionRepo "mft.GO/model/repository/production"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Entry is one catalog row in the seed file.
type Entry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Catalog is the parsed seed file.
type Catalog struct {
	Models    []Entry `yaml:"models"`
	Workshops []Entry `yaml:"workshops"`
}

// Load parses a catalog seed file.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(defaultCatalog, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// SeedResult holds counters from a seeding run.
type SeedResult struct {
	ModelsCreated    int
	WorkshopsCreated int
	Skipped          int
}

// Seed inserts missing catalog rows. Idempotent: rows whose code already
// exists are skipped; entries outside the enumerated sets are rejected
// before anything is written.
func Seed(db *gorm.DB, c *Catalog) (*SeedResult, error) {
	for _, e := range c.Models {
		if !entity.ModelCode(e.Code).Valid() {
			return nil, dberr.Domain("model_data", "model_code", e.Code)
		}
		if !entity.ModelName(e.Name).Valid() {
			return nil, dberr.Domain("model_data", "model_name", e.Name)
		}
	}
	for _, e := range c.Workshops {
		if !entity.WorkshopCode(e.Code).Valid() {
			return nil, dberr.Domain("workshop_data", "workshop_code", e.Code)
		}
		if !entity.WorkshopName(e.Name).Valid() {
			return nil, dberr.Domain("workshop_data", "workshop_name", e.Name)
		}
	}

	repo := productionRepo.NewProductionRepository(db)
	res := &SeedResult{}
	for _, e := range c.Models {
		if _, err := repo.FindModelByCode(entity.ModelCode(e.Code)); err == nil {
			res.Skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		code, name := entity.ModelCode(e.Code), entity.ModelName(e.Name)
		m := &entity.Model{ModelCode: &code, ModelName: &name}
		if err := repo.CreateModel(m); err != nil {
			return nil, err
		}
		res.ModelsCreated++
	}
	for _, e := range c.Workshops {
		if _, err := repo.FindWorkshopByCode(entity.WorkshopCode(e.Code)); err == nil {
			res.Skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		code, name := entity.WorkshopCode(e.Code), entity.WorkshopName(e.Name)
		w := &entity.Workshop{WorkshopCode: &code, WorkshopName: &name}
		if err := repo.CreateWorkshop(w); err != nil {
			return nil, err
		}
		res.WorkshopsCreated++
	}
	return res, nil
}

// Lookup TTL: catalogs are closed sets, an hour is generous.
const lookupTTL = 3600

// Service serves cached catalog lookups.
type Service struct {
	repo *productionRepo.ProductionRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: productionRepo.NewProductionRepository(db)}
}

// ModelByCode returns the vehicle model for a code, reading through the
// in-process cache and redis when configured.
func (s *Service) ModelByCode(code entity.ModelCode) (*entity.Model, error) {
	if !code.Valid() {
		return nil, dberr.Domain("model_data", "model_code", string(code))
	}
	if v, ok := cache.GetInstance().GetN("catalog:model", string(code)); ok {
		return v.(*entity.Model), nil
	}
	if m, ok := redisGet[entity.Model]("catalog:model:" + string(code)); ok {
		cache.GetInstance().SetN([]interface{}{"catalog:model", string(code)}, m, lookupTTL)
		return m, nil
	}
	m, err := s.repo.FindModelByCode(code)
	if err != nil {
		return nil, err
	}
	cache.GetInstance().SetN([]interface{}{"catalog:model", string(code)}, m, lookupTTL)
	redisSet("catalog:model:"+string(code), m)
	return m, nil
}

// WorkshopByCode returns the workshop for a code, cached the same way.
func (s *Service) WorkshopByCode(code entity.WorkshopCode) (*entity.Workshop, error) {
	if !code.Valid() {
		return nil, dberr.Domain("workshop_data", "workshop_code", string(code))
	}
	if v, ok := cache.GetInstance().GetN("catalog:workshop", string(code)); ok {
		return v.(*entity.Workshop), nil
	}
	if w, ok := redisGet[entity.Workshop]("catalog:workshop:" + string(code)); ok {
		cache.GetInstance().SetN([]interface{}{"catalog:workshop", string(code)}, w, lookupTTL)
		return w, nil
	}
	w, err := s.repo.FindWorkshopByCode(code)
	if err != nil {
		return nil, err
	}
	cache.GetInstance().SetN([]interface{}{"catalog:workshop", string(code)}, w, lookupTTL)
	redisSet("catalog:workshop:"+string(code), w)
	return w, nil
}

func redisGet[T any](key string) (*T, bool) {
	if config.RedisClient == nil {
		return nil, false
	}
	data, err := config.RedisClient.Get(config.RedisCtx(), key).Bytes()
	if err != nil {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	return &v, true
}

func redisSet(key string, v interface{}) {
	if config.RedisClient == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	config.RedisClient.Set(config.RedisCtx(), key, data, time.Duration(lookupTTL)*time.Second)
}
