// Package database persists the menu catalog behind gorm. The parsing core
// never touches it; the catalog is loaded once at startup, validated, and
// indexed read-only.
package database

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"

	"github.com/m-zayed5722/food-sense/internal/models"
)

// MenuItemRecord is the stored form of a menu item template. The nested
// collections are kept as JSON text so the row shape stays the same across
// sqlite and postgres.
type MenuItemRecord struct {
	gorm.Model
	Name          string `gorm:"unique_index;not null"`
	Category      string
	BasePrice     string `gorm:"not null"`
	Sizes         string `gorm:"type:text"`
	SizePricing   string `gorm:"type:text"`
	Modifications string `gorm:"type:text"`
	ModPricing    string `gorm:"type:text"`
	Keywords      string `gorm:"type:text"`
}

// Store is the catalog database handle.
type Store struct {
	db *gorm.DB
}

// Open connects to the catalog database and migrates the schema. The
// dialect is "sqlite3" or "postgres"; the source is a file path or DSN.
func Open(dialect, source string) (*Store, error) {
	db, err := gorm.Open(dialect, source)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}
	if err := db.AutoMigrate(&MenuItemRecord{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadCatalog reads every stored menu item. When the table is empty it is
// seeded with the given fixture first, so a fresh deployment starts with a
// working menu.
func (s *Store) LoadCatalog(seed []models.MenuItemTemplate) ([]models.MenuItemTemplate, error) {
	var count int
	if err := s.db.Model(&MenuItemRecord{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("counting catalog rows: %w", err)
	}
	if count == 0 {
		if err := s.SaveCatalog(seed); err != nil {
			return nil, err
		}
	}

	var records []MenuItemRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("loading catalog rows: %w", err)
	}

	items := make([]models.MenuItemTemplate, 0, len(records))
	for _, rec := range records {
		item, err := rec.toTemplate()
		if err != nil {
			return nil, fmt.Errorf("decoding catalog row %q: %w", rec.Name, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// SaveCatalog writes menu items, replacing rows that share a name.
func (s *Store) SaveCatalog(items []models.MenuItemTemplate) error {
	for i := range items {
		rec, err := toRecord(&items[i])
		if err != nil {
			return fmt.Errorf("encoding catalog item %q: %w", items[i].Name, err)
		}

		var existing MenuItemRecord
		result := s.db.Where("name = ?", rec.Name).First(&existing)
		if result.RecordNotFound() {
			if err := s.db.Create(rec).Error; err != nil {
				return fmt.Errorf("inserting catalog item %q: %w", rec.Name, err)
			}
			continue
		}
		if result.Error != nil {
			return fmt.Errorf("looking up catalog item %q: %w", rec.Name, result.Error)
		}
		rec.ID = existing.ID
		if err := s.db.Save(rec).Error; err != nil {
			return fmt.Errorf("updating catalog item %q: %w", rec.Name, err)
		}
	}
	return nil
}

func toRecord(item *models.MenuItemTemplate) (*MenuItemRecord, error) {
	sizes, err := json.Marshal(item.AvailableSizes)
	if err != nil {
		return nil, err
	}
	sizePricing, err := json.Marshal(item.SizePricing)
	if err != nil {
		return nil, err
	}
	mods, err := json.Marshal(item.AvailableModifications)
	if err != nil {
		return nil, err
	}
	modPricing, err := json.Marshal(item.ModificationPricing)
	if err != nil {
		return nil, err
	}
	keywords, err := json.Marshal(item.Keywords)
	if err != nil {
		return nil, err
	}
	return &MenuItemRecord{
		Name:          item.Name,
		Category:      item.Category,
		BasePrice:     item.BasePrice.String(),
		Sizes:         string(sizes),
		SizePricing:   string(sizePricing),
		Modifications: string(mods),
		ModPricing:    string(modPricing),
		Keywords:      string(keywords),
	}, nil
}

func (r *MenuItemRecord) toTemplate() (models.MenuItemTemplate, error) {
	item := models.MenuItemTemplate{
		Name:     r.Name,
		Category: r.Category,
	}

	basePrice, err := decimal.NewFromString(r.BasePrice)
	if err != nil {
		return item, err
	}
	item.BasePrice = basePrice

	fields := []struct {
		raw  string
		into interface{}
	}{
		{r.Sizes, &item.AvailableSizes},
		{r.SizePricing, &item.SizePricing},
		{r.Modifications, &item.AvailableModifications},
		{r.ModPricing, &item.ModificationPricing},
		{r.Keywords, &item.Keywords},
	}
	for _, f := range fields {
		if f.raw == "" || f.raw == "null" {
			continue
		}
		if err := json.Unmarshal([]byte(f.raw), f.into); err != nil {
			return item, err
		}
	}
	return item, nil
}
