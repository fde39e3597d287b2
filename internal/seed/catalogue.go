package seed

import (
	"context"
	_ "embed"
	"fmt"

	"sangha/internal/models"
	"sangha/internal/validation"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed catalogue.yml
var catalogueYAML []byte

// CatalogueEntry is one built-in category.
type CatalogueEntry struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

type catalogue struct {
	Categories []CatalogueEntry `yaml:"categories"`
}

// LoadCatalogue parses a category catalogue document. Every slug must be valid and unique.
func LoadCatalogue(data []byte) ([]CatalogueEntry, error) {
	var doc catalogue
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse category catalogue: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Categories))
	for _, entry := range doc.Categories {
		if entry.Name == "" {
			return nil, fmt.Errorf("category %q has no name", entry.Slug)
		}
		if err := validation.ValidateCategorySlug(entry.Slug); err != nil {
			return nil, fmt.Errorf("category %q: %w", entry.Name, err)
		}
		if _, dup := seen[entry.Slug]; dup {
			return nil, fmt.Errorf("duplicate category slug %q", entry.Slug)
		}
		seen[entry.Slug] = struct{}{}
	}
	return doc.Categories, nil
}

// BuiltInCategories returns the embedded catalogue.
func BuiltInCategories() ([]CatalogueEntry, error) {
	return LoadCatalogue(catalogueYAML)
}

// Categories upserts the built-in categories by slug. Running it twice is harmless.
func Categories(ctx context.Context, db *gorm.DB) ([]models.Category, error) {
	entries, err := BuiltInCategories()
	if err != nil {
		return nil, err
	}

	out := make([]models.Category, 0, len(entries))
	for _, entry := range entries {
		category := models.Category{Name: entry.Name, Slug: entry.Slug, Description: entry.Description}
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "updated_at"}),
		}).Create(&category).Error; err != nil {
			return nil, fmt.Errorf("seed category %s: %w", entry.Slug, err)
		}
		if err := db.WithContext(ctx).Where("slug = ?", entry.Slug).First(&category).Error; err != nil {
			return nil, fmt.Errorf("reload category %s: %w", entry.Slug, err)
		}
		out = append(out, category)
	}
	return out, nil
}
