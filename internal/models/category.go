package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category is reference data for expense classification.
//
// The catalog is seeded once and read-only afterwards, the core never
// creates or modifies categories at runtime.
type Category struct {
	DefaultModel
	Name  string `json:"name" gorm:"uniqueIndex" example:"food"` // Key of the category
	Label string `json:"label" example:"Food & Groceries"`       // Display label
	Icon  string `json:"icon" example:"utensils"`                // Icon reference for clients
}

// BeforeSave trims whitespace from all strings
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Label = strings.TrimSpace(c.Label)
	c.Icon = strings.TrimSpace(c.Icon)

	return nil
}

// defaultCategories is the seed catalog. Aggregates are keyed by these names,
// so renaming an entry requires a data migration.
var defaultCategories = []Category{
	{Name: "food", Label: "Food & Groceries", Icon: "utensils"},
	{Name: "transport", Label: "Transport", Icon: "bus"},
	{Name: "entertainment", Label: "Entertainment", Icon: "film"},
	{Name: "shopping", Label: "Shopping", Icon: "shopping-bag"},
	{Name: "health", Label: "Health", Icon: "heart-pulse"},
	{Name: "education", Label: "Education", Icon: "book"},
	{Name: "other", Label: "Other", Icon: "ellipsis"},
}

// SeedCategories inserts the default category catalog if no categories exist.
func SeedCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	categories := make([]Category, len(defaultCategories))
	copy(categories, defaultCategories)
	return db.Create(&categories).Error
}

// Categories returns the full category catalog, ordered by name.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.Order("categories.name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
