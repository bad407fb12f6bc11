package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

func (r *CategoriesRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) GetByID(id uint) (*Category, error) {
	var category Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByName returns the category with the exact given name, or nil when no
// such category exists.
func (r *CategoriesRepository) FindByName(name string) (*Category, error) {
	var category Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByNameExcluding is FindByName with a self-exclusion, used by the
// rename pre-check so a category may keep its current name.
func (r *CategoriesRepository) FindByNameExcluding(name string, id uint) (*Category, error) {
	var category Category
	err := r.db.Where("name = ? AND id <> ?", name, id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoriesRepository) Create(category *Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(category).Error
	})
}

func (r *CategoriesRepository) Save(category *Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(category).Error
	})
}

// DeleteWithProducts removes the category and every product referencing it
// in a single transaction. The cascade is application-level; the schema
// carries no foreign-key action.
func (r *CategoriesRepository) DeleteWithProducts(category *Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
}
