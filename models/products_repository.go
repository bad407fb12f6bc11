package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductsRepository) Create(product *Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
}

func (r *ProductsRepository) Save(product *Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(product).Error
	})
}

func (r *ProductsRepository) Delete(product *Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(product).Error
	})
}
