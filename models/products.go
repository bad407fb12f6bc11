package models

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable item belonging to one category.
// Image holds the public URL path of the uploaded image, or nil when none
// has been uploaded yet.
type Product struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"size:100;not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	Image      *string         `gorm:"size:255" json:"image"`
}

func (p *Product) TableName() string {
	return "products"
}
