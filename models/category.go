package models

// Category is a named grouping of products.
//
// Name uniqueness is enforced by an explicit pre-check in the handlers, not
// by a database constraint, so the column intentionally carries no unique
// index.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (c *Category) TableName() string {
	return "categories"
}
