package database

import (
	"gorm.io/gorm"
)

// NewestFirst orders records by descending primary key
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

// WhereEquals filters on a single column equality
func WhereEquals(column string, value any) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}
