package repository

import (
	"gorm.io/gorm"
)

// NotStoppedScope filters out schemes that have been stopped.
// An empty stopped_date is treated the same as NULL.
func NotStoppedScope(db *gorm.DB) *gorm.DB {
	return db.Where("stopped_date IS NULL OR stopped_date = ''")
}

// WindowContainsScope returns a GORM scope that keeps rows whose inclusive
// [start_date, end_date] window contains day. Dates are ISO strings, so
// lexical comparison matches calendar order.
func WindowContainsScope(day string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("start_date <= ? AND end_date >= ?", day, day)
	}
}

// LocationScope restricts stock rows to one location
func LocationScope(locationID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("location_id = ?", locationID)
	}
}
