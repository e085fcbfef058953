package repositories

import "gorm.io/gorm"

// limitScope truncates a list query; limit <= 0 means no limit.
func limitScope(limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Limit(limit)
	}
}
