package services

import "gorm.io/gorm"

// withTransaction runs fn inside a database transaction. With a nil db
// fn runs directly with a nil tx; repos then fall back to their own
// handles.
func withTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.Transaction(fn)
}
