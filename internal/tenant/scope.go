package tenant

import "gorm.io/gorm"

// Scope limits a query to one company's rows.
func Scope(companyID int64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
