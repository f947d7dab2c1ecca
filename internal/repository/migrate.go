package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table from the row models in this
// package. Used by the seed command and disposable dev databases; managed
// environments run their own migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&leadModel{},
		&serviceModel{},
		&propertyModel{},
		&providerModel{},
		&requestModel{},
		&reservationModel{},
		&expenseModel{},
		&notificationModel{},
	)
}
