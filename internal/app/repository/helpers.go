package repository

import (
	"errors"

	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
)

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// logLookupFailure logs a missing row at debug and anything else as an error.
func logLookupFailure(entity string, err error, fields map[string]interface{}) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug(entity+" not found in database", fields)
		return
	}
	logger.Error("Failed to find "+entity+" in database", err, fields)
}

// deleteByID deletes one row of model's table and reports a missing row as
// gorm.ErrRecordNotFound.
func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return wrapConstraint(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
