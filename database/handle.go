package database

import (
	"context"

	"github.com/1rvyn/log-a-line/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Handle is a live reference to an opened store. A nil *Handle is valid:
// Put drops the write and Get reports not-found.
type Handle struct {
	db *gorm.DB
}

// Put upserts the draft stored under name.
func (h *Handle) Put(ctx context.Context, name, text string) error {
	if h == nil {
		return nil
	}
	err := h.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"text"}),
		}).
		Create(&models.Draft{Name: name, Text: text}).Error
	if err != nil {
		return &WriteError{Name: name, Err: err}
	}
	return nil
}

// Get returns the draft stored under name. A missing draft is not an error.
func (h *Handle) Get(ctx context.Context, name string) (models.Draft, bool, error) {
	if h == nil {
		return models.Draft{}, false, nil
	}
	var draft models.Draft
	res := h.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&draft)
	if res.Error != nil {
		return models.Draft{}, false, &ReadError{Name: name, Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return models.Draft{}, false, nil
	}
	return draft, true, nil
}
