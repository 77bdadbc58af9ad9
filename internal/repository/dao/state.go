package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrStateNotFound = errors.New("state key not found")

// BotState is a key/value row used for opaque bot bookkeeping such as
// display handles.
type BotState struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"not null;column:value"`
}

func (BotState) TableName() string {
	return "bot_state"
}

type StateDAO struct {
	db *gorm.DB
}

func NewStateDAO(db *gorm.DB) *StateDAO {
	return &StateDAO{
		db: db,
	}
}

// Save upserts the value under the given key.
func (d *StateDAO) Save(ctx context.Context, key, value string) error {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&BotState{Key: key, Value: value})
	if result.Error != nil {
		return mapStorageErr(result.Error)
	}

	return nil
}

// Load returns the value stored under the given key.
func (d *StateDAO) Load(ctx context.Context, key string) (string, error) {
	var state BotState
	result := d.db.WithContext(ctx).
		Where("key = ?", key).
		First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrStateNotFound
		}

		return "", mapStorageErr(result.Error)
	}

	return state.Value, nil
}
