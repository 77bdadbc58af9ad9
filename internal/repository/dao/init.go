package dao

import (
	"github.com/roguecreek/quartermaster/internal/catalog"
	"gorm.io/gorm"
)

// InitTables creates the per-domain stock tables and the bot_state
// key/value table. Safe to call on every startup.
func InitTables(db *gorm.DB) error {
	for _, d := range catalog.Domains() {
		if err := db.Table(d.TableName()).AutoMigrate(&StockEntry{}); err != nil {
			return err
		}
	}

	return db.AutoMigrate(&BotState{})
}
