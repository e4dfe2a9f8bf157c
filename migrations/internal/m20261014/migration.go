package m20261014

import (
	"gorm.io/gorm"
)

const ID = "20261014"

// Settings database model, only the column added by this migration
type Settings struct {
	Language string `gorm:"column:language;not null;default:english"`
}

func (Settings) TableName() string {
	return "launcher_settings"
}

func Migrate(tx *gorm.DB) error {
	if err := tx.Migrator().AddColumn(&Settings{}, "Language"); err != nil {
		return err
	}

	return nil
}

func Rollback(tx *gorm.DB) error {
	if err := tx.Migrator().DropColumn(&Settings{}, "Language"); err != nil {
		return err
	}

	return nil
}
