package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simple-notes/backend/config"
)

// Connect opens the store configured in cfg. TranslateError is enabled
// so unique-constraint violations surface as gorm.ErrDuplicatedKey
// regardless of driver.
func Connect(cfg config.DB) (*gorm.DB, error) {
	opts := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Pass, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), opts)
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.Path), opts)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
