package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/interlinear/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	return open(dbPath, logger.Warn)
}

// NewQuietDatabase opens the database with gorm logging disabled, for CLI
// commands whose output should stay clean.
func NewQuietDatabase(dbPath string) (*Database, error) {
	return open(dbPath, logger.Silent)
}

func open(dbPath string, level logger.LogLevel) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Verse{},
		&entities.Word{},
		&entities.Highlight{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if level != logger.Silent {
		log.Printf("Database initialized successfully at %s", dbPath)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

type Stats struct {
	Verses     int64 `json:"verses"`
	Words      int64 `json:"words"`
	Highlights int64 `json:"highlights"`
}

func (d *Database) GetStats() (Stats, error) {
	var stats Stats
	if err := d.DB.Model(&entities.Verse{}).Count(&stats.Verses).Error; err != nil {
		return stats, err
	}
	if err := d.DB.Model(&entities.Word{}).Count(&stats.Words).Error; err != nil {
		return stats, err
	}
	err := d.DB.Model(&entities.Highlight{}).Count(&stats.Highlights).Error
	return stats, err
}
