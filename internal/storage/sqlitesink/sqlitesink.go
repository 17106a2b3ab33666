// Package sqlitesink provides a sqlite-backed key-value sink for setups that
// prefer a single database file over a data directory.
package sqlitesink

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (entry) TableName() string { return "kv" }

// Sink stores key-value pairs in a single sqlite table.
type Sink struct {
	db *gorm.DB
}

// New opens (or creates) the database at path and runs migrations.
func New(path string) (*Sink, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Sink{db: db}, nil
}

func (s *Sink) Get(key string) (string, bool, error) {
	var e entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return e.Value, true, nil
}

func (s *Sink) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Sink) Remove(key string) error {
	if err := s.db.Delete(&entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
