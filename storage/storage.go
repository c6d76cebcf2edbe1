// Package storage opens the shared application database. Every domain module
// works against this one GORM handle so foreign keys, cascades and
// cross-entity transactions hold across module boundaries.
package storage

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/laibaTLD/logic-camp/domain/goal"
	"github.com/laibaTLD/logic-camp/domain/project"
	"github.com/laibaTLD/logic-camp/domain/task"
	"github.com/laibaTLD/logic-camp/domain/user"
)

// Open connects to the SQLite database at path and migrates the schema.
// Foreign key enforcement is switched on so goal/task cascades apply at the
// store level as well as in the explicit transactional deletes.
func Open(path string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs the schema migrations for every entity.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&project.Project{},
		&goal.Goal{},
		&task.Task{},
		&task.TaskAssignment{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
