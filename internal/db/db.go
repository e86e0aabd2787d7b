package db

import (
	"log"
	"os"

	"buzzline/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open opens (or creates) the SQLite database file at path and runs migrations.
// foreign_keys is a per-connection pragma in SQLite, so it goes into the DSN.
func Open(path string) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.LogEntry{},
	)
	if err != nil {
		return nil, err
	}

	return gdb, nil
}

// Init opens the database from config and installs the global handle.
func Init() {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		// Fallback for local dev if not set
		path = "database.sqlite"
	}

	var err error
	DB, err = Open(path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	log.Printf("Database ready at %s", path)
}
