package Models

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the handle main wires up at startup. Controllers take the handle
// through their constructors so tests can run against their own databases.
var DB *gorm.DB

// Connect opens the sqlite database, migrates the schema and seeds the
// reference tables on first run.
func Connect(dbPath string) (*gorm.DB, error) {
	connection, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(connection); err != nil {
		return nil, err
	}

	if err := SeedReferenceData(connection); err != nil {
		log.Printf("Error seeding reference data: %v", err)
	}

	DB = connection
	return connection, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Area{},
		&Calculation{},
		&Lookup{},
		&Invoice{},
	)
}
