package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

var (
	db    *sql.DB
	bunDB *bun.DB
)

// OpenDB initializes the SQLite database connection
func OpenDB(dataSourceName string) error {
	var err error
	db, err = sql.Open("sqlite3", withForeignKeys(dataSourceName))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Enable foreign key constraints
	if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	bunDB = bun.NewDB(db, sqlitedialect.New())
	return nil
}

// withForeignKeys makes every pooled connection enforce foreign keys, not just the first
func withForeignKeys(dataSourceName string) string {
	if strings.Contains(dataSourceName, "_foreign_keys") || strings.Contains(dataSourceName, "_fk") {
		return dataSourceName
	}
	sep := "?"
	if strings.Contains(dataSourceName, "?") {
		sep = "&"
	}
	return dataSourceName + sep + "_foreign_keys=on"
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(dataSourceName string) error {
	if err := OpenDB(dataSourceName); err != nil {
		return err
	}

	// Run migrations
	if err := RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Database initialized successfully")
	return nil
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}

// GetBunDB returns the bun query layer over the database connection
func GetBunDB() *bun.DB {
	return bunDB
}

// CloseDB closes the database connection
func CloseDB() error {
	if bunDB != nil {
		err := bunDB.Close()
		bunDB, db = nil, nil
		return err
	}
	if db != nil {
		err := db.Close()
		db = nil
		return err
	}
	return nil
}
