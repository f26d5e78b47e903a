package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the Postgres connection pool and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the tables, unique indexes and tombstone indexes. It is
// shared with the test setup, which runs it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MemberModel{}, &PostModel{}, &FollowModel{})
}

// notDeleted is the tombstone predicate. Every read that must exclude
// soft-deleted rows applies it explicitly via Scopes.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}
