package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver

	"tablebook/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate brings the schema up to date and installs the uniqueness guard
// the allocation engine relies on: at most one pending/confirmed reservation
// may bind a table at a given (date, slot).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Restaurant{},
		&domain.Table{},
		&domain.Reservation{},
		&domain.Commission{},
		&domain.Notification{},
	); err != nil {
		return err
	}

	// Partial unique index: cancelled/completed rows leave the index, so a
	// cancellation frees the slot without any separate bookkeeping. Works on
	// both PostgreSQL and SQLite.
	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS uq_reservations_active_slot
ON reservations (table_id, date, slot_minutes)
WHERE status IN ('pending', 'confirmed')
`).Error
}
