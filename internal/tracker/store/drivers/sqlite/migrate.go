package sqlite

import (
	"errors"

	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"
)

// ApplyMigrations applies any pending migrations from the embedded files.
// It is safe to call on every start.
func (m *Store) ApplyMigrations() error {
	driver, err := sqlite.WithInstance(m.db, &sqlite.Config{})
	if err != nil {
		return err
	}

	migrationsFilesystem, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", migrationsFilesystem, "", driver)
	if err != nil {
		return err
	}

	err = instance.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
