package store

import (
	"fmt"
	"io/fs"

	"github.com/smallworld/txstats/internal/constants"
)

// Open returns the Source for driver. path is the fixture file for the json
// driver and the database file for the sqlite driver.
func Open(driver, path string, migrationsFS fs.FS) (Source, error) {
	switch driver {
	case "", constants.DriverJSON:
		return NewJSONSource(path), nil
	case constants.DriverSQLite:
		s, err := NewSQLiteStore(path, migrationsFS)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
