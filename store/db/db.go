package db

import (
	"github.com/pkg/errors"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
	"github.com/lyrebird-labs/keepsake/store/db/localfs"
	"github.com/lyrebird-labs/keepsake/store/db/postgres"
	"github.com/lyrebird-labs/keepsake/store/db/remote"
	"github.com/lyrebird-labs/keepsake/store/db/sqlite"
)

// NewDBDriver creates new db driver based on profile.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch profile.Driver {
	case "localfs":
		driver, err = localfs.NewDB(profile)
	case "sqlite":
		driver, err = sqlite.NewDB(profile)
	case "postgres":
		driver, err = postgres.NewDB(profile)
	case "remote":
		driver, err = remote.NewDB(profile)
	default:
		return nil, errors.Errorf("unknown db driver: %s", profile.Driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}
