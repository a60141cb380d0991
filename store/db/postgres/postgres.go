package postgres

import (
	"context"
	"database/sql"
	"time"

	// Import the PostgreSQL driver.
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
)

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens the PostgreSQL database, applies the schema and, in demo
// mode, seeds empty tables with the default dataset.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}

	db, err := sql.Open("postgres", profile.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database: %s", profile.DSN)
	}

	// The service fronts a couple's shared scrapbook, so the pool is
	// sized for a handful of concurrent requests at most.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(2 * time.Hour)
	db.SetConnMaxIdleTime(15 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	d := &DB{db: db, profile: profile}
	if err := d.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, latestSchema); err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}
	if d.profile.Mode == "demo" {
		return d.seedIfEmpty(ctx)
	}
	return nil
}

// seedIfEmpty loads the default dataset into a fresh demo database.
func (d *DB) seedIfEmpty(ctx context.Context) error {
	var count int
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM note").Scan(&count); err != nil {
		return errors.Wrap(err, "failed to inspect note table")
	}
	if count > 0 {
		return nil
	}

	seed := store.DefaultSeed(time.Now())
	for _, note := range seed.Notes {
		if _, err := d.CreateNote(ctx, note); err != nil {
			return err
		}
	}
	for _, memory := range seed.Memories {
		if _, err := d.CreateMemory(ctx, memory); err != nil {
			return err
		}
	}
	for _, event := range seed.TimelineEvents {
		if _, err := d.CreateTimelineEvent(ctx, event); err != nil {
			return err
		}
	}
	for _, event := range seed.CountdownEvents {
		if _, err := d.CreateCountdownEvent(ctx, event); err != nil {
			return err
		}
	}
	for _, compliment := range seed.Compliments {
		if _, err := d.CreateCompliment(ctx, compliment); err != nil {
			return err
		}
	}
	for _, question := range seed.QuizQuestions {
		if _, err := d.CreateQuizQuestion(ctx, question); err != nil {
			return err
		}
	}
	return nil
}
