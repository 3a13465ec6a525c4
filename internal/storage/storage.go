// Package storage persists the bot's relational state: generic settings,
// per-user volume, saved playlists, channel mappings and presence rows.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

type Storage struct {
	db *bun.DB
}

// New opens (or creates) the sqlite database at path and makes sure the
// schema exists. Use ":memory:" for tests.
func New(path string) (*Storage, error) {
	dsn := path
	if path == ":memory:" {
		dsn = "file::memory:?cache=shared"
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite misbehaves with concurrent writers on one file.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.FromEnv("BUNDEBUG")))

	s := &Storage{db: db}
	if err := s.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Storage) createTables(ctx context.Context) error {
	models := []any{
		(*ConfigEntry)(nil),
		(*UserVolume)(nil),
		(*Playlist)(nil),
		(*PlaylistSong)(nil),
		(*ChannelMapping)(nil),
		(*StatusRow)(nil),
	}
	for _, m := range models {
		if _, err := s.db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", m, err)
		}
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
