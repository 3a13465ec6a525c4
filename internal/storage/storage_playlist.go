package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

var (
	ErrDuplicatePlaylist = errors.New("a playlist with this name already exists")
	ErrPlaylistNotFound  = errors.New("playlist not found")
)

// SavePlaylist stores a named queue for a user. Name uniqueness is enforced
// per owner: a second save under the same name is rejected and the existing
// playlist is left untouched.
func (s *Storage) SavePlaylist(ctx context.Context, userID, name string, songs []PlaylistSong) (*Playlist, error) {
	if len(songs) == 0 {
		return nil, errors.New("nothing to save")
	}

	exists, err := s.db.NewSelect().
		Model((*Playlist)(nil)).
		Where("userid = ? AND name = ?", userID, name).
		Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("check playlist %q: %w", name, err)
	}
	if exists {
		return nil, ErrDuplicatePlaylist
	}

	var total int64
	for _, song := range songs {
		total += song.Duration
	}

	pl := &Playlist{UserID: userID, Name: name, Duration: total}

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(pl).Exec(ctx); err != nil {
			return err
		}
		for i := range songs {
			songs[i].ID = 0
			songs[i].PlaylistID = pl.ID
		}
		if _, err := tx.NewInsert().Model(&songs).Exec(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save playlist %q: %w", name, err)
	}
	return pl, nil
}

// Playlists lists a user's saved playlists, oldest first.
func (s *Storage) Playlists(ctx context.Context, userID string) ([]Playlist, error) {
	var list []Playlist
	err := s.db.NewSelect().
		Model(&list).
		Where("userid = ?", userID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	return list, nil
}

// PlaylistSongs returns the songs of a playlist in stored order. Loading is
// non-destructive: the rows are only read.
func (s *Storage) PlaylistSongs(ctx context.Context, playlistID int64) ([]PlaylistSong, error) {
	var songs []PlaylistSong
	err := s.db.NewSelect().
		Model(&songs).
		Where("playlist_id = ?", playlistID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load playlist songs: %w", err)
	}
	return songs, nil
}

// DeletePlaylist removes one playlist owned by the user, with its songs.
func (s *Storage) DeletePlaylist(ctx context.Context, userID string, playlistID int64) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*Playlist)(nil)).
			Where("id = ? AND userid = ?", playlistID, userID).
			Exec(ctx)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrPlaylistNotFound
		}
		_, err = tx.NewDelete().
			Model((*PlaylistSong)(nil)).
			Where("playlist_id = ?", playlistID).
			Exec(ctx)
		return err
	})
}

// DeleteAllPlaylists removes every playlist owned by the user and returns
// how many were deleted.
func (s *Storage) DeleteAllPlaylists(ctx context.Context, userID string) (int64, error) {
	var deleted int64
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var ids []int64
		err := tx.NewSelect().
			Model((*Playlist)(nil)).
			Column("id").
			Where("userid = ?", userID).
			Scan(ctx, &ids)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if _, err := tx.NewDelete().
			Model((*PlaylistSong)(nil)).
			Where("playlist_id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return err
		}
		res, err := tx.NewDelete().
			Model((*Playlist)(nil)).
			Where("userid = ?", userID).
			Exec(ctx)
		if err != nil {
			return err
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	return deleted, err
}
