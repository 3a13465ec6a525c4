package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

const DefaultVolume = 100

var ErrVolumeOutOfRange = errors.New("volume must be between 0 and 100")

// UserVolume returns the user's saved volume percentage, defaulting to 100.
func (s *Storage) UserVolume(ctx context.Context, userID string) int {
	uid, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return DefaultVolume
	}

	row := new(UserVolume)
	err = s.db.NewSelect().Model(row).Where("user = ?", uid).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) || err != nil {
		return DefaultVolume
	}
	return row.Volume
}

// SetUserVolume saves a user's preferred volume percentage. Out-of-range
// values are rejected without touching the stored row.
func (s *Storage) SetUserVolume(ctx context.Context, userID string, volume int) error {
	if volume < 0 || volume > 100 {
		return ErrVolumeOutOfRange
	}
	uid, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	row := &UserVolume{UserID: uid, Volume: volume}
	_, err = s.db.NewInsert().
		Model(row).
		On("CONFLICT (user) DO UPDATE").
		Set("volume = EXCLUDED.volume").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set volume for %s: %w", userID, err)
	}
	return nil
}
