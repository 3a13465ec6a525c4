package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Channel resolves a logical channel role to a Discord channel ID.
func (s *Storage) Channel(ctx context.Context, kind string) (string, bool, error) {
	row := new(ChannelMapping)
	err := s.db.NewSelect().Model(row).Where("tipodecanal = ?", kind).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get channel %q: %w", kind, err)
	}
	return strconv.FormatInt(row.ChannelID, 10), true, nil
}

// SetChannel binds a logical channel role to a Discord channel ID.
func (s *Storage) SetChannel(ctx context.Context, kind, channelID string) error {
	id, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid channel id %q: %w", channelID, err)
	}
	row := &ChannelMapping{Kind: kind, ChannelID: id}
	_, err = s.db.NewInsert().
		Model(row).
		On("CONFLICT (tipodecanal) DO UPDATE").
		Set("id = EXCLUDED.id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set channel %q: %w", kind, err)
	}
	return nil
}

// Channels returns every configured channel mapping.
func (s *Storage) Channels(ctx context.Context) ([]ChannelMapping, error) {
	var list []ChannelMapping
	err := s.db.NewSelect().Model(&list).Order("tipodecanal ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return list, nil
}
