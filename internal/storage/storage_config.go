package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Well-known keys of the configs table. Names kept from the previous
// generation of the bot for database compatibility.
const (
	KeyPrefix     = "PREFIXO"
	KeyOwner      = "DONO"
	KeyEmbedColor = "EMBED_COLOR"
	KeyMotto      = "LEMA"
	KeyClanName   = "NOME_CLA"
	KeyDJRole     = "TAG_DJ"
	KeyStaffRole  = "TAG_STAFF"
)

const DefaultPrefix = "!"

// GetConfig reads one settings value. A missing key is not an error: the
// second return is false and callers fall back to their documented default.
func (s *Storage) GetConfig(ctx context.Context, key string) (string, bool, error) {
	entry := new(ConfigEntry)
	err := s.db.NewSelect().Model(entry).Where("key = ?", key).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// SetConfig upserts a settings value. Concurrent writers follow last write
// wins.
func (s *Storage) SetConfig(ctx context.Context, key, value string) error {
	entry := &ConfigEntry{Key: key, Value: value}
	_, err := s.db.NewInsert().
		Model(entry).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

// Prefix returns the command prefix, defaulting to "!".
func (s *Storage) Prefix(ctx context.Context) string {
	v, ok, err := s.GetConfig(ctx, KeyPrefix)
	if err != nil || !ok || v == "" {
		return DefaultPrefix
	}
	return v
}

// EmbedColor returns the accent color for embeds. The stored value is a hex
// string ("#FF8000", "0xFF8000" or "FF8000"); "random" or anything invalid
// yields a random color, matching the previous bot's behavior.
func (s *Storage) EmbedColor(ctx context.Context) int {
	v, ok, _ := s.GetConfig(ctx, KeyEmbedColor)
	if ok && !strings.EqualFold(v, "random") {
		if c, err := ParseHexColor(v); err == nil {
			return c
		}
	}
	return rand.Intn(0xFFFFFF + 1)
}

// ParseHexColor parses a 6-digit hex color with an optional "#" or "0x"
// prefix.
func ParseHexColor(v string) (int, error) {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "#")
	v = strings.TrimPrefix(v, "0x")
	if len(v) != 6 {
		return 0, fmt.Errorf("invalid color %q", v)
	}
	c, err := strconv.ParseInt(v, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", v)
	}
	return int(c), nil
}

// OwnerID returns the configured bot owner's user ID, or "" when unset.
func (s *Storage) OwnerID(ctx context.Context) string {
	v, _, _ := s.GetConfig(ctx, KeyOwner)
	return v
}

// DJRoleID returns the role allowed to drive someone else's music session.
func (s *Storage) DJRoleID(ctx context.Context) string {
	v, _, _ := s.GetConfig(ctx, KeyDJRole)
	return v
}

// StaffRoleID returns the staff role used by administrative commands.
func (s *Storage) StaffRoleID(ctx context.Context) string {
	v, _, _ := s.GetConfig(ctx, KeyStaffRole)
	return v
}

// Motto returns the footer line used on embeds, or "" when unset.
func (s *Storage) Motto(ctx context.Context) string {
	v, _, _ := s.GetConfig(ctx, KeyMotto)
	return v
}

// ClanName returns the configured clan name, or "" when unset.
func (s *Storage) ClanName(ctx context.Context) string {
	v, _, _ := s.GetConfig(ctx, KeyClanName)
	return v
}
