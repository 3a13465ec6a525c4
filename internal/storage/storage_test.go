package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestConfigDefaults(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Missing keys resolve to documented defaults, never an error.
	_, ok, err := s.GetConfig(ctx, KeyOwner)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, "!", s.Prefix(ctx))
	assert.Empty(t, s.OwnerID(ctx))
	assert.Empty(t, s.DJRoleID(ctx))
}

func TestConfigLastWriteWins(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SetConfig(ctx, KeyPrefix, "?"))
	require.NoError(t, s.SetConfig(ctx, KeyPrefix, ">"))

	assert.Equal(t, ">", s.Prefix(ctx))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"#FF8000", 0xFF8000, false},
		{"0xff8000", 0xFF8000, false},
		{"00ff00", 0x00FF00, false},
		{"xyzzyx", 0, true},
		{"fff", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestUserVolume(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	assert.Equal(t, DefaultVolume, s.UserVolume(ctx, "123"))

	require.NoError(t, s.SetUserVolume(ctx, "123", 40))
	assert.Equal(t, 40, s.UserVolume(ctx, "123"))

	// Out of range is rejected without mutating the stored value.
	assert.ErrorIs(t, s.SetUserVolume(ctx, "123", 150), ErrVolumeOutOfRange)
	assert.ErrorIs(t, s.SetUserVolume(ctx, "123", -1), ErrVolumeOutOfRange)
	assert.Equal(t, 40, s.UserVolume(ctx, "123"))
}

func TestPlaylistRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	songs := []PlaylistSong{
		{Title: "first", URL: "https://example.com/1", Duration: 180, Uploader: "a"},
		{Title: "second", URL: "https://example.com/2", Duration: 0},
		{Title: "third", URL: "https://example.com/3", Duration: 240},
	}

	pl, err := s.SavePlaylist(ctx, "u1", "roadtrip", songs)
	require.NoError(t, err)
	assert.Equal(t, int64(420), pl.Duration)

	// Loading is non-destructive and preserves stored order.
	for i := 0; i < 2; i++ {
		loaded, err := s.PlaylistSongs(ctx, pl.ID)
		require.NoError(t, err)
		require.Len(t, loaded, 3)
		assert.Equal(t, "first", loaded[0].Title)
		assert.Equal(t, "second", loaded[1].Title)
		assert.Equal(t, "third", loaded[2].Title)
	}
}

func TestPlaylistDuplicateNameRejected(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	songs := []PlaylistSong{{Title: "one", URL: "u", Duration: 10}}
	first, err := s.SavePlaylist(ctx, "u1", "mix", songs)
	require.NoError(t, err)

	_, err = s.SavePlaylist(ctx, "u1", "mix", []PlaylistSong{{Title: "two", URL: "v"}})
	assert.True(t, errors.Is(err, ErrDuplicatePlaylist))

	// First playlist untouched.
	loaded, err := s.PlaylistSongs(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "one", loaded[0].Title)

	// Same name under another owner is fine.
	_, err = s.SavePlaylist(ctx, "u2", "mix", songs)
	assert.NoError(t, err)
}

func TestPlaylistDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	songs := []PlaylistSong{{Title: "one", URL: "u"}}
	pl, err := s.SavePlaylist(ctx, "u1", "a", songs)
	require.NoError(t, err)
	_, err = s.SavePlaylist(ctx, "u1", "b", []PlaylistSong{{Title: "two", URL: "v"}})
	require.NoError(t, err)

	// Deleting someone else's playlist fails.
	assert.ErrorIs(t, s.DeletePlaylist(ctx, "u2", pl.ID), ErrPlaylistNotFound)

	require.NoError(t, s.DeletePlaylist(ctx, "u1", pl.ID))
	list, err := s.Playlists(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	n, err := s.DeleteAllPlaylists(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestChannelMapping(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, ok, err := s.Channel(ctx, "welcome")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetChannel(ctx, "welcome", "111222333"))
	require.NoError(t, s.SetChannel(ctx, "welcome", "444555666"))

	id, ok, err := s.Channel(ctx, "welcome")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "444555666", id)
}

func TestStatusRows(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SetStatus(ctx, "listening", "!help", "online"))
	require.NoError(t, s.SetStatus(ctx, "playing", "music", "idle"))

	rows, err := s.StatusRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "playing", rows[0].Type)
	assert.Equal(t, "music", rows[0].Message)
	assert.Equal(t, "idle", rows[0].Status)
}
