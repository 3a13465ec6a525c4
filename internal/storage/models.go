package storage

import "github.com/uptrace/bun"

// ConfigEntry is one row of the generic key/value settings table.
type ConfigEntry struct {
	bun.BaseModel `bun:"table:configs"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}

// UserVolume stores a user's preferred playback volume as a percentage.
type UserVolume struct {
	bun.BaseModel `bun:"table:volume"`

	UserID int64 `bun:"user,pk"`
	Volume int   `bun:"volume,notnull"`
}

// Playlist is a user-named saved queue. Name is unique per owner.
type Playlist struct {
	bun.BaseModel `bun:"table:playlists"`

	ID       int64  `bun:"id,pk,autoincrement"`
	UserID   string `bun:"userid,notnull"`
	Name     string `bun:"name,notnull"`
	Duration int64  `bun:"duration,notnull"` // seconds, aggregate
}

// PlaylistSong is one entry of a saved playlist, in stored order.
type PlaylistSong struct {
	bun.BaseModel `bun:"table:playlist_songs"`

	ID         int64  `bun:"id,pk,autoincrement"`
	PlaylistID int64  `bun:"playlist_id,notnull"`
	Title      string `bun:"title,notnull"`
	URL        string `bun:"url,notnull"`
	Duration   int64  `bun:"duration"` // seconds, 0 = unknown
	Uploader   string `bun:"uploader"`
	Thumbnail  string `bun:"thumbnail"`
}

// ChannelMapping binds a logical channel role ("welcome", "logs", ...) to a
// Discord channel ID. Table name kept from the previous generation of the
// bot so existing databases keep working.
type ChannelMapping struct {
	bun.BaseModel `bun:"table:canais"`

	Kind      string `bun:"tipodecanal,pk"`
	ChannelID int64  `bun:"id,notnull"`
}

// StatusRow is one presence configuration, reapplied at startup.
type StatusRow struct {
	bun.BaseModel `bun:"table:status"`

	ID      int64  `bun:"id,pk,autoincrement"`
	Type    string `bun:"status_type,notnull"`    // playing | listening | watching | streaming
	Message string `bun:"status_message,notnull"` // presence text
	Status  string `bun:"status_status,notnull"`  // online | idle | dnd | invisible
}
