package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mordomo/internal/music"
)

func TestYouTubeMatch(t *testing.T) {
	yt := NewYouTube()

	assert.True(t, yt.Match("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.True(t, yt.Match("https://youtu.be/dQw4w9WgXcQ"))
	assert.True(t, yt.Match("https://music.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.False(t, yt.Match("https://soundcloud.com/artist/track"))
	assert.False(t, yt.Match("some song title"))
}

func TestRadioMatch(t *testing.T) {
	r := NewRadio()

	assert.True(t, r.Match("https://live.hunter.fm/lofi_high"))
	assert.True(t, r.Match("  https://live.hunter.fm/LOFI_high "))
	assert.False(t, r.Match("https://www.youtube.com/watch?v=abc"))
}

func TestSpotifyMatch(t *testing.T) {
	s := NewSpotify("id", "secret", NewYouTube())

	assert.True(t, s.Match("https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC"))
	assert.True(t, s.Match("https://open.spotify.com/intl-pt/playlist/37i9dQZF1DX0FOF1IUWK1W"))
	assert.True(t, s.Match("https://open.spotify.com/album/2noRn2Aes5aoNVsU6iWThc"))
	assert.False(t, s.Match("https://www.youtube.com/watch?v=abc"))
}

func TestStationTrackIsLiveAndResolved(t *testing.T) {
	tr := StationTrack(Stations[0])

	assert.Equal(t, music.KindRadio, tr.Kind)
	assert.True(t, tr.Resolved)
	assert.Equal(t, tr.PageURL, tr.StreamURL)
	assert.True(t, tr.Live())
}

func TestCleanVideoURL(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLx&index=3": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?t=42":                            "https://youtu.be/dQw4w9WgXcQ",
		"https://music.youtube.com/watch?v=dQw4w9WgXcQ&si=xyz":         "https://music.youtube.com/watch?v=dQw4w9WgXcQ",
		"not a url": "not a url",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanVideoURL(in), in)
	}
}

func TestIsPlaylistURL(t *testing.T) {
	assert.True(t, isPlaylistURL("https://www.youtube.com/playlist?list=PLx"))
	assert.False(t, isPlaylistURL("https://www.youtube.com/watch?v=abc&list=PLx"))
	assert.False(t, isPlaylistURL("https://youtu.be/abc"))
}

func TestResolverRoutesFreeTextToYouTube(t *testing.T) {
	r := New(Options{})

	// free text never reaches the URL sources
	for _, s := range r.sources {
		assert.False(t, s.Match("never gonna give you up"))
	}
}

func TestSpotifyRegisteredOnlyWithCredentials(t *testing.T) {
	bare := New(Options{})
	for _, s := range bare.sources {
		assert.NotEqual(t, "spotify", s.Name())
	}

	withCreds := New(Options{SpotifyID: "id", SpotifySecret: "secret"})
	var found bool
	for _, s := range withCreds.sources {
		if s.Name() == "spotify" {
			found = true
		}
	}
	assert.True(t, found)
}
