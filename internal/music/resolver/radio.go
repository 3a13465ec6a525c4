package resolver

import (
	"context"
	"strings"

	"mordomo/internal/music"
)

// Station is one curated live radio stream.
type Station struct {
	Name   string
	Stream string
	Banner string
}

// Stations is the built-in menu, mostly Brazilian stations. Index order is
// what the radios command shows to the user.
var Stations = []Station{
	{Name: "Rádio Cidade Vida Real", Stream: "http://stream1.svrdedicado.org:8172/stream", Banner: "https://loskatchorros.com.br/radio/images/logo.png?crc=4021875005"},
	{Name: "Rádio Hunter Master", Stream: "https://live.hunter.fm/master_high", Banner: "https://cdn.hunter.fm/image/thumb/station/master-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Hits Brasil", Stream: "https://live.hunter.fm/hitsbrasil_high", Banner: "https://cdn.hunter.fm/image/thumb/station/hitsbrasil-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Pop", Stream: "https://live.hunter.fm/pop_high", Banner: "https://cdn.hunter.fm/image/thumb/station/pop-third/400x400ht.jpg"},
	{Name: "Rádio Hunter K-pop", Stream: "https://live.hunter.fm/kpop_high", Banner: "https://cdn.hunter.fm/image/thumb/station/kpop-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Sertanejo", Stream: "https://live.hunter.fm/sertanejo_high", Banner: "https://cdn.hunter.fm/image/thumb/station/sertanejo-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Moda Sertaneja", Stream: "https://live.hunter.fm/modasertaneja_high", Banner: "https://cdn.hunter.fm/image/thumb/station/modasertaneja-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Pagode", Stream: "https://live.hunter.fm/pagode_high", Banner: "https://cdn.hunter.fm/image/thumb/station/pagode-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Gospel", Stream: "https://live.hunter.fm/gospel_high", Banner: "https://cdn.hunter.fm/image/thumb/station/gospel-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Pisadinha", Stream: "https://live.hunter.fm/pisadinha_high", Banner: "https://cdn.hunter.fm/image/thumb/station/pisadinha-third/400x400ht.jpg"},
	{Name: "Rádio Hunter MPB", Stream: "https://live.hunter.fm/mpb_high", Banner: "https://cdn.hunter.fm/image/thumb/station/mpb-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Rock", Stream: "https://live.hunter.fm/rock_high", Banner: "https://cdn.hunter.fm/image/thumb/station/rock-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Tropical", Stream: "https://live.hunter.fm/tropical_high", Banner: "https://cdn.hunter.fm/image/thumb/station/tropical-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Lofi", Stream: "https://live.hunter.fm/lofi_high", Banner: "https://cdn.hunter.fm/image/thumb/station/lofi-third/400x400ht.jpg"},
	{Name: "Rádio Hunter Pop2K", Stream: "https://live.hunter.fm/pop2k_high", Banner: "https://cdn.hunter.fm/image/thumb/station/pop2k-third/400x400ht.jpg"},
	{Name: "Rádio Hunter 80s", Stream: "https://live.hunter.fm/80s_high", Banner: "https://cdn.hunter.fm/image/thumb/station/80s-third/400x400ht.jpg"},
	{Name: "Rádio Hunter SMASH!", Stream: "https://live.hunter.fm/smash_high", Banner: "https://cdn.hunter.fm/image/thumb/station/smash-third/400x400ht.jpg"},
}

// Radio resolves the curated station streams. Radio tracks come out fully
// resolved: the stream URL is the page URL and there is nothing to extract.
type Radio struct{}

func NewRadio() *Radio { return &Radio{} }

func (r *Radio) Name() string { return "radio" }

func (r *Radio) Match(input string) bool {
	for _, st := range Stations {
		if strings.EqualFold(strings.TrimSpace(input), st.Stream) {
			return true
		}
	}
	return false
}

func (r *Radio) Resolve(_ context.Context, input string) ([]*music.Track, error) {
	input = strings.TrimSpace(input)
	for _, st := range Stations {
		if strings.EqualFold(input, st.Stream) {
			return []*music.Track{StationTrack(st)}, nil
		}
	}
	return nil, ErrNoMatch
}

// StationTrack builds the playable track for a station.
func StationTrack(st Station) *music.Track {
	return music.NewTrack(music.Track{
		Title:     st.Name,
		PageURL:   st.Stream,
		StreamURL: st.Stream,
		Resolved:  true,
		Thumbnail: st.Banner,
		Kind:      music.KindRadio,
	})
}
