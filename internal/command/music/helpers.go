// Package music holds the prefix commands that drive the per-guild music
// session: queueing, transport control and the radio/playlist/lyrics
// extras.
package music

import (
	"fmt"
	"time"

	"mordomo/internal/command"
	"mordomo/internal/music"
)

// voiceChannelOf returns the voice channel the author currently sits in.
func voiceChannelOf(ctx *command.MessageContext) (string, bool) {
	guild, err := ctx.Session.State.Guild(ctx.Event.GuildID)
	if err != nil {
		return "", false
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == ctx.Event.Author.ID {
			return vs.ChannelID, true
		}
	}
	return "", false
}

// activeSession returns the guild's session only if one exists. Commands
// that act on playback should not create sessions as a side effect.
func activeSession(ctx *command.MessageContext) (*music.Session, bool) {
	s := ctx.Players.Get(ctx.Event.GuildID)
	if s == nil {
		command.ReplyError(ctx, "Nenhuma música está tocando no momento.")
		return nil, false
	}
	return s, true
}

// requireVoice replies with the standard error when the author is not in a
// voice channel.
func requireVoice(ctx *command.MessageContext) (string, bool) {
	channelID, ok := voiceChannelOf(ctx)
	if !ok || channelID == "" {
		command.ReplyError(ctx, "Você precisa estar em um canal de voz para usar este comando.")
		return "", false
	}
	return channelID, true
}

// formatDuration renders mm:ss, or h:mm:ss past the hour. Zero means the
// duration is unknown.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "ao vivo"
	}
	total := int(d.Seconds())
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// trackLine is the one-line queue rendering of a track.
func trackLine(t *music.Track) string {
	return fmt.Sprintf("**%s** `%s`", t.Title, formatDuration(t.Duration))
}
