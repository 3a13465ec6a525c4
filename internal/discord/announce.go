package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/logger"
	"mordomo/internal/music"
)

// watchSession consumes a session's playback events and posts the matching
// announcements to the channel the last play command came from. Installed
// via Manager.OnCreate, one goroutine per session for the process lifetime.
func (b *Bot) watchSession(s *music.Session) {
	go func() {
		for ev := range s.Events() {
			channelID := s.TextChannel()
			if channelID == "" {
				continue
			}
			switch ev.Type {
			case music.EventNowPlaying:
				b.announceNowPlaying(channelID, ev.Track, s)
			case music.EventTrackFailed:
				if ev.Track != nil {
					b.announce(channelID, "⚠️ Falha na reprodução",
						fmt.Sprintf("Não consegui tocar **%s**, pulando para a próxima.", ev.Track.Title))
				}
			case music.EventQueueEmpty:
				b.announce(channelID, "🎶 Fila encerrada",
					"Acabaram as músicas. Fico no canal de voz mais um pouco, me chame com `play`.")
			case music.EventDisconnected:
				if ev.Err == nil {
					b.announce(channelID, "👋 Até mais", "Saí do canal de voz por inatividade.")
				}
			}
		}
	}()
}

func (b *Bot) announceNowPlaying(channelID string, t *music.Track, s *music.Session) {
	if t == nil {
		return
	}
	embed := b.newEmbed()
	embed.Title = "🎧 Tocando agora"
	embed.Description = fmt.Sprintf("**%s**", t.Title)
	if t.Uploader != "" {
		embed.Description += "\npor " + t.Uploader
	}
	if t.RequestedBy != "" {
		embed.Description += fmt.Sprintf("\nPedida por <@%s>", t.RequestedBy)
	}
	if t.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: t.Thumbnail}
	}
	b.send(channelID, embed)
}

func (b *Bot) announce(channelID, title, description string) {
	embed := b.newEmbed()
	embed.Title = title
	embed.Description = description
	b.send(channelID, embed)
}

func (b *Bot) newEmbed() *discordgo.MessageEmbed {
	bg := context.Background()
	embed := &discordgo.MessageEmbed{Color: b.store.EmbedColor(bg)}
	if motto := b.store.Motto(bg); motto != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: motto}
	}
	return embed
}

func (b *Bot) send(channelID string, embed *discordgo.MessageEmbed) {
	if _, err := b.dg.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Warnf("announce to %s: %v", channelID, err)
	}
}
