package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/logger"
)

// Logical channel kinds stored in the canais table by the setchannel
// command.
const (
	welcomeChannelKind  = "boas_vindas"
	farewellChannelKind = "saida"
)

func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	channelID, ok := b.memberChannel(welcomeChannelKind)
	if !ok {
		return
	}
	msg := fmt.Sprintf("🎉 Bem-vindo(a), <@%s>! Aproveite o servidor! 🌟", m.User.ID)
	if _, err := s.ChannelMessageSend(channelID, msg); err != nil {
		logger.Warnf("welcome message to %s: %v", channelID, err)
	}
}

func (b *Bot) onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	channelID, ok := b.memberChannel(farewellChannelKind)
	if !ok {
		return
	}
	msg := fmt.Sprintf("<@%s> deixou o servidor. Sentiremos sua falta. 😢", m.User.ID)
	if _, err := s.ChannelMessageSend(channelID, msg); err != nil {
		logger.Warnf("farewell message to %s: %v", channelID, err)
	}
}

func (b *Bot) memberChannel(kind string) (string, bool) {
	channelID, ok, err := b.store.Channel(context.Background(), kind)
	if err != nil {
		logger.Warnf("channel mapping %q: %v", kind, err)
		return "", false
	}
	if !ok || channelID == "" {
		return "", false
	}
	return channelID, true
}
