package command

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/logger"
)

// NewEmbed builds an embed with the configured color and the clan motto
// footer, matching the look of every other bot reply.
func NewEmbed(ctx *MessageContext) *discordgo.MessageEmbed {
	c := context.Background()
	embed := &discordgo.MessageEmbed{
		Color: ctx.Storage.EmbedColor(c),
	}
	clan := ctx.Storage.ClanName(c)
	motto := ctx.Storage.Motto(c)
	switch {
	case clan != "" && motto != "":
		embed.Footer = &discordgo.MessageEmbedFooter{Text: clan + " • " + motto}
	case clan != "":
		embed.Footer = &discordgo.MessageEmbedFooter{Text: clan}
	case motto != "":
		embed.Footer = &discordgo.MessageEmbedFooter{Text: motto}
	}
	return embed
}

// Reply sends an embed to the invoking channel.
func Reply(ctx *MessageContext, embed *discordgo.MessageEmbed) {
	if _, err := ctx.Session.ChannelMessageSendEmbed(ctx.Event.ChannelID, embed); err != nil {
		logger.Warnf("send embed to %s: %v", ctx.Event.ChannelID, err)
	}
}

// ReplyText sends a titled embed with a plain description.
func ReplyText(ctx *MessageContext, title, description string) {
	embed := NewEmbed(ctx)
	embed.Title = title
	embed.Description = description
	Reply(ctx, embed)
}

// ReplyError sends the standard red error embed.
func ReplyError(ctx *MessageContext, description string) {
	embed := NewEmbed(ctx)
	embed.Title = "❌ Erro"
	embed.Description = description
	embed.Color = 0xE74C3C
	Reply(ctx, embed)
}
