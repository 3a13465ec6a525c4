package core

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/command"
	"mordomo/internal/imaging"
)

const (
	avatarCardSize   = 512
	avatarCardRadius = 64
)

type AvatarCommand struct{}

func (c *AvatarCommand) Name() string        { return "avatar" }
func (c *AvatarCommand) Description() string { return "Mostra o avatar de um usuário em um cartão." }
func (c *AvatarCommand) Aliases() []string   { return nil }
func (c *AvatarCommand) Category() string    { return "Geral" }
func (c *AvatarCommand) RequireDJ() bool     { return false }
func (c *AvatarCommand) RequireStaff() bool  { return false }
func (c *AvatarCommand) RequireOwner() bool  { return false }

func (c *AvatarCommand) Run(ctx *command.MessageContext) error {
	target := ctx.Event.Author
	if len(ctx.Event.Mentions) > 0 {
		target = ctx.Event.Mentions[0]
	}

	img, err := imaging.Fetch(context.Background(), target.AvatarURL("512"))
	if err != nil {
		command.ReplyError(ctx, "Não consegui baixar o avatar desse usuário.")
		return err
	}
	card, err := imaging.RoundedCard(img, avatarCardSize, avatarCardRadius)
	if err != nil {
		command.ReplyError(ctx, "Não consegui montar o cartão do avatar.")
		return err
	}

	embed := command.NewEmbed(ctx)
	embed.Title = "🖼️ Avatar de " + target.Username
	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://avatar.png"}

	_, err = ctx.Session.ChannelMessageSendComplex(ctx.Event.ChannelID, &discordgo.MessageSend{
		Embed: embed,
		Files: []*discordgo.File{{
			Name:        "avatar.png",
			ContentType: "image/png",
			Reader:      bytes.NewReader(card),
		}},
	})
	if err != nil {
		return fmt.Errorf("send avatar card: %w", err)
	}
	return nil
}
