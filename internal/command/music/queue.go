package music

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/command"
	"mordomo/internal/imaging"
	"mordomo/internal/music"
)

const queuePageSize = 15

type QueueCommand struct{}

func (c *QueueCommand) Name() string        { return "queue" }
func (c *QueueCommand) Description() string { return "Mostra a fila de reprodução." }
func (c *QueueCommand) Aliases() []string   { return []string{"q", "fila", "lista"} }
func (c *QueueCommand) Category() string    { return "Música" }
func (c *QueueCommand) RequireDJ() bool     { return false }
func (c *QueueCommand) RequireStaff() bool  { return false }
func (c *QueueCommand) RequireOwner() bool  { return false }

func (c *QueueCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}
	current := session.Current()
	pending := session.Queue()
	if current == nil && len(pending) == 0 {
		command.ReplyText(ctx, "🎶 Fila", "A fila está vazia.")
		return nil
	}

	var b strings.Builder
	if current != nil {
		fmt.Fprintf(&b, "**Tocando agora:** %s\n\n", trackLine(current))
	}
	for i, t := range pending {
		if i == queuePageSize {
			fmt.Fprintf(&b, "… e mais %d músicas\n", len(pending)-queuePageSize)
			break
		}
		fmt.Fprintf(&b, "`%2d.` %s\n", i+1, trackLine(t))
	}
	if total := session.TotalQueueDuration(); total > 0 {
		fmt.Fprintf(&b, "\n**Duração total da fila:** `%s`", formatDuration(total))
	}

	embed := command.NewEmbed(ctx)
	embed.Title = "🎶 Fila de reprodução"
	embed.Description = b.String()
	command.Reply(ctx, embed)
	return nil
}

type NowCommand struct{}

func (c *NowCommand) Name() string        { return "now" }
func (c *NowCommand) Description() string { return "Mostra a música que está tocando." }
func (c *NowCommand) Aliases() []string   { return []string{"np", "tocando"} }
func (c *NowCommand) Category() string    { return "Música" }
func (c *NowCommand) RequireDJ() bool     { return false }
func (c *NowCommand) RequireStaff() bool  { return false }
func (c *NowCommand) RequireOwner() bool  { return false }

func (c *NowCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}
	current := session.Current()
	if current == nil {
		command.ReplyError(ctx, "Nenhuma música está tocando no momento.")
		return nil
	}

	embed := command.NewEmbed(ctx)
	embed.Title = "🎧 Tocando agora"
	embed.Description = trackLine(current)
	if current.Uploader != "" {
		embed.Description += "\npor " + current.Uploader
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Volume", Value: fmt.Sprintf("%.0f%%", session.Volume()*100), Inline: true},
		{Name: "Repetição", Value: loopLabel(session.LoopModeValue()), Inline: true},
	}
	if current.RequestedBy != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Pedida por", Value: fmt.Sprintf("<@%s>", current.RequestedBy), Inline: true,
		})
	}
	if current.Thumbnail == "" {
		command.Reply(ctx, embed)
		return nil
	}

	// thumbnail as a rounded card; plain URL when the fetch fails
	if card := thumbnailCard(current.Thumbnail); card != nil {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: "attachment://track.png"}
		_, err := ctx.Session.ChannelMessageSendComplex(ctx.Event.ChannelID, &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{embed},
			Files:  []*discordgo.File{{Name: "track.png", Reader: bytes.NewReader(card)}},
		})
		return err
	}
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: current.Thumbnail}
	command.Reply(ctx, embed)
	return nil
}

func thumbnailCard(url string) []byte {
	img, err := imaging.Fetch(context.Background(), url)
	if err != nil {
		return nil
	}
	card, err := imaging.RoundedCard(img, 256, 32)
	if err != nil {
		return nil
	}
	return card
}

func loopLabel(mode music.LoopMode) string {
	switch mode {
	case music.LoopTrack:
		return "música atual"
	case music.LoopAll:
		return "fila inteira"
	default:
		return "desligada"
	}
}
