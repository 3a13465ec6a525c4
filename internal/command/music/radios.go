package music

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/command"
	"mordomo/internal/music/resolver"
)

type RadiosCommand struct{}

func (c *RadiosCommand) Name() string        { return "radios" }
func (c *RadiosCommand) Description() string { return "Mostra o menu de rádios ao vivo." }
func (c *RadiosCommand) Aliases() []string   { return nil }
func (c *RadiosCommand) Category() string    { return "Música" }
func (c *RadiosCommand) RequireDJ() bool     { return false }
func (c *RadiosCommand) RequireStaff() bool  { return false }
func (c *RadiosCommand) RequireOwner() bool  { return false }

func (c *RadiosCommand) Run(ctx *command.MessageContext) error {
	var b strings.Builder
	for i, st := range resolver.Stations {
		fmt.Fprintf(&b, "`%2d.` %s\n", i+1, st.Name)
	}
	embed := command.NewEmbed(ctx)
	embed.Title = "📻 Rádios"
	embed.Description = b.String()
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "Digite o número da rádio desejada."}
	command.Reply(ctx, embed)

	msg, ok := ctx.Prompt.Await(ctx.Event.ChannelID, ctx.Event.Author.ID, ctx.PromptWindow())
	if !ok {
		// timed out, menu simply expires
		return nil
	}
	choice, err := strconv.Atoi(strings.TrimSpace(msg.Content))
	if err != nil || choice < 1 || choice > len(resolver.Stations) {
		command.ReplyError(ctx, "Opção inválida. Escolha um número do menu.")
		return nil
	}

	channelID, okVoice := requireVoice(ctx)
	if !okVoice {
		return nil
	}

	station := resolver.Stations[choice-1]
	track := resolver.StationTrack(station)
	track.RequestedBy = ctx.Event.Author.ID

	session := ctx.Players.GetOrCreate(ctx.Event.GuildID)
	session.SetTextChannel(ctx.Event.ChannelID)
	session.Enqueue(track)
	session.Play(channelID)

	reply := command.NewEmbed(ctx)
	reply.Title = "📻 Sintonizando"
	reply.Description = fmt.Sprintf("**%s**\nTransmissão ao vivo, use `stop` para parar.", station.Name)
	if station.Banner != "" {
		reply.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: station.Banner}
	}
	command.Reply(ctx, reply)
	return nil
}
