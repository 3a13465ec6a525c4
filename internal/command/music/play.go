package music

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/command"
)

type PlayCommand struct{}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Description() string { return "Adiciona uma música ou playlist à fila." }
func (c *PlayCommand) Aliases() []string   { return []string{"p", "tocar"} }
func (c *PlayCommand) Category() string    { return "Música" }
func (c *PlayCommand) RequireDJ() bool     { return false }
func (c *PlayCommand) RequireStaff() bool  { return false }
func (c *PlayCommand) RequireOwner() bool  { return false }

func (c *PlayCommand) Run(ctx *command.MessageContext) error {
	bg := context.Background()

	if ctx.ArgText == "" {
		prefix := ctx.Storage.Prefix(bg)
		command.ReplyText(ctx, "Uso do Comando play",
			fmt.Sprintf("Forneça o **link** da música, o **nome da música** ou o **link de uma playlist**.\n\n"+
				"**Exemplos:**\n"+
				"`%[1]splay https://youtube.com/watch?v=xxxxxx`\n"+
				"`%[1]splay Bohemian Rhapsody`\n"+
				"`%[1]splay https://youtube.com/playlist?list=xxxxxx`", prefix))
		return nil
	}

	channelID, ok := requireVoice(ctx)
	if !ok {
		return nil
	}

	tracks, err := ctx.Resolver.Resolve(bg, ctx.ArgText)
	if err != nil {
		command.ReplyError(ctx, "Não encontrei nada para tocar com essa busca.")
		return fmt.Errorf("resolve %q: %w", ctx.ArgText, err)
	}

	session := ctx.Players.GetOrCreate(ctx.Event.GuildID)
	session.SetTextChannel(ctx.Event.ChannelID)

	for _, t := range tracks {
		t.RequestedBy = ctx.Event.Author.ID
		session.Enqueue(t)
	}

	// the requester's saved volume applies to the whole session
	vol := ctx.Storage.UserVolume(bg, ctx.Event.Author.ID)
	_ = session.SetVolume(float64(vol) / 100)

	session.Play(channelID)

	if len(tracks) == 1 {
		t := tracks[0]
		embed := command.NewEmbed(ctx)
		embed.Title = "🎵 Adicionada à fila"
		embed.Description = trackLine(t)
		if t.Uploader != "" {
			embed.Description += "\npor " + t.Uploader
		}
		if t.Thumbnail != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: t.Thumbnail}
		}
		command.Reply(ctx, embed)
	} else {
		command.ReplyText(ctx, "🎵 Playlist adicionada",
			fmt.Sprintf("**%d** músicas entraram na fila.", len(tracks)))
	}
	return nil
}
