package music

import (
	"mordomo/internal/command"
	"mordomo/internal/lyrics"
)

type LyricsCommand struct{}

func (c *LyricsCommand) Name() string        { return "lyrics" }
func (c *LyricsCommand) Description() string { return "Busca a letra da música que está tocando." }
func (c *LyricsCommand) Aliases() []string   { return []string{"letra", "letras"} }
func (c *LyricsCommand) Category() string    { return "Música" }
func (c *LyricsCommand) RequireDJ() bool     { return false }
func (c *LyricsCommand) RequireStaff() bool  { return false }
func (c *LyricsCommand) RequireOwner() bool  { return false }

func (c *LyricsCommand) Run(ctx *command.MessageContext) error {
	query := ctx.ArgText
	if query == "" {
		session, ok := activeSession(ctx)
		if !ok {
			return nil
		}
		current := session.Current()
		if current == nil {
			command.ReplyError(ctx, "Nenhuma música está tocando. Informe o nome: `lyrics <música>`.")
			return nil
		}
		query = current.Title
	}

	command.ReplyText(ctx, "🔍 Procurando letra", "Buscando a letra de **"+query+"**...")

	result, err := ctx.Lyrics.Get(query)
	if err != nil {
		command.ReplyError(ctx, "Não encontrei a letra dessa música.")
		return nil
	}

	chunks := lyrics.SplitChunks(result.Text, lyrics.EmbedChunkLimit)
	for i, chunk := range chunks {
		embed := command.NewEmbed(ctx)
		if i == 0 {
			embed.Title = "🎤 " + result.Title
			if result.Artist != "" {
				embed.Title += " - " + result.Artist
			}
			embed.URL = result.URL
		}
		embed.Description = chunk
		command.Reply(ctx, embed)
	}
	return nil
}
