package core

import (
	"context"
	"fmt"
	"strings"

	"mordomo/internal/command"
	"mordomo/internal/storage"
)

type PrefixCommand struct{}

func (c *PrefixCommand) Name() string        { return "prefix" }
func (c *PrefixCommand) Description() string { return "Mostra ou altera o prefixo dos comandos." }
func (c *PrefixCommand) Aliases() []string   { return []string{"prefixo"} }
func (c *PrefixCommand) Category() string    { return "Configuração" }
func (c *PrefixCommand) RequireDJ() bool     { return false }
func (c *PrefixCommand) RequireStaff() bool  { return false }
func (c *PrefixCommand) RequireOwner() bool  { return true }

func (c *PrefixCommand) Run(ctx *command.MessageContext) error {
	bg := context.Background()
	if len(ctx.Args) == 0 {
		command.ReplyText(ctx, "Prefixo",
			fmt.Sprintf("O prefixo atual é `%s`.", ctx.Storage.Prefix(bg)))
		return nil
	}
	prefix := ctx.Args[0]
	if len(prefix) > 3 {
		command.ReplyError(ctx, "O prefixo pode ter no máximo 3 caracteres.")
		return nil
	}
	if err := ctx.Storage.SetConfig(bg, storage.KeyPrefix, prefix); err != nil {
		command.ReplyError(ctx, "Não consegui salvar o novo prefixo.")
		return err
	}
	command.ReplyText(ctx, "Prefixo alterado", fmt.Sprintf("Novo prefixo: `%s`", prefix))
	return nil
}

type EmbedColorCommand struct{}

func (c *EmbedColorCommand) Name() string        { return "embedcolor" }
func (c *EmbedColorCommand) Description() string { return "Altera a cor dos embeds do bot." }
func (c *EmbedColorCommand) Aliases() []string   { return []string{"cor", "mudarcor"} }
func (c *EmbedColorCommand) Category() string    { return "Configuração" }
func (c *EmbedColorCommand) RequireDJ() bool     { return false }
func (c *EmbedColorCommand) RequireStaff() bool  { return true }
func (c *EmbedColorCommand) RequireOwner() bool  { return false }

func (c *EmbedColorCommand) Run(ctx *command.MessageContext) error {
	if len(ctx.Args) == 0 {
		command.ReplyError(ctx, "Informe a cor em hexadecimal, por exemplo `#FF8000`.")
		return nil
	}
	value := strings.TrimSpace(ctx.Args[0])
	color, err := storage.ParseHexColor(value)
	if err != nil {
		command.ReplyError(ctx, "Cor inválida. Use o formato hexadecimal, por exemplo `#FF8000`.")
		return nil
	}
	bg := context.Background()
	if err := ctx.Storage.SetConfig(bg, storage.KeyEmbedColor, value); err != nil {
		command.ReplyError(ctx, "Não consegui salvar a nova cor.")
		return err
	}
	embed := command.NewEmbed(ctx)
	embed.Title = "🎨 Cor alterada"
	embed.Description = "Os próximos embeds usarão esta cor."
	embed.Color = color
	command.Reply(ctx, embed)
	return nil
}

type SetChannelCommand struct{}

func (c *SetChannelCommand) Name() string        { return "setchannel" }
func (c *SetChannelCommand) Description() string { return "Associa um canal a uma função do bot." }
func (c *SetChannelCommand) Aliases() []string   { return []string{"canal"} }
func (c *SetChannelCommand) Category() string    { return "Configuração" }
func (c *SetChannelCommand) RequireDJ() bool     { return false }
func (c *SetChannelCommand) RequireStaff() bool  { return true }
func (c *SetChannelCommand) RequireOwner() bool  { return false }

func (c *SetChannelCommand) Run(ctx *command.MessageContext) error {
	bg := context.Background()
	if len(ctx.Args) < 1 {
		mappings, err := ctx.Storage.Channels(bg)
		if err != nil {
			command.ReplyError(ctx, "Não consegui listar as associações de canal.")
			return err
		}
		if len(mappings) == 0 {
			command.ReplyText(ctx, "📌 Canais",
				"Nenhuma função de canal configurada.\nUso: `setchannel <tipo> [#canal]`. Sem menção, uso o canal atual.")
			return nil
		}
		var b strings.Builder
		for _, m := range mappings {
			fmt.Fprintf(&b, "**%s**: <#%d>\n", m.Kind, m.ChannelID)
		}
		command.ReplyText(ctx, "📌 Canais configurados", b.String())
		return nil
	}
	kind := strings.ToLower(ctx.Args[0])

	channelID := ctx.Event.ChannelID
	if len(ctx.Event.Mentions) == 0 && len(ctx.Args) > 1 {
		// raw channel mention comes through as <#id>
		raw := strings.Trim(ctx.Args[1], "<#>")
		if raw != "" {
			channelID = raw
		}
	}

	if err := ctx.Storage.SetChannel(bg, kind, channelID); err != nil {
		command.ReplyError(ctx, "Não consegui salvar a associação de canal.")
		return err
	}
	command.ReplyText(ctx, "📌 Canal definido",
		fmt.Sprintf("Função **%s** associada a <#%s>.", kind, channelID))
	return nil
}
