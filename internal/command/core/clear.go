package core

import (
	"fmt"
	"strconv"
	"strings"

	"mordomo/internal/command"
)

const clearMaxAll = 1000

type ClearCommand struct{}

func (c *ClearCommand) Name() string        { return "clear" }
func (c *ClearCommand) Description() string { return "Apaga mensagens do canal: um número ou `tudo`." }
func (c *ClearCommand) Aliases() []string   { return []string{"limpar"} }
func (c *ClearCommand) Category() string    { return "Moderação" }
func (c *ClearCommand) RequireDJ() bool     { return false }
func (c *ClearCommand) RequireStaff() bool  { return true }
func (c *ClearCommand) RequireOwner() bool  { return false }

func (c *ClearCommand) Run(ctx *command.MessageContext) error {
	if len(ctx.Args) == 0 {
		command.ReplyError(ctx, "Uso: `clear <quantidade>` ou `clear tudo`.")
		return nil
	}

	limit := 0
	if strings.EqualFold(ctx.Args[0], "tudo") {
		limit = clearMaxAll
	} else {
		n, err := strconv.Atoi(ctx.Args[0])
		if err != nil || n < 1 {
			command.ReplyError(ctx, "Informe um número válido de mensagens.")
			return nil
		}
		if n > clearMaxAll {
			n = clearMaxAll
		}
		limit = n
	}

	deleted := 0
	before := ctx.Event.ID
	for deleted < limit {
		batch := limit - deleted
		if batch > 100 {
			batch = 100 // bulk delete cap per request
		}
		msgs, err := ctx.Session.ChannelMessages(ctx.Event.ChannelID, batch, before, "", "")
		if err != nil {
			return fmt.Errorf("list messages: %w", err)
		}
		if len(msgs) == 0 {
			break
		}

		ids := make([]string, 0, len(msgs))
		for _, m := range msgs {
			ids = append(ids, m.ID)
		}
		before = msgs[len(msgs)-1].ID

		if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Event.ChannelID, ids); err != nil {
			return fmt.Errorf("bulk delete: %w", err)
		}
		deleted += len(ids)
	}

	command.ReplyText(ctx, "🧹 Limpeza concluída", fmt.Sprintf("%d mensagens apagadas.", deleted))
	return nil
}
