package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/command"
	"mordomo/internal/logger"
)

// dispatch matches the configured prefix, tokenizes and runs the command.
func (b *Bot) dispatch(s *discordgo.Session, m *discordgo.MessageCreate) {
	prefix := b.store.Prefix(context.Background())
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, prefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])

	cmd, ok := command.Get(name)
	if !ok {
		return
	}

	argText := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(m.Content, prefix), fields[0]))

	ctx := &command.MessageContext{
		Session:  s,
		Event:    m,
		Args:     fields[1:],
		ArgText:  argText,
		Storage:  b.store,
		Players:  b.players,
		Resolver: b.resolver,
		Lyrics:   b.lyrics,
		Prompt:   b.prompts,

		PromptTimeout: b.cfg.PromptTimeout,
	}

	if err := cmd.Run(ctx); err != nil {
		logger.Errorf("command %s: %v", cmd.Name(), err)
		command.ReplyError(ctx, "Algo deu errado ao executar esse comando. Tente novamente.")
	}
}
