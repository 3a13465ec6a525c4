package core

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/command"
	"mordomo/internal/logger"
	"mordomo/internal/storage"
)

var statusTypes = map[string]string{
	"1": "playing",
	"2": "streaming",
	"3": "listening",
	"4": "watching",
}

type StatusCommand struct{}

func (c *StatusCommand) Name() string        { return "status" }
func (c *StatusCommand) Description() string { return "Altera o status de presença do bot." }
func (c *StatusCommand) Aliases() []string   { return nil }
func (c *StatusCommand) Category() string    { return "Configuração" }
func (c *StatusCommand) RequireDJ() bool     { return false }
func (c *StatusCommand) RequireStaff() bool  { return false }
func (c *StatusCommand) RequireOwner() bool  { return true }

func (c *StatusCommand) Run(ctx *command.MessageContext) error {
	command.ReplyText(ctx, "Escolha o Tipo de Status",
		"1. Jogando\n2. Transmitindo\n3. Ouvindo\n4. Assistindo")
	msg, ok := ctx.Prompt.Await(ctx.Event.ChannelID, ctx.Event.Author.ID, ctx.PromptWindow())
	if !ok {
		command.ReplyError(ctx, "Tempo esgotado. Tente novamente.")
		return nil
	}
	statusType, valid := statusTypes[strings.TrimSpace(msg.Content)]
	if !valid {
		command.ReplyError(ctx, "Escolha inválida. Use um número de 1 a 4.")
		return nil
	}

	command.ReplyText(ctx, "Mensagem do Status", "Digite o texto do status:")
	msg, ok = ctx.Prompt.Await(ctx.Event.ChannelID, ctx.Event.Author.ID, ctx.PromptWindow())
	if !ok {
		command.ReplyError(ctx, "Tempo esgotado. Tente novamente.")
		return nil
	}
	message := strings.TrimSpace(msg.Content)
	if message == "" {
		command.ReplyError(ctx, "A mensagem do status não pode ser vazia.")
		return nil
	}

	bg := context.Background()
	if err := ctx.Storage.SetStatus(bg, statusType, message, "online"); err != nil {
		command.ReplyError(ctx, "Não consegui salvar o status.")
		return err
	}
	ApplyPresence(ctx.Session, []storage.StatusRow{{Type: statusType, Message: message, Status: "online"}})

	command.ReplyText(ctx, "✅ Status atualizado", "O novo status já está ativo e será reaplicado a cada reinício.")
	return nil
}

// ApplyPresence pushes the first stored presence row to the gateway. Also
// called from the ready handler at startup.
func ApplyPresence(s *discordgo.Session, rows []storage.StatusRow) {
	if len(rows) == 0 {
		return
	}
	row := rows[0]

	var activityType discordgo.ActivityType
	switch row.Type {
	case "streaming":
		activityType = discordgo.ActivityTypeStreaming
	case "listening":
		activityType = discordgo.ActivityTypeListening
	case "watching":
		activityType = discordgo.ActivityTypeWatching
	default:
		activityType = discordgo.ActivityTypeGame
	}

	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: row.Status,
		Activities: []*discordgo.Activity{{
			Name: row.Message,
			Type: activityType,
		}},
	})
	if err != nil {
		logger.Warnf("update presence: %v", err)
	}
}
