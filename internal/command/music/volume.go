package music

import (
	"context"
	"fmt"
	"strconv"

	"mordomo/internal/command"
)

type VolumeCommand struct{}

func (c *VolumeCommand) Name() string        { return "volume" }
func (c *VolumeCommand) Description() string { return "Mostra ou ajusta o seu volume (0 a 100)." }
func (c *VolumeCommand) Aliases() []string   { return []string{"v", "vol"} }
func (c *VolumeCommand) Category() string    { return "Música" }
func (c *VolumeCommand) RequireDJ() bool     { return false }
func (c *VolumeCommand) RequireStaff() bool  { return false }
func (c *VolumeCommand) RequireOwner() bool  { return false }

func (c *VolumeCommand) Run(ctx *command.MessageContext) error {
	bg := context.Background()
	userID := ctx.Event.Author.ID

	if len(ctx.Args) == 0 {
		current := ctx.Storage.UserVolume(bg, userID)
		command.ReplyText(ctx, "🔊 Volume", fmt.Sprintf("Seu volume está em **%d%%**.", current))
		return nil
	}

	value, err := strconv.Atoi(ctx.Args[0])
	if err != nil || value < 0 || value > 100 {
		command.ReplyError(ctx, "Informe um volume entre **0** e **100**.")
		return nil
	}

	if err := ctx.Storage.SetUserVolume(bg, userID, value); err != nil {
		command.ReplyError(ctx, "Não consegui salvar o seu volume.")
		return err
	}

	// an active session picks the change up immediately
	if session := ctx.Players.Get(ctx.Event.GuildID); session != nil {
		_ = session.SetVolume(float64(value) / 100)
	}

	command.ReplyText(ctx, "🔊 Volume ajustado", fmt.Sprintf("Volume definido para **%d%%**.", value))
	return nil
}
