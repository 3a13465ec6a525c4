package core

import (
	"mordomo/internal/command"
	"mordomo/internal/logger"
)

type SayCommand struct{}

func (c *SayCommand) Name() string        { return "say" }
func (c *SayCommand) Description() string { return "Faz o bot repetir a sua mensagem." }
func (c *SayCommand) Aliases() []string   { return []string{"falar"} }
func (c *SayCommand) Category() string    { return "Geral" }
func (c *SayCommand) RequireDJ() bool     { return false }
func (c *SayCommand) RequireStaff() bool  { return true }
func (c *SayCommand) RequireOwner() bool  { return false }

func (c *SayCommand) Run(ctx *command.MessageContext) error {
	if ctx.ArgText == "" {
		command.ReplyError(ctx, "Diga o que eu devo falar: `say <mensagem>`.")
		return nil
	}
	// the invoking message disappears so only the bot line remains
	if err := ctx.Session.ChannelMessageDelete(ctx.Event.ChannelID, ctx.Event.ID); err != nil {
		logger.Debugf("delete say invocation: %v", err)
	}
	_, err := ctx.Session.ChannelMessageSend(ctx.Event.ChannelID, ctx.ArgText)
	return err
}
