package music

import (
	"mordomo/internal/command"
)

type JoinCommand struct{}

func (c *JoinCommand) Name() string        { return "join" }
func (c *JoinCommand) Description() string { return "Entra no seu canal de voz." }
func (c *JoinCommand) Aliases() []string   { return []string{"entrar"} }
func (c *JoinCommand) Category() string    { return "Música" }
func (c *JoinCommand) RequireDJ() bool     { return false }
func (c *JoinCommand) RequireStaff() bool  { return false }
func (c *JoinCommand) RequireOwner() bool  { return false }

func (c *JoinCommand) Run(ctx *command.MessageContext) error {
	channelID, ok := requireVoice(ctx)
	if !ok {
		return nil
	}
	session := ctx.Players.GetOrCreate(ctx.Event.GuildID)
	session.SetTextChannel(ctx.Event.ChannelID)
	if err := session.Join(channelID); err != nil {
		command.ReplyError(ctx, "Não foi possível conectar ao canal de voz.")
		return err
	}
	command.ReplyText(ctx, "👋 Conectado", "Estou no seu canal de voz.")
	return nil
}

type LeaveCommand struct{}

func (c *LeaveCommand) Name() string        { return "leave" }
func (c *LeaveCommand) Description() string { return "Sai do canal de voz e descarta a fila." }
func (c *LeaveCommand) Aliases() []string   { return []string{"sair"} }
func (c *LeaveCommand) Category() string    { return "Música" }
func (c *LeaveCommand) RequireDJ() bool     { return true }
func (c *LeaveCommand) RequireStaff() bool  { return false }
func (c *LeaveCommand) RequireOwner() bool  { return false }

func (c *LeaveCommand) Run(ctx *command.MessageContext) error {
	session := ctx.Players.Get(ctx.Event.GuildID)
	if session == nil || !session.Connected() {
		command.ReplyError(ctx, "Não estou em nenhum canal de voz.")
		return nil
	}
	session.Disconnect()
	command.ReplyText(ctx, "👋 Até mais", "Saí do canal de voz.")
	return nil
}
