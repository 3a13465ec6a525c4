package music

import (
	"errors"

	"mordomo/internal/command"
	"mordomo/internal/music"
)

type SkipCommand struct{}

func (c *SkipCommand) Name() string        { return "skip" }
func (c *SkipCommand) Description() string { return "Pula para a próxima música da fila." }
func (c *SkipCommand) Aliases() []string   { return []string{"s", "pular"} }
func (c *SkipCommand) Category() string    { return "Música" }
func (c *SkipCommand) RequireDJ() bool     { return true }
func (c *SkipCommand) RequireStaff() bool  { return false }
func (c *SkipCommand) RequireOwner() bool  { return false }

func (c *SkipCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}
	if err := session.Skip(); err != nil {
		command.ReplyError(ctx, "Nenhuma música está tocando no momento.")
		return nil
	}
	command.ReplyText(ctx, "⏭️ Pulada", "Tocando a próxima da fila.")
	return nil
}

type PreviousCommand struct{}

func (c *PreviousCommand) Name() string        { return "previous" }
func (c *PreviousCommand) Description() string { return "Volta para a música anterior." }
func (c *PreviousCommand) Aliases() []string   { return []string{"voltar", "back"} }
func (c *PreviousCommand) Category() string    { return "Música" }
func (c *PreviousCommand) RequireDJ() bool     { return true }
func (c *PreviousCommand) RequireStaff() bool  { return false }
func (c *PreviousCommand) RequireOwner() bool  { return false }

func (c *PreviousCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}
	prev, err := session.Previous()
	if err != nil {
		if errors.Is(err, music.ErrNoHistory) {
			command.ReplyError(ctx, "Não há música anterior no histórico.")
			return nil
		}
		return err
	}
	// abort the current stream so the loop replays the restored track
	if session.StateValue() != music.StateIdle {
		_ = session.Skip()
	} else if channelID, ok := requireVoice(ctx); ok {
		session.Play(channelID)
	}
	command.ReplyText(ctx, "⏮️ Voltando", trackLine(prev))
	return nil
}

type PauseCommand struct{}

func (c *PauseCommand) Name() string        { return "pause" }
func (c *PauseCommand) Description() string { return "Pausa a reprodução atual." }
func (c *PauseCommand) Aliases() []string   { return nil }
func (c *PauseCommand) Category() string    { return "Música" }
func (c *PauseCommand) RequireDJ() bool     { return true }
func (c *PauseCommand) RequireStaff() bool  { return false }
func (c *PauseCommand) RequireOwner() bool  { return false }

func (c *PauseCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}
	if err := session.Pause(); err != nil {
		command.ReplyError(ctx, "Nenhuma música está tocando no momento.")
		return nil
	}
	command.ReplyText(ctx, "⏸️ Pausada", "Use `resume` para continuar.")
	return nil
}

type ResumeCommand struct{}

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Description() string { return "Continua uma reprodução pausada." }
func (c *ResumeCommand) Aliases() []string   { return []string{"continuar"} }
func (c *ResumeCommand) Category() string    { return "Música" }
func (c *ResumeCommand) RequireDJ() bool     { return true }
func (c *ResumeCommand) RequireStaff() bool  { return false }
func (c *ResumeCommand) RequireOwner() bool  { return false }

func (c *ResumeCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}
	if err := session.Resume(); err != nil {
		command.ReplyError(ctx, "Não há reprodução pausada para continuar.")
		return nil
	}
	command.ReplyText(ctx, "▶️ Continuando", "Boa audição!")
	return nil
}

type StopCommand struct{}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Description() string { return "Para a reprodução e limpa a fila." }
func (c *StopCommand) Aliases() []string   { return []string{"parar"} }
func (c *StopCommand) Category() string    { return "Música" }
func (c *StopCommand) RequireDJ() bool     { return true }
func (c *StopCommand) RequireStaff() bool  { return false }
func (c *StopCommand) RequireOwner() bool  { return false }

func (c *StopCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}
	if err := session.Stop(); err != nil {
		command.ReplyError(ctx, "Nenhuma música está tocando no momento.")
		return nil
	}
	command.ReplyText(ctx, "⏹️ Parada", "Fila limpa. Continuo no canal de voz por enquanto.")
	return nil
}
