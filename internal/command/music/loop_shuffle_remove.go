package music

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mordomo/internal/command"
	"mordomo/internal/music"
)

type LoopCommand struct{}

func (c *LoopCommand) Name() string        { return "loop" }
func (c *LoopCommand) Description() string { return "Alterna o modo de repetição: off, musica ou fila." }
func (c *LoopCommand) Aliases() []string   { return []string{"repetir", "repeat"} }
func (c *LoopCommand) Category() string    { return "Música" }
func (c *LoopCommand) RequireDJ() bool     { return true }
func (c *LoopCommand) RequireStaff() bool  { return false }
func (c *LoopCommand) RequireOwner() bool  { return false }

func (c *LoopCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}

	var mode music.LoopMode
	arg := ""
	if len(ctx.Args) > 0 {
		arg = strings.ToLower(ctx.Args[0])
	}
	switch arg {
	case "", "toggle":
		// cycle off -> track -> all -> off
		switch session.LoopModeValue() {
		case music.LoopNone:
			mode = music.LoopTrack
		case music.LoopTrack:
			mode = music.LoopAll
		default:
			mode = music.LoopNone
		}
	case "off", "desligar", "nao", "não":
		mode = music.LoopNone
	case "musica", "música", "track", "atual":
		mode = music.LoopTrack
	case "fila", "all", "tudo", "queue":
		mode = music.LoopAll
	default:
		command.ReplyError(ctx, "Modo inválido. Use `off`, `musica` ou `fila`.")
		return nil
	}

	session.SetLoopMode(mode)
	command.ReplyText(ctx, "🔁 Repetição", "Modo de repetição: **"+loopLabel(mode)+"**.")
	return nil
}

type ShuffleCommand struct{}

func (c *ShuffleCommand) Name() string        { return "shuffle" }
func (c *ShuffleCommand) Description() string { return "Embaralha a fila de reprodução." }
func (c *ShuffleCommand) Aliases() []string   { return []string{"embaralhar"} }
func (c *ShuffleCommand) Category() string    { return "Música" }
func (c *ShuffleCommand) RequireDJ() bool     { return true }
func (c *ShuffleCommand) RequireStaff() bool  { return false }
func (c *ShuffleCommand) RequireOwner() bool  { return false }

func (c *ShuffleCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}
	if len(session.Queue()) < 2 {
		command.ReplyError(ctx, "A fila precisa de pelo menos duas músicas para embaralhar.")
		return nil
	}
	session.Shuffle()
	command.ReplyText(ctx, "🔀 Embaralhada", "A ordem da fila foi sorteada.")
	return nil
}

type RemoveCommand struct{}

func (c *RemoveCommand) Name() string        { return "remove" }
func (c *RemoveCommand) Description() string { return "Remove uma música da fila pela posição." }
func (c *RemoveCommand) Aliases() []string   { return []string{"remover"} }
func (c *RemoveCommand) Category() string    { return "Música" }
func (c *RemoveCommand) RequireDJ() bool     { return true }
func (c *RemoveCommand) RequireStaff() bool  { return false }
func (c *RemoveCommand) RequireOwner() bool  { return false }

func (c *RemoveCommand) Run(ctx *command.MessageContext) error {
	session, ok := activeSession(ctx)
	if !ok {
		return nil
	}
	if len(ctx.Args) == 0 {
		command.ReplyError(ctx, "Informe a posição da música na fila, como mostrada no comando `queue`.")
		return nil
	}
	pos, err := strconv.Atoi(ctx.Args[0])
	if err != nil {
		command.ReplyError(ctx, "Posição inválida.")
		return nil
	}
	removed, err := session.RemoveAt(pos - 1)
	if err != nil {
		if errors.Is(err, music.ErrBadIndex) {
			command.ReplyError(ctx, fmt.Sprintf("Não há música na posição **%d**.", pos))
			return nil
		}
		return err
	}
	command.ReplyText(ctx, "🗑️ Removida", trackLine(removed))
	return nil
}
