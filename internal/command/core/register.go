package core

import (
	"time"

	"mordomo/internal/command"
)

func init() {
	for _, cmd := range []command.Command{
		&HelpCommand{},
		&PrefixCommand{},
		&EmbedColorCommand{},
		&SetChannelCommand{},
		&StatusCommand{},
		&SayCommand{},
		&AvatarCommand{},
		&ClearCommand{},
	} {
		command.Register(command.ApplyMiddlewares(cmd,
			command.WithCooldown(3*time.Second),
			command.WithRoleGate(),
			command.WithGuildOnly(),
			command.WithLogging(),
			command.WithRecovery(),
		))
	}
}
