package music

import (
	"time"

	"mordomo/internal/command"
)

func init() {
	for _, cmd := range []command.Command{
		&PlayCommand{},
		&SkipCommand{},
		&PreviousCommand{},
		&PauseCommand{},
		&ResumeCommand{},
		&StopCommand{},
		&JoinCommand{},
		&LeaveCommand{},
		&QueueCommand{},
		&NowCommand{},
		&ShuffleCommand{},
		&LoopCommand{},
		&VolumeCommand{},
		&RemoveCommand{},
		&PlaylistCommand{},
		&RadiosCommand{},
		&LyricsCommand{},
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
