package command

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/lyrics"
	"mordomo/internal/music"
	"mordomo/internal/storage"
)

type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Category() string

	// Gate flags, enforced by WithRoleGate. DJ commands also accept the
	// session owner.
	RequireDJ() bool
	RequireStaff() bool
	RequireOwner() bool

	Run(ctx *MessageContext) error
}

// Prompter waits for a follow-up message from the same user in the same
// channel. ok is false when the wait timed out; that is a cancellation, not
// an error.
type Prompter interface {
	Await(channelID, userID string, timeout time.Duration) (msg *discordgo.MessageCreate, ok bool)
}

// MessageContext is what the dispatcher hands a command.
type MessageContext struct {
	Session  *discordgo.Session
	Event    *discordgo.MessageCreate
	Args     []string
	ArgText  string // everything after the command name, untokenized
	Storage  *storage.Storage
	Players  *music.Manager
	Resolver music.Resolver
	Lyrics   *lyrics.Client
	Prompt   Prompter

	// PromptTimeout is the configured window for interactive replies.
	PromptTimeout time.Duration
}

// PromptWindow returns the configured interactive-reply timeout, with a
// sane fallback when the dispatcher left it unset.
func (c *MessageContext) PromptWindow() time.Duration {
	if c.PromptTimeout > 0 {
		return c.PromptTimeout
	}
	return time.Minute
}
