package command

import (
	"context"
	"fmt"
	"runtime/debug"
	"slices"
	"time"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/logger"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx *MessageContext) error
}

func (w *wrappedCommand) Run(ctx *MessageContext) error {
	return w.wrap(ctx)
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithRecovery turns a panicking command into a logged error instead of a
// dead dispatcher goroutine.
func WithRecovery() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *MessageContext) (err error) {
				defer func() {
					if r := recover(); r != nil {
						logger.Errorf("command %s panicked: %v\n%s", cmd.Name(), r, debug.Stack())
						err = fmt.Errorf("command %s: panic: %v", cmd.Name(), r)
					}
				}()
				return cmd.Run(ctx)
			},
		}
	}
}

// WithLogging records every execution with author and guild.
func WithLogging() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *MessageContext) error {
				start := time.Now()
				err := cmd.Run(ctx)
				if err != nil {
					logger.Warnf("command %s by %s in guild %s failed after %s: %v",
						cmd.Name(), ctx.Event.Author.ID, ctx.Event.GuildID, time.Since(start), err)
					return err
				}
				logger.Infof("command %s by %s in guild %s (%s)",
					cmd.Name(), ctx.Event.Author.ID, ctx.Event.GuildID, time.Since(start))
				return nil
			},
		}
	}
}

// WithGuildOnly silently drops DMs.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *MessageContext) error {
				if ctx.Event.GuildID == "" {
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithRoleGate enforces the command's gate flags against the configured
// owner, staff and DJ roles. A denial replies with an embed and changes
// nothing. DJ commands additionally accept the music session owner.
func WithRoleGate() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *MessageContext) error {
				if !cmd.RequireOwner() && !cmd.RequireStaff() && !cmd.RequireDJ() {
					return cmd.Run(ctx)
				}

				c := context.Background()
				authorID := ctx.Event.Author.ID
				isOwner := ctx.Storage.OwnerID(c) == authorID && authorID != ""

				if cmd.RequireOwner() {
					if isOwner {
						return cmd.Run(ctx)
					}
					return denied(ctx, "Apenas o dono do bot pode usar este comando.")
				}

				isStaff := hasRole(ctx.Event.Member, ctx.Storage.StaffRoleID(c))
				if cmd.RequireStaff() {
					if isOwner || isStaff {
						return cmd.Run(ctx)
					}
					return denied(ctx, "Você precisa do cargo de staff para usar este comando.")
				}

				// DJ gate: dj role, staff, owner, or whoever started the session
				if isOwner || isStaff || hasRole(ctx.Event.Member, ctx.Storage.DJRoleID(c)) {
					return cmd.Run(ctx)
				}
				if ctx.Players != nil {
					if session := ctx.Players.Get(ctx.Event.GuildID); session != nil && session.OwnerID() == authorID {
						return cmd.Run(ctx)
					}
				}
				return denied(ctx, "Você precisa do cargo de DJ ou ter iniciado a sessão para usar este comando.")
			},
		}
	}
}

func hasRole(member *discordgo.Member, roleID string) bool {
	if member == nil || roleID == "" {
		return false
	}
	return slices.Contains(member.Roles, roleID)
}

func denied(ctx *MessageContext, reason string) error {
	ReplyError(ctx, reason)
	return nil
}
