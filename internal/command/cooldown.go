package command

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// cooldowns tracks one limiter per (command, user) pair.
type cooldowns struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

func newCooldowns(interval time.Duration) *cooldowns {
	return &cooldowns{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

func (c *cooldowns) allow(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	lim, ok := c.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(c.interval), 1)
		c.limiters[key] = lim
	}
	return lim.Allow()
}

// WithCooldown rejects repeat invocations by the same user inside the
// interval. The rejection replies once and consumes nothing.
func WithCooldown(interval time.Duration) Middleware {
	cd := newCooldowns(interval)
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *MessageContext) error {
				if !cd.allow(cmd.Name() + ":" + ctx.Event.Author.ID) {
					ReplyError(ctx, "Calma! Espere um pouco antes de usar este comando de novo.")
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}
