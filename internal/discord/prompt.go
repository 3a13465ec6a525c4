package discord

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// promptBroker routes follow-up messages to commands waiting inside an
// interactive flow, keyed by (channel, user). A delivered message is
// consumed and never reaches the command dispatcher.
type promptBroker struct {
	mu      sync.Mutex
	waiters map[string]chan *discordgo.MessageCreate
}

func newPromptBroker() *promptBroker {
	return &promptBroker{waiters: make(map[string]chan *discordgo.MessageCreate)}
}

func promptKey(channelID, userID string) string {
	return channelID + ":" + userID
}

// Await blocks until the user sends another message in the channel or the
// timeout elapses. Timing out returns ok=false; it is a cancellation the
// caller handles with a friendly reply, not an error.
func (p *promptBroker) Await(channelID, userID string, timeout time.Duration) (*discordgo.MessageCreate, bool) {
	key := promptKey(channelID, userID)
	ch := make(chan *discordgo.MessageCreate, 1)

	p.mu.Lock()
	// a newer prompt replaces a stale one for the same user
	if old, ok := p.waiters[key]; ok {
		close(old)
	}
	p.waiters[key] = ch
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		if p.waiters[key] == ch {
			delete(p.waiters, key)
		}
		p.mu.Unlock()
	}()

	select {
	case msg, ok := <-ch:
		if !ok {
			return nil, false
		}
		return msg, true
	case <-time.After(timeout):
		return nil, false
	}
}

// deliver hands the message to a waiting prompt, if any.
func (p *promptBroker) deliver(m *discordgo.MessageCreate) bool {
	key := promptKey(m.ChannelID, m.Author.ID)

	p.mu.Lock()
	ch, ok := p.waiters[key]
	if ok {
		delete(p.waiters, key)
	}
	p.mu.Unlock()

	if !ok {
		return false
	}
	ch <- m
	return true
}
