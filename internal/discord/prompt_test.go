package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptMessage(channelID, userID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ChannelID: channelID,
			Content:   content,
			Author:    &discordgo.User{ID: userID},
		},
	}
}

func TestPromptDelivery(t *testing.T) {
	broker := newPromptBroker()

	done := make(chan struct{})
	go func() {
		defer close(done)
		msg, ok := broker.Await("chan-1", "user-1", time.Second)
		require.True(t, ok)
		assert.Equal(t, "resposta", msg.Content)
	}()

	// wait for the waiter to register before delivering
	assert.Eventually(t, func() bool {
		broker.mu.Lock()
		defer broker.mu.Unlock()
		return len(broker.waiters) == 1
	}, time.Second, 5*time.Millisecond)

	assert.True(t, broker.deliver(promptMessage("chan-1", "user-1", "resposta")))
	<-done
}

func TestPromptTimeoutIsCancellation(t *testing.T) {
	broker := newPromptBroker()

	start := time.Now()
	msg, ok := broker.Await("chan-1", "user-1", 20*time.Millisecond)

	assert.False(t, ok)
	assert.Nil(t, msg)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	// the waiter was cleaned up, later messages flow to the dispatcher
	assert.False(t, broker.deliver(promptMessage("chan-1", "user-1", "tarde demais")))
}

func TestPromptIgnoresOtherUsers(t *testing.T) {
	broker := newPromptBroker()

	go func() {
		time.Sleep(10 * time.Millisecond)
		assert.False(t, broker.deliver(promptMessage("chan-1", "user-2", "intruso")))
		assert.True(t, broker.deliver(promptMessage("chan-1", "user-1", "sou eu")))
	}()

	msg, ok := broker.Await("chan-1", "user-1", time.Second)
	require.True(t, ok)
	assert.Equal(t, "sou eu", msg.Content)
}
