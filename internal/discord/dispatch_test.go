package discord

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mordomo/internal/command"
	"mordomo/internal/config"
	"mordomo/internal/storage"
)

// recordingTransport answers every REST call with an empty success body and
// keeps the request paths for assertions.
type recordingTransport struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r.mu.Lock()
	r.paths = append(r.paths, req.Method+" "+req.URL.Path)
	r.mu.Unlock()
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}, nil
}

func (r *recordingTransport) sentTo(channelID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.paths {
		if strings.Contains(p, "/channels/"+channelID+"/messages") {
			return true
		}
	}
	return false
}

func newTestBot(t *testing.T) (*Bot, *recordingTransport) {
	t.Helper()
	store, err := storage.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	dg, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	rt := &recordingTransport{}
	dg.Client = &http.Client{Transport: rt}

	return &Bot{
		dg:      dg,
		cfg:     &config.Config{},
		store:   store,
		prompts: newPromptBroker(),
	}, rt
}

func guildMessage(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ChannelID: "chan-1",
			GuildID:   "guild-1",
			Content:   content,
			Author:    &discordgo.User{ID: "user-1"},
		},
	}
}

type failingCommand struct{}

func (c *failingCommand) Name() string        { return "explodir" }
func (c *failingCommand) Description() string { return "always fails" }
func (c *failingCommand) Aliases() []string   { return nil }
func (c *failingCommand) Category() string    { return "Teste" }
func (c *failingCommand) RequireDJ() bool     { return false }
func (c *failingCommand) RequireStaff() bool  { return false }
func (c *failingCommand) RequireOwner() bool  { return false }

func (c *failingCommand) Run(ctx *command.MessageContext) error {
	return errors.New("boom")
}

func TestDispatchReportsHandlerError(t *testing.T) {
	command.Register(&failingCommand{})
	b, rt := newTestBot(t)

	b.dispatch(b.dg, guildMessage("!explodir"))

	// the user gets the generic error embed, not silence
	assert.True(t, rt.sentTo("chan-1"))
}

func TestDispatchIgnoresUnknownCommand(t *testing.T) {
	b, rt := newTestBot(t)

	b.dispatch(b.dg, guildMessage("!naoexiste"))

	assert.Empty(t, rt.paths)
}

func TestDispatchIgnoresForeignPrefix(t *testing.T) {
	b, rt := newTestBot(t)

	b.dispatch(b.dg, guildMessage("oi gente"))

	assert.Empty(t, rt.paths)
}
