package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	name    string
	aliases []string
	ran     int
}

func (f *fakeCommand) Name() string            { return f.name }
func (f *fakeCommand) Description() string     { return "fake" }
func (f *fakeCommand) Aliases() []string       { return f.aliases }
func (f *fakeCommand) Category() string        { return "test" }
func (f *fakeCommand) RequireDJ() bool         { return false }
func (f *fakeCommand) RequireStaff() bool      { return false }
func (f *fakeCommand) RequireOwner() bool      { return false }
func (f *fakeCommand) Run(*MessageContext) error {
	f.ran++
	return nil
}

func TestRegistryAliasLookup(t *testing.T) {
	t.Cleanup(func() { registry = map[string]Command{} })

	cmd := &fakeCommand{name: "tocar-teste", aliases: []string{"tt", "teste"}}
	Register(cmd)

	for _, key := range []string{"tocar-teste", "tt", "teste"} {
		got, ok := Get(key)
		require.True(t, ok, key)
		assert.Equal(t, cmd.Name(), got.Name())
	}

	_, ok := Get("desconhecido")
	assert.False(t, ok)
}

func TestAllDeduplicatesAliases(t *testing.T) {
	t.Cleanup(func() { registry = map[string]Command{} })

	Register(&fakeCommand{name: "um", aliases: []string{"one", "uno"}})
	Register(&fakeCommand{name: "dois", aliases: []string{"two"}})

	assert.Len(t, All(), 2)
}

func TestApplyMiddlewaresOrder(t *testing.T) {
	var order []string
	mw := func(label string) Middleware {
		return func(cmd Command) Command {
			return &wrappedCommand{
				Command: cmd,
				wrap: func(ctx *MessageContext) error {
					order = append(order, label)
					return cmd.Run(ctx)
				},
			}
		}
	}

	inner := &fakeCommand{name: "x"}
	// last applied runs first
	cmd := ApplyMiddlewares(inner, mw("inner"), mw("outer"))
	require.NoError(t, cmd.Run(&MessageContext{}))

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, inner.ran)
}

func TestWithRecoveryCatchesPanic(t *testing.T) {
	panicky := ApplyMiddlewares(&panicCommand{}, WithRecovery())
	err := panicky.Run(&MessageContext{})
	assert.Error(t, err)
}

type panicCommand struct{ fakeCommand }

func (p *panicCommand) Name() string              { return "panico" }
func (p *panicCommand) Run(*MessageContext) error { panic("boom") }

func TestCooldownAllowsFirstRejectsSecond(t *testing.T) {
	cd := newCooldowns(time.Hour)

	assert.True(t, cd.allow("cmd:user"))
	assert.False(t, cd.allow("cmd:user"))
	assert.True(t, cd.allow("cmd:other"))
}

func TestPromptWindowDefaultsWhenUnset(t *testing.T) {
	ctx := &MessageContext{}
	assert.Equal(t, time.Minute, ctx.PromptWindow())

	ctx.PromptTimeout = 90 * time.Second
	assert.Equal(t, 90*time.Second, ctx.PromptWindow())
}
