package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(id string) *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: id}}
}

func TestMemberJoinAnnouncesToMappedChannel(t *testing.T) {
	b, rt := newTestBot(t)
	require.NoError(t, b.store.SetChannel(context.Background(), welcomeChannelKind, "42"))

	b.onGuildMemberAdd(b.dg, &discordgo.GuildMemberAdd{Member: member("user-9")})

	assert.True(t, rt.sentTo("42"))
}

func TestMemberJoinWithoutMappingStaysSilent(t *testing.T) {
	b, rt := newTestBot(t)

	b.onGuildMemberAdd(b.dg, &discordgo.GuildMemberAdd{Member: member("user-9")})

	assert.Empty(t, rt.paths)
}

func TestMemberRemoveAnnouncesFarewell(t *testing.T) {
	b, rt := newTestBot(t)
	require.NoError(t, b.store.SetChannel(context.Background(), farewellChannelKind, "43"))

	b.onGuildMemberRemove(b.dg, &discordgo.GuildMemberRemove{Member: member("user-9")})

	assert.True(t, rt.sentTo("43"))
}
