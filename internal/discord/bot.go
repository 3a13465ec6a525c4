package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/wader/goutubedl"

	"mordomo/internal/command/core"
	"mordomo/internal/config"
	"mordomo/internal/logger"
	"mordomo/internal/lyrics"
	"mordomo/internal/music"
	"mordomo/internal/music/resolver"
	"mordomo/internal/storage"
)

// Bot wires the gateway session to the command registry, the per-guild
// music sessions and the prompt broker.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	store    *storage.Storage
	players  *music.Manager
	resolver *resolver.Resolver
	lyrics   *lyrics.Client
	prompts  *promptBroker
}

// StartBot connects and blocks until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config, store *storage.Storage) error {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	goutubedl.Path = cfg.YTDLPPath

	res := resolver.New(resolver.Options{
		SpotifyID:     cfg.SpotifyID,
		SpotifySecret: cfg.SpotifySecret,
	})

	b := &Bot{
		dg:       dg,
		cfg:      cfg,
		store:    store,
		resolver: res,
		players:  music.NewManager(dg, res, cfg.IdleTimeout),
		lyrics:   lyrics.New(),
		prompts:  newPromptBroker(),
	}
	b.players.OnCreate = b.watchSession

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onGuildMemberAdd)
	dg.AddHandler(b.onGuildMemberRemove)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	logger.Infof("shutdown requested, disconnecting voice sessions")
	b.players.Shutdown()
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Infof("connected as %s#%s to %d guilds",
		r.User.Username, r.User.Discriminator, len(r.Guilds))

	rows, err := b.store.StatusRows(context.Background())
	if err != nil {
		logger.Warnf("load presence rows: %v", err)
		return
	}
	core.ApplyPresence(s, rows)
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}

	// a pending prompt for this user gets first claim on the message
	if b.prompts.deliver(m) {
		return
	}

	b.dispatch(s, m)
}
