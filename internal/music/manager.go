package music

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Manager hands out one Session per guild.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	dg          *discordgo.Session
	resolver    Resolver
	idleTimeout time.Duration

	// OnCreate runs once for every new session, before it is returned.
	// The bot uses it to attach the announcement consumer.
	OnCreate func(*Session)
}

func NewManager(dg *discordgo.Session, resolver Resolver, idleTimeout time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		dg:          dg,
		resolver:    resolver,
		idleTimeout: idleTimeout,
	}
}

// Get returns the guild's session, or nil if none exists yet.
func (m *Manager) Get(guildID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[guildID]
}

// GetOrCreate returns the guild's session, creating it on first use.
func (m *Manager) GetOrCreate(guildID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[guildID]; ok {
		return s
	}
	s := newSession(m.dg, guildID, m.resolver, m.idleTimeout)
	m.sessions[guildID] = s
	if m.OnCreate != nil {
		m.OnCreate(s)
	}
	return s
}

// Shutdown disconnects every active session. Used on process exit.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Disconnect()
	}
}
