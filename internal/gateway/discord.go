package gateway

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/nidhogg/jobscout/internal/chat"
	"github.com/nidhogg/jobscout/internal/metrics"
	"go.uber.org/zap"
)

// DiscordAdapter runs the chat over Discord. Each channel/user pair is
// its own session; sessions are created lazily on first message since
// Discord has no per-user connect event.
type DiscordAdapter struct {
	token    string
	session  *discordgo.Session
	registry *chat.Registry
	metrics  *metrics.Manager
	logger   *zap.Logger
}

// NewDiscordAdapter creates a Discord transport adapter.
func NewDiscordAdapter(token string, registry *chat.Registry, m *metrics.Manager, logger *zap.Logger) *DiscordAdapter {
	return &DiscordAdapter{
		token:    token,
		registry: registry,
		metrics:  m,
		logger:   logger,
	}
}

func (a *DiscordAdapter) Platform() string { return "discord" }

// Connect opens the Discord bot gateway.
func (a *DiscordAdapter) Connect(_ context.Context) error {
	session, err := discordgo.New("Bot " + a.token)
	if err != nil {
		return fmt.Errorf("discord session: %w", err)
	}
	a.session = session

	a.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages
	a.session.AddHandler(a.onMessageCreate)

	if err := a.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}

	if len(a.session.State.Guilds) == 0 {
		a.logger.Warn("discord bot not added to any server — invite it first")
	}
	a.logger.Info("discord adapter connected",
		zap.String("user", a.session.State.User.Username),
		zap.Int("guilds", len(a.session.State.Guilds)))
	return nil
}

// onMessageCreate handles incoming Discord messages.
func (a *DiscordAdapter) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself and other bots
	if m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	a.metrics.IncMessages(a.Platform())
	id := fmt.Sprintf("discord:%s:%s", m.ChannelID, m.Author.ID)

	var frame chat.Frame
	if m.Content == resetCommand {
		frame = a.registry.Reset(id)
	} else {
		frame = a.registry.HandleText(id, m.Content)
	}

	if _, err := a.session.ChannelMessageSend(m.ChannelID, renderText(frame)); err != nil {
		a.logger.Error("discord send failed",
			zap.String("channel", m.ChannelID), zap.Error(err))
	}
}

// Close shuts down the Discord session.
func (a *DiscordAdapter) Close() error {
	if a.session != nil {
		return a.session.Close()
	}
	return nil
}
