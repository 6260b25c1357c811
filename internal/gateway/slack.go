package gateway

import (
	"context"
	"fmt"

	"github.com/nidhogg/jobscout/internal/chat"
	"github.com/nidhogg/jobscout/internal/metrics"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"go.uber.org/zap"
)

// SlackAdapter runs the chat over Slack using Socket Mode. Like Discord,
// each channel/user pair is its own lazily created session, and replies
// stay in the thread that started the conversation.
type SlackAdapter struct {
	client   *slack.Client
	socket   *socketmode.Client
	registry *chat.Registry
	metrics  *metrics.Manager
	logger   *zap.Logger
}

// NewSlackAdapter creates a Slack transport adapter.
// botToken is the Bot User OAuth Token (xoxb-...).
// appToken is the App-Level Token (xapp-...) for Socket Mode.
func NewSlackAdapter(botToken, appToken string, registry *chat.Registry, m *metrics.Manager, logger *zap.Logger) *SlackAdapter {
	client := slack.New(botToken,
		slack.OptionAppLevelToken(appToken),
	)
	socket := socketmode.New(client,
		socketmode.OptionLog(zap.NewStdLog(logger)),
	)

	return &SlackAdapter{
		client:   client,
		socket:   socket,
		registry: registry,
		metrics:  m,
		logger:   logger,
	}
}

func (a *SlackAdapter) Platform() string { return "slack" }

// Connect starts the Socket Mode event loop in a background goroutine.
func (a *SlackAdapter) Connect(ctx context.Context) error {
	go a.handleEvents(ctx)
	go func() {
		if err := a.socket.RunContext(ctx); err != nil {
			a.logger.Error("slack socket mode error", zap.Error(err))
		}
	}()
	a.logger.Info("slack adapter connected via socket mode")
	return nil
}

// handleEvents processes incoming Socket Mode events.
func (a *SlackAdapter) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-a.socket.Events:
			if !ok {
				return
			}
			a.processEvent(evt)
		}
	}
}

func (a *SlackAdapter) processEvent(evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeEventsAPI:
		eventsAPI, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		a.socket.Ack(*evt.Request)

		if eventsAPI.Type == slackevents.CallbackEvent {
			switch inner := eventsAPI.InnerEvent.Data.(type) {
			case *slackevents.MessageEvent:
				// Ignore bot messages to avoid loops
				if inner.BotID != "" {
					return
				}
				a.handleSlackMessage(inner)
			}
		}
	}
}

func (a *SlackAdapter) handleSlackMessage(ev *slackevents.MessageEvent) {
	a.metrics.IncMessages(a.Platform())
	id := fmt.Sprintf("slack:%s:%s", ev.Channel, ev.User)

	var frame chat.Frame
	if ev.Text == resetCommand {
		frame = a.registry.Reset(id)
	} else {
		frame = a.registry.HandleText(id, ev.Text)
	}

	threadTS := ev.ThreadTimeStamp
	if threadTS == "" {
		threadTS = ev.TimeStamp
	}

	opts := []slack.MsgOption{
		slack.MsgOptionText(renderText(frame), false),
		slack.MsgOptionTS(threadTS),
	}
	if _, _, err := a.client.PostMessage(ev.Channel, opts...); err != nil {
		a.logger.Error("slack send failed",
			zap.String("channel", ev.Channel), zap.Error(err))
	}
}

// Close is a no-op; the socket context cancellation handles shutdown.
func (a *SlackAdapter) Close() error {
	return nil
}
