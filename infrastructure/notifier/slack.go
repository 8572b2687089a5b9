package notifier

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
)

// SlackChannel publica a notificação em um canal fixo usando o token do bot
type SlackChannel struct {
	channel string
	client  *slack.Client
}

// NewSlackChannel cria o canal do Slack. As opções extras permitem apontar
// o client para um servidor de teste.
func NewSlackChannel(cfg *config.Config, opts ...slack.Option) *SlackChannel {
	return &SlackChannel{
		channel: cfg.Slack.Channel,
		client:  slack.New(cfg.Slack.Token, opts...),
	}
}

func (s *SlackChannel) Type() string { return "slack" }

func (s *SlackChannel) Send(ctx context.Context, _ string, message string) error {
	_, _, err := s.client.PostMessageContext(ctx, s.channel, slack.MsgOptionText(message, false))
	return err
}
