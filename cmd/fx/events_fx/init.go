package events_fx

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"healthtrack/internal/config"
	"healthtrack/pkg/events"
)

var Module = fx.Provide(
	providePublisher)

// providePublisher connects to RabbitMQ when a URL is configured and falls
// back to dropping events otherwise.
func providePublisher(lc fx.Lifecycle, cfg config.Config, log *logrus.Logger) (events.Publisher, error) {
	if cfg.RabbitMQ.URL == "" {
		log.Info("RABBITMQ_URL not set, domain events are disabled")
		return events.NoopPublisher{}, nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
