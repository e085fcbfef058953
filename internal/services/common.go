package services

import (
	"bytes"
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"healthtrack/pkg/events"
)

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// publish sends an event and only logs when it cannot be delivered; the
// request that caused it has already been committed.
func publish(ctx context.Context, publisher events.Publisher, log *logrus.Logger, routingKey string, payload interface{}) {
	if err := publisher.Publish(ctx, routingKey, payload); err != nil {
		log.WithError(err).WithField("event", routingKey).Warn("failed to publish event")
	}
}

// hasJSON reports whether a raw body field carries a value. An omitted
// field and an explicit null are both absent.
func hasJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func jsonOrNil(raw []byte) datatypes.JSON {
	if !hasJSON(raw) {
		return nil
	}
	return datatypes.JSON(raw)
}
