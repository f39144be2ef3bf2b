// Package events publishes catalog-run notifications to a Redis stream so
// downstream consumers can react to fresh inventory data.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
)

// EventTypeCatalogUpdated is published after a successful catalog run.
const EventTypeCatalogUpdated = "CATALOG_UPDATED"

// DefaultStream is the stream catalog events are published to.
const DefaultStream = "strain-catalog"

// RedisClient is the narrow Redis surface the publisher needs.
type RedisClient interface {
	XAdd(ctx context.Context, args *redis.XAddArgs) *redis.StringCmd
	Close() error
}

// CatalogUpdatedPayload is the event body for a completed run.
type CatalogUpdatedPayload struct {
	EventID     string           `json:"event_id"`
	EventType   string           `json:"event_type"`
	Timestamp   time.Time        `json:"timestamp"`
	StoreID     int              `json:"store_id"`
	StrainCount int              `json:"strain_count"`
	Strains     []*models.Strain `json:"strains"`
}

// Publisher writes catalog events to a Redis stream.
type Publisher struct {
	redis  RedisClient
	stream string
	logger *slog.Logger
}

func NewPublisher(client RedisClient, stream string) *Publisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &Publisher{
		redis:  client,
		stream: stream,
		logger: slog.Default().With("component", "events"),
	}
}

// PublishCatalogUpdated emits one event carrying the run's processed
// strains.
func (p *Publisher) PublishCatalogUpdated(ctx context.Context, storeID int, strains []*models.Strain) error {
	payload := CatalogUpdatedPayload{
		EventID:     uuid.New().String(),
		EventType:   EventTypeCatalogUpdated,
		Timestamp:   time.Now().UTC(),
		StoreID:     storeID,
		StrainCount: len(strains),
		Strains:     strains,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"data": string(data),
			"type": EventTypeCatalogUpdated,
		},
	}

	id, err := p.redis.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("failed to publish catalog event: %w", err)
	}

	p.logger.Info("published catalog event",
		"event_id", payload.EventID,
		"stream_id", id,
		"store_id", storeID,
		"strains", len(strains))
	return nil
}
