package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"warehouse-shipping-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "dispatch:outcomes"

// Message is the JSON payload published for every order attempt.
type Message struct {
	DispatchID  string    `json:"dispatch_id"`
	Outcome     string    `json:"outcome"`
	Item        string    `json:"item"`
	Quantity    int       `json:"quantity"`
	VehicleID   string    `json:"vehicle_id"`
	Destination string    `json:"destination"`
	TotalWeight float64   `json:"total_weight_kg"`
	Distance    float64   `json:"distance,omitempty"`
	Path        []string  `json:"path,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	At          time.Time `json:"at"`
}

func NewMessage(evt domain.DispatchEvent) Message {
	return Message{
		DispatchID:  evt.DispatchID,
		Outcome:     string(evt.Outcome),
		Item:        evt.Item,
		Quantity:    evt.Quantity,
		VehicleID:   evt.VehicleID,
		Destination: evt.Destination,
		TotalWeight: evt.TotalWeight,
		Distance:    evt.Distance,
		Path:        evt.Path,
		Reason:      evt.Reason,
		At:          evt.At,
	}
}

// RedisPublisher publishes dispatch outcomes over Redis Pub/Sub.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
	timeout time.Duration
}

func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{rdb: rdb, channel: channel, timeout: 2 * time.Second}
}

func (p *RedisPublisher) Channel() string { return p.channel }

func (p *RedisPublisher) Report(ctx context.Context, evt domain.DispatchEvent) error {
	data, err := json.Marshal(NewMessage(evt))
	if err != nil {
		return fmt.Errorf("publish dispatch %s: marshal: %w", evt.DispatchID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.rdb.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish dispatch %s: %w", evt.DispatchID, err)
	}
	return nil
}
