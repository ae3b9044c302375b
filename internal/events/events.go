package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"clubmanager/config"
	"clubmanager/internal/database"
	"clubmanager/internal/logger"

	"github.com/valkey-io/valkey-go"
)

const ActivityChannel = "activity"

type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Channel   string         `json:"channel,omitempty"`
	Action    string         `json:"action,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type Handler func(Event)

// EventBus fans events out to subscribers. With a valkey client events go
// through PUBLISH / SUBSCRIBE so every server instance receives them;
// without one they are delivered in process.
type EventBus struct {
	client   database.CacheClient
	handlers map[string][]Handler
	mu       sync.RWMutex
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	log      logger.Logger
}

func New(client database.CacheClient, config config.Config) *EventBus {
	ctx, cancel := context.WithCancel(context.Background())

	bus := &EventBus{
		client:   client,
		handlers: make(map[string][]Handler),
		ctx:      ctx,
		cancel:   cancel,
		log:      logger.New("events"),
	}

	bus.log.Function("New").Info("Event bus ready", "distributed", client != nil, "environment", config.Environment)
	return bus
}

// Subscribe registers handler for channel. The first subscription to a
// channel starts a valkey receiver when a client is configured.
func (b *EventBus) Subscribe(channel string, handler Handler) {
	b.mu.Lock()
	first := len(b.handlers[channel]) == 0
	b.handlers[channel] = append(b.handlers[channel], handler)
	b.mu.Unlock()

	if first && b.client != nil {
		b.wg.Add(1)
		go b.receive(channel)
	}
}

func (b *EventBus) receive(channel string) {
	defer b.wg.Done()
	log := b.log.Function("receive")

	err := b.client.Receive(b.ctx, b.client.B().Subscribe().Channel(channel).Build(), func(msg valkey.PubSubMessage) {
		var event Event
		if err := json.Unmarshal([]byte(msg.Message), &event); err != nil {
			log.Er("failed to decode event", err, "channel", msg.Channel)
			return
		}
		b.dispatch(channel, event)
	})
	if err != nil && b.ctx.Err() == nil {
		log.Er("subscription ended", err, "channel", channel)
	}
}

func (b *EventBus) dispatch(channel string, event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[channel]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Publish is safe on a nil bus, which drops the event.
func (b *EventBus) Publish(channel string, event Event) error {
	if b == nil {
		return nil
	}
	log := b.log.Function("Publish")

	if event.Channel == "" {
		event.Channel = channel
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if b.client == nil {
		b.dispatch(channel, event)
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return log.Err("failed to encode event", err, "channel", channel)
	}

	cmd := b.client.B().Publish().Channel(channel).Message(string(payload)).Build()
	if err := b.client.Do(b.ctx, cmd).Error(); err != nil {
		return log.Err("failed to publish event", err, "channel", channel)
	}

	return nil
}

func (b *EventBus) Close() error {
	if b == nil {
		return nil
	}
	b.cancel()
	b.wg.Wait()
	return nil
}
