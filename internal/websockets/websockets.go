// Package websockets pushes activity events to connected browsers.
package websockets

import (
	"encoding/json"
	"sync"
	"time"

	"clubmanager/config"
	"clubmanager/internal/events"
	"clubmanager/internal/logger"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	sendBuffer = 32
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type Message struct {
	Type      string         `json:"type"`
	Channel   string         `json:"channel,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type Client struct {
	ID   string
	send chan []byte
}

type Manager struct {
	clients  map[string]*Client
	mu       sync.RWMutex
	eventBus *events.EventBus
	log      logger.Logger
}

func New(eventBus *events.EventBus, config config.Config) (*Manager, error) {
	log := logger.New("websockets").Function("New")

	m := &Manager{
		clients:  make(map[string]*Client),
		eventBus: eventBus,
		log:      logger.New("websockets"),
	}

	if eventBus == nil {
		return nil, log.ErrMsg("event bus is nil")
	}
	eventBus.Subscribe(events.ActivityChannel, m.onActivity)

	log.Info("Websocket manager ready", "environment", config.Environment)
	return m, nil
}

func (m *Manager) onActivity(event events.Event) {
	m.Broadcast(Message{
		Type:      "activity",
		Channel:   event.Channel,
		Data:      map[string]any{"id": event.ID, "entity": event.Type, "action": event.Action, "details": event.Data},
		Timestamp: event.Timestamp,
	})
}

func (m *Manager) register() *Client {
	client := &Client{ID: uuid.New().String(), send: make(chan []byte, sendBuffer)}

	m.mu.Lock()
	m.clients[client.ID] = client
	m.mu.Unlock()

	return client
}

func (m *Manager) unregister(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		close(client.send)
	}
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// Broadcast queues message for every client. A client whose queue is full
// is disconnected.
func (m *Manager) Broadcast(message Message) {
	log := m.log.Function("Broadcast")

	payload, err := json.Marshal(message)
	if err != nil {
		log.Er("failed to encode message", err, "type", message.Type)
		return
	}

	var slow []*Client

	m.mu.RLock()
	for _, client := range m.clients {
		select {
		case client.send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	m.mu.RUnlock()

	for _, client := range slow {
		log.Warn("dropping slow client", "clientID", client.ID)
		m.unregister(client)
	}
}

// HandleWebSocket serves one connection until the client goes away.
func (m *Manager) HandleWebSocket(conn *websocket.Conn) {
	log := m.log.Function("HandleWebSocket")

	client := m.register()
	defer m.unregister(client)

	log.Debug("client connected", "clientID", client.ID)

	done := make(chan struct{})
	pumpDone := make(chan struct{})
	go func() {
		defer close(pumpDone)
		m.writePump(conn, client, done)
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				websocket.CloseAbnormalClosure,
			) {
				log.Er("unexpected close", err, "clientID", client.ID)
			} else {
				log.Debug("read loop ended", "clientID", client.ID, "error", err)
			}
			break
		}
	}

	// conn goes back to the upgrader's pool once this returns.
	close(done)
	<-pumpDone
	log.Debug("client disconnected", "clientID", client.ID)
}

func (m *Manager) writePump(conn *websocket.Conn, client *Client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-client.send:
			if !ok {
				select {
				case <-done:
				default:
					_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
					_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				}
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
