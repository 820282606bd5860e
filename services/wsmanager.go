package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSEvent - конверт события для клиентов
type WSEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Hub - реестр открытых WebSocket-соединений доски.
// Каждое рассылаемое событие получают все подключенные клиенты.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Count - число подключенных клиентов
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast отправляет событие всем клиентам. Доставка best effort:
// ошибка записи одному клиенту не прерывает рассылку остальным.
// Эксклюзивная блокировка сериализует конкурентные рассылки: gorilla
// запрещает параллельные записи в одно соединение.
func (h *Hub) Broadcast(event string, data interface{}) error {
	payload, err := json.Marshal(WSEvent{Event: event, Data: data})
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.WriteMessage(websocket.TextMessage, payload)
	}
	return nil
}
