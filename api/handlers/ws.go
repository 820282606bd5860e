package handlers

import (
	"log"
	"net/http"

	"padlet/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler - WebSocket endpoint доски. Соединение живет до отключения
// клиента и получает каждое событие new_post, разосланное за это время.
// Пропущенные события не доигрываются: клиент догоняется через GET /api/posts.
func (h *Handler) WSHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	// Приветствие пишется до регистрации в хабе: после Add в соединение
	// пишет только Broadcast под своей блокировкой
	_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"connected"}`))

	h.hub.Add(conn)
	middleware.RecordWSConnected(serviceName)
	defer func() {
		h.hub.Remove(conn)
		middleware.RecordWSDisconnected(serviceName)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
