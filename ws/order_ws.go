package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes order-status events to connected clients, replacing the
// dashboard's periodic re-fetch. Admin connections see every order; a
// customer connection sees only their own orders.
type OrderHub struct {
	clients    map[*websocket.Conn]subscriber
	broadcast  chan *entity.Order
	register   chan registration
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type subscriber struct {
	UserID uint
	Role   string
}

type registration struct {
	Conn *websocket.Conn
	Sub  subscriber
}

// OrderEvent is the wire format pushed to clients.
type OrderEvent struct {
	Type  string        `json:"type"`
	Order *entity.Order `json:"order"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]subscriber),
		broadcast:  make(chan *entity.Order, 16),
		register:   make(chan registration),
		unregister: make(chan *websocket.Conn),
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *OrderHub) Run() {
	for {
		select {
		case reg := <-h.register:
			h.mu.Lock()
			h.clients[reg.Conn] = reg.Sub
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case order := <-h.broadcast:
			event := OrderEvent{Type: "order_status", Order: order}
			h.mu.Lock()
			for conn, sub := range h.clients {
				if sub.Role != "admin" && sub.UserID != order.UserID {
					continue
				}
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyOrder implements services.OrderNotifier. Non-blocking: when the
// buffer is full the event is dropped, clients resync on next fetch.
func (h *OrderHub) NotifyOrder(o *entity.Order) {
	select {
	case h.broadcast <- o:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders (token via query param, see middlewares.WSAuthMiddleware)
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- registration{Conn: conn, Sub: subscriber{UserID: userID, Role: role}}

	// reader loop only drains control frames; push is one-way
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
