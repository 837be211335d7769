package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rafabene/contactpro-backend/internal/domain/ports"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
)

// Event é o envelope enviado aos clientes conectados.
// Tipos: contact.created, contact.updated, contact.deleted,
// attachment.deleted.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Client representa uma conexão websocket ativa de um usuário
// autenticado
type Client struct {
	hub    *Hub
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// envelope carrega um evento serializado junto com o dono que deve
// recebê-lo
type envelope struct {
	userID  string
	payload []byte
}

// Hub mantém o conjunto de clientes conectados e entrega eventos de
// domínio para invalidação de cache no frontend. Eventos são sempre
// endereçados a um dono: uma conexão só recebe eventos do próprio
// usuário.
type Hub struct {
	mu         sync.Mutex
	clients    map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	upgrader   websocket.Upgrader
	logger     ports.Logger
}

// NewHub cria um novo Hub. allowedOrigin restringe o handshake ao
// frontend configurado; vazio libera qualquer origem (dev).
func NewHub(allowedOrigin string, logger ports.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan envelope, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		logger: logger,
	}
}

// Run processa registros e broadcasts. Deve rodar em sua própria
// goroutine durante toda a vida do servidor.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("websocket client registered", "user_id", client.userID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case env := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if client.userID != env.userID {
					continue
				}
				select {
				case client.send <- env.payload:
				default:
					// Cliente lento: derrubar para não represar o hub
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// PublishToUser publica um evento para todas as conexões do usuário
// informado. Conexões de outros usuários nunca recebem o evento.
func (h *Hub) PublishToUser(userID, eventType string, data interface{}) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		h.logger.Error("failed to marshal ws event", "type", eventType, "error", err)
		return
	}
	h.broadcast <- envelope{userID: userID, payload: payload}
}

// ServeWS faz o upgrade da conexão HTTP e registra o cliente para o
// usuário já autenticado pela rota
func (h *Hub) ServeWS(userID string, w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:    h,
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 16),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump descarta mensagens do cliente (o canal é só de saída) e
// mantém o deadline de leitura renovado pelos pongs
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pongWait * 9 / 10)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
