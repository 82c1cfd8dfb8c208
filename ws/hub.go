package ws

// Hub bertanggung jawab untuk:
// - menyimpan koneksi client dashboard staf,
// - menerima pesan peringatan dari notifier,
// - broadcast pesan ke seluruh client yang terhubung.

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

// Client mewakili satu koneksi WebSocket dashboard.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

// BroadcastJSON meng-encode payload dan mengirimkannya ke semua client.
// Client yang lambat akan di-drop oleh Run, bukan memblokir pengirim.
func (h *Hub) BroadcastJSON(payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws: gagal encode payload broadcast: %v", err)
		return
	}
	h.Broadcast <- data
}
