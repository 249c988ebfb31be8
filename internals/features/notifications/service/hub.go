package service

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Hub memegang koneksi websocket per employee_code. Satu karyawan boleh
// punya lebih dari satu koneksi (dua device).
type Hub struct {
	mu    sync.RWMutex
	conns map[string][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: map[string][]*websocket.Conn{}}
}

func (h *Hub) Register(employeeCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[employeeCode] = append(h.conns[employeeCode], conn)
}

func (h *Hub) Unregister(employeeCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.conns[employeeCode]
	for i, c := range list {
		if c == conn {
			h.conns[employeeCode] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(h.conns[employeeCode]) == 0 {
		delete(h.conns, employeeCode)
	}
}

// Push mengirim payload JSON ke recipients; kosong = semua koneksi.
// Koneksi mati cuma dicatat, tidak menggagalkan pengiriman lain.
func (h *Hub) Push(payload any, recipients []string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	send := func(code string) {
		for _, conn := range h.conns[code] {
			if err := conn.WriteJSON(payload); err != nil {
				log.Printf("[NOTIF] push ke %s gagal: %v", code, err)
			}
		}
	}

	if len(recipients) == 0 {
		for code := range h.conns {
			send(code)
		}
		return
	}
	for _, code := range recipients {
		send(code)
	}
}
