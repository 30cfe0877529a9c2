package realtime

import (
	"log"
	"sync"

	"kampusku_backend/internals/constants"
)

// Broadcaster: port fan-out yang di-inject ke controller.
// Pengiriman best-effort at-most-once: client yang sedang putus
// tidak menerima apa-apa (client rekonsiliasi via fetch-on-reconnect).
type Broadcaster interface {
	EmitToUser(userID string, event string, payload interface{})
	EmitToRoom(room string, event string, payload interface{})
}

// wsConn: kontrak minimal koneksi keluar (produksi: *websocket.Conn).
type wsConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Client = satu koneksi websocket yang sudah terautentikasi.
type Client struct {
	UserID     string
	UserName   string
	Role       string
	Department string
	Year       int

	conn  wsConn
	wmu   sync.Mutex // serialisasi write per koneksi
	rooms map[string]struct{}
}

func NewClient(conn wsConn, userID, userName, role, department string, year int) *Client {
	return &Client{
		UserID:     userID,
		UserName:   userName,
		Role:       role,
		Department: department,
		Year:       year,
		conn:       conn,
		rooms:      map[string]struct{}{},
	}
}

func (c *Client) send(event string, payload interface{}) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.conn.WriteJSON(Envelope{Event: event, Data: payload})
}

// Hub menyimpan keanggotaan room dan melakukan fan-out.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: map[string]map[*Client]struct{}{}}
}

// Register: auto-join room sesuai identitas.
// Semua user join room personal (user id); student join room kohort
// {department}-{year}; faculty join room faculty-{department}.
func (h *Hub) Register(c *Client) {
	h.Join(c, c.UserID)
	switch c.Role {
	case constants.RoleStudent:
		h.Join(c, RoomKey(c.Department, c.Year))
	case constants.RoleFaculty:
		h.Join(c, FacultyRoomKey(c.Department))
	}
}

func (h *Hub) Join(c *Client, room string) {
	if room == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.rooms[room]
	if !ok {
		set = map[*Client]struct{}{}
		h.rooms[room] = set
	}
	set[c] = struct{}{}
	c.rooms[room] = struct{}{}
}

func (h *Hub) Leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c, room)
}

func (h *Hub) leaveLocked(c *Client, room string) {
	if set, ok := h.rooms[room]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(c.rooms, room)
}

// Unregister melepas client dari semua room (dipanggil saat disconnect).
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room := range c.rooms {
		h.leaveLocked(c, room)
	}
}

// EmitToRoom: fire-and-forget, tidak pernah memblok atau menggagalkan
// request pemicu. Client yang gagal ditulis di-drop diam-diam.
func (h *Hub) EmitToRoom(room string, event string, payload interface{}) {
	go h.emit(room, event, payload)
}

// EmitToUser: room personal = user id.
func (h *Hub) EmitToUser(userID string, event string, payload interface{}) {
	go h.emit(userID, event, payload)
}

// EmitToRoomExcept dipakai relay typing (pengirim tidak menerima balik).
func (h *Hub) EmitToRoomExcept(room string, sender *Client, event string, payload interface{}) {
	go h.emitExcept(room, sender, event, payload)
}

func (h *Hub) emit(room string, event string, payload interface{}) {
	h.emitExcept(room, nil, event, payload)
}

func (h *Hub) emitExcept(room string, skip *Client, event string, payload interface{}) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		if c != skip {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(event, payload); err != nil {
			log.Printf("[WARN] drop client %s (room %s): %v", c.UserID, room, err)
			h.Unregister(c)
			_ = c.conn.Close()
		}
	}
}

// RoomSize untuk observability ringan (dan test).
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

var _ Broadcaster = (*Hub)(nil)
