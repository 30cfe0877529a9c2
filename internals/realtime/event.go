package realtime

// Nama event yang dikirim ke client.
const (
	EventScheduleUpdate       = "schedule_update"
	EventNotificationReceived = "notification_received"
	EventUserTyping           = "user_typing"
)

// Sub-tipe payload schedule_update.
const (
	ScheduleEventCreated            = "created"
	ScheduleEventUpdated            = "updated"
	ScheduleEventCancelled          = "cancelled"
	ScheduleEventDeleted            = "deleted"
	ScheduleEventSubstituteAssigned = "substitute_assigned"
)

// Envelope: bentuk tunggal semua frame keluar lewat websocket.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// SchedulePayload dikirim ke room {department}-{year} setiap mutasi jadwal.
// Schedule terisi penuh (nama faculty/substitute sudah resolve) kecuali
// untuk delete yang cukup membawa schedule_id.
type SchedulePayload struct {
	Type       string      `json:"type"`
	Schedule   interface{} `json:"schedule,omitempty"`
	ScheduleID string      `json:"schedule_id,omitempty"`
}

// NotificationPayload dikirim ke room personal penerima.
type NotificationPayload struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	RelatedID string `json:"related_id,omitempty"`
}

// TypingPayload diteruskan ke sesama anggota room (fitur periferal).
type TypingPayload struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	IsTyping bool   `json:"is_typing"`
}
