package realtime

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
)

// fakeConn merekam frame yang ditulis; bisa dipaksa gagal.
type fakeConn struct {
	mu     sync.Mutex
	frames []Envelope
	fail   bool
	closed bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("write: broken pipe")
	}
	f.frames = append(f.frames, v.(Envelope))
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func (f *fakeConn) last() Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames[len(f.frames)-1]
}

func newStudent(conn *fakeConn, id, dept string, year int) *Client {
	return NewClient(conn, id, "mhs-"+id, constants.RoleStudent, dept, year)
}

func TestRoomKey(t *testing.T) {
	assert.Equal(t, "CSE-2", RoomKey("CSE", 2))
	assert.Equal(t, "faculty-CSE", FacultyRoomKey("CSE"))
}

func TestHubRegister_AutoJoin(t *testing.T) {
	h := NewHub()

	student := newStudent(&fakeConn{}, "u1", "CSE", 2)
	h.Register(student)
	assert.Equal(t, 1, h.RoomSize("u1"), "room personal")
	assert.Equal(t, 1, h.RoomSize("CSE-2"), "room kohort")

	faculty := NewClient(&fakeConn{}, "u2", "dosen", constants.RoleFaculty, "CSE", 0)
	h.Register(faculty)
	assert.Equal(t, 1, h.RoomSize("u2"))
	assert.Equal(t, 1, h.RoomSize("faculty-CSE"))
	assert.Equal(t, 1, h.RoomSize("CSE-2"), "faculty tidak masuk room kohort")
}

func TestHubEmit_RoomDelivery(t *testing.T) {
	h := NewHub()

	c1 := &fakeConn{}
	c2 := &fakeConn{}
	c3 := &fakeConn{}
	h.Register(newStudent(c1, "u1", "CSE", 2))
	h.Register(newStudent(c2, "u2", "CSE", 2))
	h.Register(newStudent(c3, "u3", "ECE", 2)) // kohort lain

	// emit sinkron (EmitToRoom hanya membungkusnya dengan goroutine)
	h.emit("CSE-2", EventScheduleUpdate, SchedulePayload{Type: ScheduleEventCreated})

	require.Equal(t, 1, c1.count())
	require.Equal(t, 1, c2.count())
	assert.Equal(t, 0, c3.count(), "room lain tidak menerima")
	assert.Equal(t, EventScheduleUpdate, c1.last().Event)
}

func TestHubEmit_PersonalRoom(t *testing.T) {
	h := NewHub()
	c1 := &fakeConn{}
	c2 := &fakeConn{}
	h.Register(newStudent(c1, "u1", "CSE", 2))
	h.Register(newStudent(c2, "u2", "CSE", 2))

	h.emit("u1", EventNotificationReceived, NotificationPayload{Title: "Substitute Request"})

	assert.Equal(t, 1, c1.count())
	assert.Equal(t, 0, c2.count())
}

func TestHubEmit_DropsBrokenClient(t *testing.T) {
	h := NewHub()
	ok := &fakeConn{}
	broken := &fakeConn{fail: true}
	h.Register(newStudent(ok, "u1", "CSE", 2))
	h.Register(newStudent(broken, "u2", "CSE", 2))

	h.emit("CSE-2", EventScheduleUpdate, SchedulePayload{Type: ScheduleEventUpdated})

	assert.Equal(t, 1, ok.count(), "client sehat tetap menerima")
	assert.True(t, broken.closed, "client gagal ditutup")
	assert.Equal(t, 1, h.RoomSize("CSE-2"), "client gagal keluar dari semua room")
	assert.Equal(t, 0, h.RoomSize("u2"))
}

func TestHubEmitExcept_SkipsSender(t *testing.T) {
	h := NewHub()
	senderConn := &fakeConn{}
	otherConn := &fakeConn{}
	sender := newStudent(senderConn, "u1", "CSE", 2)
	h.Register(sender)
	h.Register(newStudent(otherConn, "u2", "CSE", 2))

	h.emitExcept("CSE-2", sender, EventUserTyping, TypingPayload{UserID: "u1", IsTyping: true})

	assert.Equal(t, 0, senderConn.count(), "pengirim tidak menerima balik")
	assert.Equal(t, 1, otherConn.count())
}

func TestHubJoinLeaveUnregister(t *testing.T) {
	h := NewHub()
	c := newStudent(&fakeConn{}, "u1", "CSE", 2)
	h.Register(c)

	h.Join(c, "custom-room")
	assert.Equal(t, 1, h.RoomSize("custom-room"))

	h.Leave(c, "custom-room")
	assert.Equal(t, 0, h.RoomSize("custom-room"))

	h.Unregister(c)
	assert.Equal(t, 0, h.RoomSize("u1"))
	assert.Equal(t, 0, h.RoomSize("CSE-2"))

	// idempotent
	h.Unregister(c)
	h.Leave(c, "custom-room")
}
