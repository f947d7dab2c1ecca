package notification

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConn(userID int64) *connection {
	return &connection{userID: userID, send: make(chan []byte, 4)}
}

func TestHub_SendToUser_AllConnectionsReceive(t *testing.T) {
	hub := NewHub()
	laptop := testConn(7)
	phone := testConn(7)
	hub.register(laptop)
	hub.register(phone)

	delivered := hub.SendToUser(7, &WSEvent{Type: EventNotification, Payload: "hello"})

	assert.True(t, delivered)
	for _, c := range []*connection{laptop, phone} {
		var event WSEvent
		assert.NoError(t, json.Unmarshal(<-c.send, &event))
		assert.Equal(t, EventNotification, event.Type)
	}
}

func TestHub_SendToUser_OfflineUser(t *testing.T) {
	hub := NewHub()
	other := testConn(8)
	hub.register(other)

	delivered := hub.SendToUser(7, &WSEvent{Type: EventNotification})

	assert.False(t, delivered)
	assert.Empty(t, other.send)
}

func TestHub_Unregister_RemovesOnlyThatConnection(t *testing.T) {
	hub := NewHub()
	laptop := testConn(7)
	phone := testConn(7)
	hub.register(laptop)
	hub.register(phone)

	hub.unregister(laptop)

	assert.True(t, hub.SendToUser(7, &WSEvent{Type: EventNotification}))
	assert.Equal(t, 1, hub.ConnectedUsers())

	hub.unregister(phone)
	assert.False(t, hub.SendToUser(7, &WSEvent{Type: EventNotification}))
	assert.Equal(t, 0, hub.ConnectedUsers())
}

func TestHub_Unregister_Idempotent(t *testing.T) {
	hub := NewHub()
	c := testConn(7)
	hub.register(c)

	hub.unregister(c)
	// a second unregister of the same connection must not close the
	// channel twice or touch another user's registration
	hub.unregister(c)

	assert.Equal(t, 0, hub.ConnectedUsers())
}

func TestHub_SendToUser_SlowConnectionSkipped(t *testing.T) {
	hub := NewHub()
	slow := &connection{userID: 7, send: make(chan []byte)} // unbuffered, nobody reading
	fast := testConn(7)
	hub.register(slow)
	hub.register(fast)

	delivered := hub.SendToUser(7, &WSEvent{Type: EventNotification})

	assert.True(t, delivered)
	assert.Len(t, fast.send, 1)
}
