package notify

import (
	"time"

	"github.com/google/uuid"
)

// Event is what subscribers receive: the well-known event name plus its
// payload, stamped with a unique ID and creation time.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Payload   any       `json:"payload,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newEvent(name string, payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      name,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}
