// Package eventx carries identity lifecycle events from the account service
// to their consumers, either in process or through Kafka.
package eventx

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const TypeUserDeleted = "user.deleted"

// UserDeleted is published once the identity record of a user is gone.
type UserDeleted struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	DeletedAt time.Time `json:"deleted_at"`
}

// Envelope is the wire form of every event.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func Encode(ev UserDeleted) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: TypeUserDeleted, Data: data})
}

func Decode(b []byte) (UserDeleted, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return UserDeleted{}, fmt.Errorf("eventx: decode envelope: %w", err)
	}
	if env.Type != TypeUserDeleted {
		return UserDeleted{}, fmt.Errorf("eventx: unexpected event type %q", env.Type)
	}

	var ev UserDeleted
	if err := json.Unmarshal(env.Data, &ev); err != nil {
		return UserDeleted{}, fmt.Errorf("eventx: decode %s: %w", env.Type, err)
	}
	return ev, nil
}

type Publisher interface {
	PublishUserDeleted(ctx context.Context, ev UserDeleted) error
	Close() error
}

// Handler reacts to a deleted user. It has no error return: consumers never
// retry.
type Handler func(ctx context.Context, ev UserDeleted)
