package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Session is a recorded workload: the capacity it ran with and the ops in call order.
type Session struct {
	ID        uuid.UUID
	Capacity  int
	Ops       []Op
	Checksum  int
	CreatedAt time.Time
}

func NewSession(capacity int, ops []Op) Session {
	return Session{
		ID:        uuid.New(),
		Capacity:  capacity,
		Ops:       ops,
		CreatedAt: time.Now().UTC(),
	}
}

// ChecksumBytes is the canonical encoding of the capacity and ops covered by the session checksum.
func (s *Session) ChecksumBytes() ([]byte, error) {
	return json.Marshal(struct {
		Capacity int
		Ops      []Op
	}{s.Capacity, s.Ops})
}
