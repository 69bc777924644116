package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visit is one entry in the browsing history.
type Visit struct {
	ID        int64
	Session   uuid.UUID
	URL       string
	Title     string
	ItemType  byte
	VisitedAt time.Time
}
