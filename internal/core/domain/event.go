package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind distinguishes recorded ad interactions.
type EventKind string

const (
	EventImpression EventKind = "impression"
	EventClick      EventKind = "click"
)

// AdEvent is a record of an ad being shown or clicked.
type AdEvent struct {
	ID              int64
	AdvertisementID uuid.UUID
	Kind            EventKind
	CreatedAt       time.Time
}
