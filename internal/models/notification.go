package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "Unread"
	NotificationRead   NotificationStatus = "Read"
)

// Notification is an append-only event record. RecipientID nil means the
// notification is a broadcast visible to all staff; a non-nil RecipientID
// scopes it to a single student. Only the read flag is ever mutated.
type Notification struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Message     string             `gorm:"type:text;not null" json:"message"`
	RecipientID *uuid.UUID         `gorm:"type:uuid;index" json:"recipient_id,omitempty"`
	Status      NotificationStatus `gorm:"size:10;not null;default:'Unread';index" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (n *Notification) Broadcast() bool { return n.RecipientID == nil }
