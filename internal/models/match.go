package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the state of a lost-found pairing. Approved and Rejected
// are terminal: a decided match is never mutated again.
type MatchStatus string

const (
	MatchPending  MatchStatus = "Pending"
	MatchApproved MatchStatus = "Approved"
	MatchRejected MatchStatus = "Rejected"
)

// Match links exactly one lost item to one found item. A lost item and a
// found item may each participate in at most one Pending or Approved match
// at a time.
type Match struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	LostItemID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"lost_item_id"`
	FoundItemID uuid.UUID   `gorm:"type:uuid;not null;index" json:"found_item_id"`
	Status      MatchStatus `gorm:"size:20;not null;default:'Pending';index" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	LostItem    LostItem    `gorm:"foreignKey:LostItemID" json:"-"`
	FoundItem   FoundItem   `gorm:"foreignKey:FoundItemID" json:"-"`
}

// Active reports whether the match still binds its items.
func (m *Match) Active() bool {
	return m.Status == MatchPending || m.Status == MatchApproved
}
