package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LostItemStatus is the lifecycle state of a lost-item report. It advances
// only through the match coordinator and the claim workflow.
type LostItemStatus string

const (
	LostUnresolved LostItemStatus = "Unresolved"
	LostMatched    LostItemStatus = "Matched"
	LostResolved   LostItemStatus = "Resolved"
)

// LostItem is a student's report of a missing possession. Rows are never
// deleted; the lifecycle is carried entirely by Status.
type LostItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Category     string         `gorm:"size:50;not null;index" json:"category"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	LostDate     datatypes.Date `json:"lost_date"`
	LostLocation string         `gorm:"size:255" json:"lost_location"`
	Status       LostItemStatus `gorm:"size:20;not null;default:'Unresolved';index" json:"status"`
	Photo        []byte         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Owner        User           `gorm:"foreignKey:OwnerID" json:"-"`
}

func (i *LostItem) HasPhoto() bool { return len(i.Photo) > 0 }
