package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FoundItemStatus is the lifecycle state of a found-item report.
type FoundItemStatus string

const (
	FoundUnclaimed FoundItemStatus = "Unclaimed"
	FoundMatched   FoundItemStatus = "Matched"
	FoundClaimed   FoundItemStatus = "Claimed"
)

// FoundItem is a recovered possession reported by a student or staff member.
type FoundItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Category      string          `gorm:"size:50;not null;index" json:"category"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	FoundDate     datatypes.Date  `json:"found_date"`
	FoundLocation string          `gorm:"size:255" json:"found_location"`
	Status        FoundItemStatus `gorm:"size:20;not null;default:'Unclaimed';index" json:"status"`
	Photo         []byte          `json:"-"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Reporter      User            `gorm:"foreignKey:ReporterID" json:"-"`
}

func (i *FoundItem) HasPhoto() bool { return len(i.Photo) > 0 }
