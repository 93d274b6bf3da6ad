package models

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus is the review state of an ownership claim.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "Pending"
	ClaimApproved ClaimStatus = "Approved"
	ClaimRejected ClaimStatus = "Rejected"
)

// Claim is a student's assertion of ownership against a specific match.
// The unique index enforces one claim per (match, claimant) pair.
type Claim struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	MatchID           uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_claims_match_claimant" json:"match_id"`
	ClaimantID        uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_claims_match_claimant" json:"claimant_id"`
	ProofText         string      `gorm:"type:text" json:"proof_text"`
	ProofFile         []byte      `json:"-"`
	ApprovalStatus    ClaimStatus `gorm:"size:20;not null;default:'Pending';index" json:"approval_status"`
	VerifiedByStaffID *uuid.UUID  `gorm:"type:uuid" json:"verified_by_staff_id,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	Match             Match       `gorm:"foreignKey:MatchID" json:"-"`
	Claimant          User        `gorm:"foreignKey:ClaimantID" json:"-"`
}

func (c *Claim) HasProofFile() bool { return len(c.ProofFile) > 0 }
