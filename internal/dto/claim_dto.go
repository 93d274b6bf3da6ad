package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitClaimRequest struct {
	MatchID   uuid.UUID `json:"match_id" form:"match_id"`
	ProofText string    `json:"proof_text" form:"proof_text"`
}

// ClaimReviewResponse is the staff review row: the claim joined with its
// match, both items and the claimant.
type ClaimReviewResponse struct {
	ClaimID        uuid.UUID `json:"claim_id"`
	ProofText      string    `json:"proof_text"`
	HasProof       bool      `json:"has_proof"`
	ApprovalStatus string    `json:"approval_status"`
	StudentName    string    `json:"student_name"`
	StudentEmail   string    `json:"student_email"`
	LostItemName   string    `json:"lost_item_name"`
	LostCategory   string    `json:"lost_category"`
	FoundItemName  string    `json:"found_item_name"`
	FoundLocation  string    `json:"found_location"`
	MatchStatus    string    `json:"match_status"`
	MatchDate      time.Time `json:"match_date"`
}
