package services

import (
	"errors"
	"fmt"

	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Decision is a staff verdict on a claim.
type Decision string

const (
	DecisionApprove Decision = "Approve"
	DecisionReject  Decision = "Reject"
)

// ClaimService accepts ownership claims against matches and executes staff
// decisions, propagating status to the match and both items.
type ClaimService struct {
	db       *gorm.DB
	notifier *NotificationService
	filter   *ContentFilter
}

func NewClaimService(db *gorm.DB, notifier *NotificationService, filter *ContentFilter) *ClaimService {
	return &ClaimService{db: db, notifier: notifier, filter: filter}
}

// Submit files a claim against a match. The (match, claimant) pair is unique;
// the database index makes the check-then-insert race-free, so a concurrent
// duplicate surfaces as ErrDuplicateClaim rather than a second row.
func (s *ClaimService) Submit(matchID, claimantID uuid.UUID, proofText string, proofFile []byte) (*models.Claim, error) {
	if ok, reason := s.filter.Check(proofText); !ok {
		return nil, fmt.Errorf("%w: %s", ErrContentRejected, s.filter.RejectionMessage(reason))
	}

	var match models.Match
	if err := s.db.Preload("FoundItem").First(&match, "id = ?", matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}

	claim := models.Claim{
		ID:             uuid.New(),
		MatchID:        matchID,
		ClaimantID:     claimantID,
		ProofText:      proofText,
		ProofFile:      proofFile,
		ApprovalStatus: models.ClaimPending,
	}

	if err := s.db.Create(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateClaim
		}
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	s.notifier.EmitTo(claimantID, fmt.Sprintf(
		"Your claim for '%s' has been submitted and is pending staff review.", match.FoundItem.Name))
	s.notifier.EmitBroadcast(fmt.Sprintf(
		"New claim submitted for found item '%s'", match.FoundItem.Name))

	return &claim, nil
}

// Decide executes a staff verdict. Approve moves the match to Approved, the
// lost item to Resolved and the found item to Claimed; Reject moves the match
// to Rejected and reverts both items so they are matchable again. Either way
// the claim records the verdict and the verifying staff member. All writes
// commit together or not at all.
//
// A claim whose match has already been decided, or that has itself been
// decided, refuses re-decision: Approved/Rejected matches are terminal, and
// the guard is what keeps a match from ever carrying two approved claims.
func (s *ClaimService) Decide(claimID uuid.UUID, decision Decision, staffID uuid.UUID) (*models.Claim, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, fmt.Errorf("unknown decision %q", decision)
	}

	var claim models.Claim
	var lostName string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&claim, "id = ?", claimID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClaimNotFound
			}
			return err
		}
		if claim.ApprovalStatus != models.ClaimPending {
			return ErrClaimAlreadyDecided
		}

		var match models.Match
		if err := lockForUpdate(tx).First(&match, "id = ?", claim.MatchID).Error; err != nil {
			return err
		}
		if match.Status != models.MatchPending {
			return ErrMatchClosed
		}

		var lost models.LostItem
		if err := lockForUpdate(tx).First(&lost, "id = ?", match.LostItemID).Error; err != nil {
			return err
		}
		lostName = lost.Name

		claimStatus := models.ClaimRejected
		matchStatus := models.MatchRejected
		lostStatus := models.LostUnresolved
		foundStatus := models.FoundUnclaimed
		if decision == DecisionApprove {
			claimStatus = models.ClaimApproved
			matchStatus = models.MatchApproved
			lostStatus = models.LostResolved
			foundStatus = models.FoundClaimed
		}

		if err := tx.Model(&models.Claim{}).Where("id = ?", claim.ID).
			Updates(map[string]interface{}{
				"approval_status":      claimStatus,
				"verified_by_staff_id": staffID,
			}).Error; err != nil {
			return err
		}
		claim.ApprovalStatus = claimStatus
		claim.VerifiedByStaffID = &staffID
		if err := tx.Model(&models.Match{}).Where("id = ?", match.ID).
			Update("status", matchStatus).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.LostItem{}).Where("id = ?", match.LostItemID).
			Update("status", lostStatus).Error; err != nil {
			return err
		}
		return tx.Model(&models.FoundItem{}).Where("id = ?", match.FoundItemID).
			Update("status", foundStatus).Error
	})
	if err != nil {
		return nil, err
	}

	if decision == DecisionApprove {
		s.notifier.EmitTo(claim.ClaimantID, fmt.Sprintf(
			"Your claim for '%s' has been approved. You can now collect your item.", lostName))
	} else {
		s.notifier.EmitTo(claim.ClaimantID, fmt.Sprintf(
			"Your claim for '%s' has been rejected. Please contact staff for more information.", lostName))
	}

	return &claim, nil
}

// Get returns a single claim.
func (s *ClaimService) Get(id uuid.UUID) (*models.Claim, error) {
	var claim models.Claim
	if err := s.db.First(&claim, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to load claim: %w", err)
	}
	return &claim, nil
}

// ListForReview returns claims joined with match, items and claimant for the
// staff review screen, optionally filtered by approval status.
func (s *ClaimService) ListForReview(status models.ClaimStatus) ([]dto.ClaimReviewResponse, error) {
	query := s.db.Preload("Claimant").
		Preload("Match").
		Preload("Match.LostItem").
		Preload("Match.FoundItem").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("approval_status = ?", status)
	}

	var claims []models.Claim
	if err := query.Find(&claims).Error; err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	reviews := make([]dto.ClaimReviewResponse, len(claims))
	for i, c := range claims {
		reviews[i] = dto.ClaimReviewResponse{
			ClaimID:        c.ID,
			ProofText:      c.ProofText,
			HasProof:       c.HasProofFile(),
			ApprovalStatus: string(c.ApprovalStatus),
			StudentName:    c.Claimant.Name,
			StudentEmail:   c.Claimant.Email,
			LostItemName:   c.Match.LostItem.Name,
			LostCategory:   c.Match.LostItem.Category,
			FoundItemName:  c.Match.FoundItem.Name,
			FoundLocation:  c.Match.FoundItem.FoundLocation,
			MatchStatus:    string(c.Match.Status),
			MatchDate:      c.Match.CreatedAt,
		}
	}
	return reviews, nil
}

// ProofFile returns the stored proof bytes for a claim.
func (s *ClaimService) ProofFile(id uuid.UUID) ([]byte, error) {
	claim, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !claim.HasProofFile() {
		return nil, ErrProofNotFound
	}
	return claim.ProofFile, nil
}
