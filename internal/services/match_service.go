package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/campuskit/lostfound-backend/internal/similarity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchService coordinates lost-found pairings: it runs the auto-suggestion
// scan and owns creation of Match records under the at-most-one-active-match
// invariant.
type MatchService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewMatchService(db *gorm.DB, notifier *NotificationService) *MatchService {
	return &MatchService{db: db, notifier: notifier}
}

// Suggest scans every Unresolved lost item against every Unclaimed found
// item, keeps qualifying pairs and returns them sorted by similarity, best
// first. Each qualifying pair notifies the lost item's owner and broadcasts
// to staff. Suggestions are never persisted; a Match exists only after an
// explicit Confirm.
func (s *MatchService) Suggest() ([]dto.SuggestionResponse, error) {
	var lostItems []models.LostItem
	if err := s.db.Where("status = ?", models.LostUnresolved).
		Order("lost_date DESC").Find(&lostItems).Error; err != nil {
		return nil, fmt.Errorf("failed to load unresolved lost items: %w", err)
	}

	var foundItems []models.FoundItem
	if err := s.db.Where("status = ?", models.FoundUnclaimed).
		Order("found_date DESC").Find(&foundItems).Error; err != nil {
		return nil, fmt.Errorf("failed to load unclaimed found items: %w", err)
	}

	var suggestions []dto.SuggestionResponse
	for li := range lostItems {
		lost := &lostItems[li]
		for fi := range foundItems {
			found := &foundItems[fi]

			score := similarity.Compare(lost, found)
			if !score.Qualifies() {
				continue
			}

			suggestions = append(suggestions, dto.SuggestionResponse{
				LostItemID:      lost.ID,
				FoundItemID:     found.ID,
				LostName:        lost.Name,
				FoundName:       found.Name,
				LostLocation:    lost.LostLocation,
				FoundLocation:   found.FoundLocation,
				Category:        lost.Category,
				Similarity:      score.Similarity,
				LocationOverlap: score.LocationOverlap,
				DateDiffDays:    score.DateDiffDays,
			})

			s.notifier.EmitTo(lost.OwnerID, fmt.Sprintf(
				"Potential match found for your lost item '%s'. Staff can review and confirm it.", lost.Name))
			s.notifier.EmitBroadcast(fmt.Sprintf(
				"Potential match: lost '%s' and found '%s'", lost.Name, found.Name))
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Similarity > suggestions[j].Similarity
	})
	return suggestions, nil
}

// Confirm records a staff-confirmed pairing as a Pending match and moves both
// items to Matched. Confirming an already-active pair returns the existing
// match instead of duplicating it. The status checks, the invariant check and
// the three writes are one atomic unit.
func (s *MatchService) Confirm(lostID, foundID, staffID uuid.UUID) (*models.Match, error) {
	var (
		match  models.Match
		lost   models.LostItem
		found  models.FoundItem
		reused bool
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&lost, "id = ?", lostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLostItemNotFound
			}
			return err
		}
		if err := lockForUpdate(tx).First(&found, "id = ?", foundID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFoundItemNotFound
			}
			return err
		}

		if lost.Status != models.LostUnresolved && lost.Status != models.LostMatched {
			return ErrLostItemUnavailable
		}
		if found.Status != models.FoundUnclaimed && found.Status != models.FoundMatched {
			return ErrFoundItemUnavailable
		}

		// Idempotent path: an active match for this exact pair already exists.
		err := tx.Where("lost_item_id = ? AND found_item_id = ? AND status IN ?",
			lostID, foundID, activeMatchStatuses).
			Order("created_at DESC").
			First(&match).Error
		if err == nil {
			reused = true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Either item bound to a different active match blocks the confirm.
		var bound int64
		if err := tx.Model(&models.Match{}).
			Where("(lost_item_id = ? OR found_item_id = ?) AND status IN ?",
				lostID, foundID, activeMatchStatuses).
			Count(&bound).Error; err != nil {
			return err
		}
		if bound > 0 {
			return ErrActiveMatchExists
		}

		match = models.Match{
			ID:          uuid.New(),
			LostItemID:  lostID,
			FoundItemID: foundID,
			Status:      models.MatchPending,
		}
		if err := tx.Create(&match).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.LostItem{}).Where("id = ?", lostID).
			Update("status", models.LostMatched).Error; err != nil {
			return err
		}
		return tx.Model(&models.FoundItem{}).Where("id = ?", foundID).
			Update("status", models.FoundMatched).Error
	})
	if err != nil {
		return nil, err
	}

	if !reused {
		s.notifier.EmitTo(lost.OwnerID, fmt.Sprintf(
			"Your lost item '%s' has been matched with found item '%s'. Visit the claim page to submit your claim.",
			lost.Name, found.Name))
		s.notifier.EmitBroadcast(fmt.Sprintf(
			"%s matched lost '%s' with found '%s'", s.staffName(staffID), lost.Name, found.Name))
	}
	return &match, nil
}

// FindActiveMatch returns the most recent Pending/Approved match for the
// exact pair, or nil when none exists.
func (s *MatchService) FindActiveMatch(lostID, foundID uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := s.db.Where("lost_item_id = ? AND found_item_id = ? AND status IN ?",
		lostID, foundID, activeMatchStatuses).
		Order("created_at DESC").
		First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up match: %w", err)
	}
	return &match, nil
}

// ListMatches returns all matches newest first, for the staff dashboard.
func (s *MatchService) ListMatches() ([]models.Match, error) {
	var matches []models.Match
	err := s.db.Preload("LostItem").Preload("FoundItem").
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}

func (s *MatchService) staffName(staffID uuid.UUID) string {
	var staff models.User
	if err := s.db.First(&staff, "id = ?", staffID).Error; err != nil {
		return "Staff"
	}
	return staff.Name
}
